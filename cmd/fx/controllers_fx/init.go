package controllers_fx

import (
	"go.uber.org/fx"

	"degreedecider/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHealthController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewQuizController))
