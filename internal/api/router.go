package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"degreedecider/internal/api/controllers"
	"degreedecider/pkg/logger"
	"degreedecider/pkg/middleware"
)

type RouterOptions struct {
	// Prefix is prepended to every route, e.g. "/make-server".
	Prefix  string
	AnonKey string
	// Gatherer backs /metrics; nil uses the default registry.
	Gatherer prometheus.Gatherer
}

func NewRouter(
	opts RouterOptions,
	log *logger.Logger,
	healthController *controllers.HealthController,
	accountController *controllers.AccountController,
	quizController *controllers.QuizController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r.Group(opts.Prefix), opts, healthController, accountController, quizController)
	return r
}

func RegisterRoutes(g *gin.RouterGroup,
	opts RouterOptions,
	healthController *controllers.HealthController,
	accountController *controllers.AccountController,
	quizController *controllers.QuizController) {

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	g.GET("/health", healthController.Health)
	g.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	g.GET("/questions", quizController.Questions)
	g.POST("/recommend", quizController.Recommend)

	g.POST("/signup", middleware.RequireAnonKey(opts.AnonKey), accountController.SignUp)
	g.POST("/signin", accountController.SignIn)
	g.POST("/signout", middleware.RequireBearer(), accountController.SignOut)
	g.GET("/session", accountController.CurrentSession)

	authed := g.Group("", middleware.RequireBearer())
	authed.POST("/save-result", quizController.SaveResult)
	authed.GET("/history", quizController.History)
}
