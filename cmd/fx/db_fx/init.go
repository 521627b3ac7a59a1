package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"degreedecider/internal/config"
	"degreedecider/internal/infra"
	"degreedecider/pkg/logger"
)

var Module = fx.Provide(provideDB)

func provideDB(lc fx.Lifecycle, cfg config.Config, log *logger.Logger) (*gorm.DB, error) {
	db, err := infra.OpenDatabase(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log.Info("Database ready", "driver", cfg.DBDriver)
	lc.Append(fx.StopHook(func() { infra.CloseDatabase(db, log) }))
	return db, nil
}
