package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"degreedecider/cmd/fx/account_fx"
	"degreedecider/cmd/fx/controllers_fx"
	"degreedecider/cmd/fx/core_fx"
	"degreedecider/cmd/fx/db_fx"
	"degreedecider/cmd/fx/kvstore_fx"
	"degreedecider/cmd/fx/memcache_fx"
	"degreedecider/cmd/fx/quiz_fx"
	"degreedecider/internal/api"
	"degreedecider/internal/api/controllers"
	"degreedecider/internal/config"
	"degreedecider/pkg/logger"
)

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*envFile)
		},
	}
}

func runServer(envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app := fx.New(
		core_fx.Module(cfg),
		db_fx.Module,
		memcache_fx.Module,
		kvstore_fx.Module(cfg),
		account_fx.Module(cfg),
		quiz_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		return err
	}

	app.Run()
	return nil
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *logger.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", "addr", server.Addr, "prefix", cfg.RoutePrefix)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	log *logger.Logger,
	gatherer prometheus.Gatherer,
	healthController *controllers.HealthController,
	accountController *controllers.AccountController,
	quizController *controllers.QuizController) *gin.Engine {

	return api.NewRouter(api.RouterOptions{
		Prefix:   cfg.RoutePrefix,
		AnonKey:  cfg.AnonKey,
		Gatherer: gatherer,
	}, log, healthController, accountController, quizController)
}
