package core_fx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"degreedecider/internal/config"
	"degreedecider/pkg/logger"
	"degreedecider/pkg/metrics"
)

// Module supplies the loaded configuration and the ambient services every
// other module depends on.
func Module(cfg config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(provideLogger, provideRegistry, provideMetrics),
	)
}

func provideLogger(lc fx.Lifecycle, cfg config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(log.Sync))
	return log, nil
}

func provideRegistry() (*prometheus.Registry, prometheus.Gatherer) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg, reg
}

func provideMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.MustNewMetrics(reg)
}
