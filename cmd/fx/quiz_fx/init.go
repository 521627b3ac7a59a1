package quiz_fx

import (
	"go.uber.org/fx"

	"degreedecider/internal/repositories"
	"degreedecider/internal/services"
	"degreedecider/pkg/logger"
	"degreedecider/pkg/metrics"
)

var Module = fx.Provide(
	provideQuizResultRepo, provideRecommendationService, provideHistoryService)

func provideQuizResultRepo(kv repositories.KVStore, log *logger.Logger) repositories.QuizResultRepository {
	return repositories.NewQuizResultRepository(kv, log)
}

func provideRecommendationService(m *metrics.Metrics) services.RecommendationServiceInterface {
	return services.NewRecommendationService(m)
}

func provideHistoryService(
	gate services.SessionGate,
	results repositories.QuizResultRepository,
	m *metrics.Metrics,
	log *logger.Logger,
) services.HistoryServiceInterface {
	return services.NewHistoryService(gate, results, m, log)
}
