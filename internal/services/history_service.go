package services

import (
	"context"
	"fmt"
	"time"

	"degreedecider/internal/models/db_models"
	"degreedecider/internal/models/request_models"
	"degreedecider/internal/repositories"
	"degreedecider/pkg/logger"
	"degreedecider/pkg/metrics"
	"degreedecider/pkg/utils"
)

type HistoryServiceInterface interface {
	// SaveResult stores answers and degree for the token's user and returns
	// the result id, which is the save timestamp in milliseconds.
	SaveResult(ctx context.Context, token string, req request_models.SaveResultRequest) (int64, error)
	// ListResults returns the token's user's results, newest first.
	ListResults(ctx context.Context, token string) ([]db_models.QuizResult, error)
}

type HistoryService struct {
	gate    SessionGate
	results repositories.QuizResultRepository
	clock   func() time.Time
	metrics *metrics.Metrics
	log     *logger.Logger
}

func NewHistoryService(
	gate SessionGate,
	results repositories.QuizResultRepository,
	m *metrics.Metrics,
	log *logger.Logger,
) HistoryServiceInterface {
	return &HistoryService{
		gate:    gate,
		results: results,
		clock:   time.Now,
		metrics: m,
		log:     log.With("service", "HistoryService"),
	}
}

// WithClock swaps the time source used for result timestamps.
func (h *HistoryService) WithClock(clock func() time.Time) *HistoryService {
	h.clock = clock
	return h
}

func (h *HistoryService) SaveResult(ctx context.Context, token string, req request_models.SaveResultRequest) (int64, error) {
	user, err := h.gate.VerifyToken(ctx, token)
	if err != nil {
		h.metrics.ObserveSave("unauthorized")
		return 0, err
	}
	if err := req.Validate(); err != nil {
		h.metrics.ObserveSave("invalid")
		return 0, err
	}

	now := h.clock()
	result := db_models.QuizResult{
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.Name,
		Answers:   *req.Answers,
		Degree:    req.Degree.Clone(),
		Timestamp: now.UnixMilli(),
		CreatedAt: utils.FormatISOMillis(now),
	}

	if err := h.results.Insert(ctx, result); err != nil {
		h.metrics.ObserveSave("error")
		h.log.Error("Saving quiz result failed", "user_id", user.ID, "error", err)
		return 0, fmt.Errorf("%w: %v", utils.ErrStoreFailure, err)
	}

	h.metrics.ObserveSave("saved")
	h.log.Info("Quiz result saved", "user_id", user.ID, "result_id", result.Timestamp, "degree", result.Degree.Name)
	return result.Timestamp, nil
}

func (h *HistoryService) ListResults(ctx context.Context, token string) ([]db_models.QuizResult, error) {
	user, err := h.gate.VerifyToken(ctx, token)
	if err != nil {
		h.metrics.ObserveList("unauthorized")
		return nil, err
	}

	results, err := h.results.FindByUser(ctx, user.ID)
	if err != nil {
		h.metrics.ObserveList("error")
		h.log.Error("Loading quiz history failed", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", utils.ErrStoreFailure, err)
	}

	h.metrics.ObserveList("ok")
	return results, nil
}
