package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"degreedecider/internal/models/db_models"
	"degreedecider/pkg/logger"
)

const quizResultKeyPrefix = "quiz_result"

// QuizResultKey is the storage key of one history entry. Two saves by the
// same user in the same millisecond share a key, so the later one wins.
func QuizResultKey(userID string, timestamp int64) string {
	return fmt.Sprintf("%s:%s:%d", quizResultKeyPrefix, userID, timestamp)
}

func quizResultUserPrefix(userID string) string {
	return fmt.Sprintf("%s:%s:", quizResultKeyPrefix, userID)
}

type QuizResultRepository interface {
	Insert(ctx context.Context, result db_models.QuizResult) error
	// FindByUser returns every result for userID, newest first.
	FindByUser(ctx context.Context, userID string) ([]db_models.QuizResult, error)
}

type quizResultRepository struct {
	kv  KVStore
	log *logger.Logger
}

func NewQuizResultRepository(kv KVStore, log *logger.Logger) QuizResultRepository {
	return &quizResultRepository{
		kv:  kv,
		log: log.With("repository", "QuizResultRepository"),
	}
}

func (r *quizResultRepository) Insert(ctx context.Context, result db_models.QuizResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode quiz result: %w", err)
	}
	return r.kv.Set(ctx, QuizResultKey(result.UserID, result.Timestamp), raw)
}

func (r *quizResultRepository) FindByUser(ctx context.Context, userID string) ([]db_models.QuizResult, error) {
	values, err := r.kv.GetByPrefix(ctx, quizResultUserPrefix(userID))
	if err != nil {
		return nil, err
	}

	results := make([]db_models.QuizResult, 0, len(values))
	for _, raw := range values {
		var result db_models.QuizResult
		if err := json.Unmarshal(raw, &result); err != nil {
			r.log.Warn("Skipping undecodable quiz result", "user_id", userID, "error", err)
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Timestamp > results[j].Timestamp
	})
	return results, nil
}
