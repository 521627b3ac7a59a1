package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"degreedecider/internal/models/db_models"
	"degreedecider/internal/models/response_models"
	"degreedecider/pkg/logger"
	mem "degreedecider/pkg/memcache"
)

func result(userID string, ts int64) db_models.QuizResult {
	return db_models.QuizResult{
		UserID:    userID,
		UserEmail: userID + "@example.com",
		Degree:    response_models.DegreeRecommendation{Name: "Liberal Arts"},
		Timestamp: ts,
	}
}

func TestQuizResultKey(t *testing.T) {
	assert.Equal(t, "quiz_result:u-1:1700000000123", QuizResultKey("u-1", 1700000000123))
}

func TestQuizResultRepository_FindByUserSortsNewestFirst(t *testing.T) {
	kv := mem.NewKVStore()
	repo := NewQuizResultRepository(kv, logger.NewNop())
	ctx := context.Background()

	// Key order ("...:100" < "...:20" < "...:3") differs from numeric order.
	for _, ts := range []int64{20, 3, 100} {
		require.NoError(t, repo.Insert(ctx, result("u1", ts)))
	}
	require.NoError(t, repo.Insert(ctx, result("u2", 50)))

	results, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, []int64{100, 20, 3}, []int64{results[0].Timestamp, results[1].Timestamp, results[2].Timestamp})
}

func TestQuizResultRepository_SkipsUndecodableValues(t *testing.T) {
	kv := mem.NewKVStore()
	repo := NewQuizResultRepository(kv, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, result("u1", 1)))
	require.NoError(t, kv.Set(ctx, "quiz_result:u1:2", []byte("{not json")))

	results, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].Timestamp)
}

func TestQuizResultRepository_StoredLayout(t *testing.T) {
	kv := mem.NewKVStore()
	repo := NewQuizResultRepository(kv, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, result("u1", 42)))

	values, err := kv.GetByPrefix(ctx, QuizResultKey("u1", 42))
	require.NoError(t, err)
	require.Len(t, values, 1)
	for _, field := range []string{`"userId"`, `"userEmail"`, `"userName"`, `"answers"`, `"degree"`, `"timestamp"`, `"createdAt"`} {
		assert.Contains(t, string(values[0]), field)
	}
}
