package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"degreedecider/internal/models/db_models"
)

type kvGormRepository struct {
	db *gorm.DB
}

// NewKVGormRepository stores entries in the kv_store table of whichever SQL
// database db points at.
func NewKVGormRepository(db *gorm.DB) KVStore {
	return &kvGormRepository{db: db}
}

func (r *kvGormRepository) Set(ctx context.Context, key string, value []byte) error {
	entry := db_models.KVEntry{Key: key, Value: string(value)}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (r *kvGormRepository) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	var entries []db_models.KVEntry
	err := r.db.WithContext(ctx).
		Where(clause.Like{Column: clause.Column{Name: "key"}, Value: prefix + "%"}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	// LIKE treats '_' as a wildcard and SQLite matches ASCII case-insensitively,
	// so keep only exact byte prefixes.
	values := make([][]byte, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Key, prefix) {
			values = append(values, []byte(e.Value))
		}
	}
	return values, nil
}
