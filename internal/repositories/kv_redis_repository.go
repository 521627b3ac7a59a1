package repositories

import (
	"context"
	"strings"

	goredis "github.com/redis/go-redis/v9"
)

const redisScanCount = 200

type kvRedisRepository struct {
	rdb *goredis.Client
}

func NewKVRedisRepository(rdb *goredis.Client) KVStore {
	return &kvRedisRepository{rdb: rdb}
}

func (r *kvRedisRepository) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, key, value, 0).Err()
}

func (r *kvRedisRepository) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	keys := make([]string, 0)
	iter := r.rdb.Scan(ctx, 0, escapeGlob(prefix)+"*", redisScanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return [][]byte{}, nil
	}

	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	values := make([][]byte, 0, len(vals))
	for _, v := range vals {
		// nil means the key vanished between SCAN and MGET.
		s, ok := v.(string)
		if !ok {
			continue
		}
		values = append(values, []byte(s))
	}
	return values, nil
}

// escapeGlob quotes the characters Redis MATCH patterns treat specially.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
