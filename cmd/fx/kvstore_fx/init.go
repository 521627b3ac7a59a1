package kvstore_fx

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"degreedecider/internal/config"
	"degreedecider/internal/infra"
	"degreedecider/internal/repositories"
	"degreedecider/pkg/logger"
	mem "degreedecider/pkg/memcache"
)

// Module provides the KVStore selected by KV_BACKEND.
func Module(cfg config.Config) fx.Option {
	switch cfg.KVBackend {
	case config.KVBackendRedis:
		return fx.Provide(provideRedis, provideRedisStore)
	case config.KVBackendMemory:
		return fx.Provide(provideMemoryStore)
	default:
		return fx.Provide(provideDatabaseStore)
	}
}

func provideDatabaseStore(db *gorm.DB) repositories.KVStore {
	return repositories.NewKVGormRepository(db)
}

func provideRedis(lc fx.Lifecycle, cfg config.Config, log *logger.Logger) (*goredis.Client, error) {
	rdb, err := infra.OpenRedis(context.Background(), cfg.RedisAddr)
	if err != nil {
		return nil, err
	}
	log.Info("Redis ready", "addr", cfg.RedisAddr)
	lc.Append(fx.StopHook(rdb.Close))
	return rdb, nil
}

func provideRedisStore(rdb *goredis.Client) repositories.KVStore {
	return repositories.NewKVRedisRepository(rdb)
}

func provideMemoryStore(log *logger.Logger) repositories.KVStore {
	log.Warn("Using in-memory KV store; history is lost on restart")
	return mem.NewKVStore()
}
