package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	KVBackendDatabase = "database"
	KVBackendRedis    = "redis"
	KVBackendMemory   = "memory"

	AuthProviderLocal    = "local"
	AuthProviderSupabase = "supabase"

	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"
)

type Config struct {
	Port        string
	AppEnv      string
	RoutePrefix string

	DBDriver    string
	DatabaseURL string

	KVBackend string
	RedisAddr string

	AuthProvider string
	JWTSecret    string
	JWTTTL       time.Duration
	AnonKey      string

	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseAnonKey        string
}

func (c Config) IsProduction() bool {
	env := strings.ToLower(c.AppEnv)
	return env == "prod" || env == "production"
}

// Load reads .env (if present) into the process environment, then resolves
// every setting through viper with defaults.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		Port:                   v.GetString("PORT"),
		AppEnv:                 v.GetString("APP_ENV"),
		RoutePrefix:            strings.TrimRight(v.GetString("ROUTE_PREFIX"), "/"),
		DBDriver:               strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseURL:            v.GetString("DATABASE_URL"),
		KVBackend:              strings.ToLower(v.GetString("KV_BACKEND")),
		RedisAddr:              v.GetString("REDIS_ADDR"),
		AuthProvider:           strings.ToLower(v.GetString("AUTH_PROVIDER")),
		JWTSecret:              v.GetString("JWT_SECRET"),
		JWTTTL:                 v.GetDuration("JWT_TTL"),
		AnonKey:                v.GetString("ANON_KEY"),
		SupabaseURL:            strings.TrimRight(v.GetString("SUPABASE_URL"), "/"),
		SupabaseServiceRoleKey: v.GetString("SUPABASE_SERVICE_ROLE_KEY"),
		SupabaseAnonKey:        v.GetString("SUPABASE_ANON_KEY"),
	}
	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ROUTE_PREFIX", "")
	v.SetDefault("DB_DRIVER", DBDriverSQLite)
	v.SetDefault("DATABASE_URL", "degreedecider.db")
	v.SetDefault("KV_BACKEND", KVBackendDatabase)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("AUTH_PROVIDER", AuthProviderLocal)
	v.SetDefault("JWT_TTL", time.Hour)
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case DBDriverSQLite, DBDriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.KVBackend {
	case KVBackendDatabase, KVBackendRedis, KVBackendMemory:
	default:
		return fmt.Errorf("unsupported KV_BACKEND %q", c.KVBackend)
	}
	switch c.AuthProvider {
	case AuthProviderLocal:
		if c.JWTSecret == "" && c.IsProduction() {
			return errors.New("JWT_SECRET is required in production")
		}
	case AuthProviderSupabase:
		if c.SupabaseURL == "" || c.SupabaseServiceRoleKey == "" || c.SupabaseAnonKey == "" {
			return errors.New("SUPABASE_URL, SUPABASE_SERVICE_ROLE_KEY and SUPABASE_ANON_KEY are required for the supabase provider")
		}
	default:
		return fmt.Errorf("unsupported AUTH_PROVIDER %q", c.AuthProvider)
	}
	return nil
}
