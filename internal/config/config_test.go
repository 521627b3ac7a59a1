package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "APP_ENV", "DB_DRIVER", "DATABASE_URL", "KV_BACKEND", "AUTH_PROVIDER", "JWT_TTL", "JWT_SECRET", "ROUTE_PREFIX"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DBDriverSQLite, cfg.DBDriver)
	assert.Equal(t, "degreedecider.db", cfg.DatabaseURL)
	assert.Equal(t, KVBackendDatabase, cfg.KVBackend)
	assert.Equal(t, AuthProviderLocal, cfg.AuthProvider)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvAndFile(t *testing.T) {
	t.Setenv("KV_BACKEND", "Memory")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("ROUTE_PREFIX", "/make-server/")

	// godotenv does not override variables that are already set.
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=9090\nKV_BACKEND=redis\n"), 0o600))
	t.Setenv("PORT", "")
	os.Unsetenv("PORT")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, KVBackendMemory, cfg.KVBackend)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "/make-server", cfg.RoutePrefix)
}

func TestConfig_Validate(t *testing.T) {
	base := Config{DBDriver: DBDriverSQLite, KVBackend: KVBackendDatabase, AuthProvider: AuthProviderLocal}
	require.NoError(t, base.Validate())

	tests := map[string]func(c *Config){
		"db driver":           func(c *Config) { c.DBDriver = "mysql" },
		"kv backend":          func(c *Config) { c.KVBackend = "etcd" },
		"auth provider":       func(c *Config) { c.AuthProvider = "ldap" },
		"prod without secret": func(c *Config) { c.AppEnv = "production" },
		"supabase incomplete": func(c *Config) {
			c.AuthProvider = AuthProviderSupabase
			c.SupabaseURL = "https://example.supabase.co"
		},
	}
	for name, mut := range tests {
		t.Run(name, func(t *testing.T) {
			c := base
			mut(&c)
			assert.Error(t, c.Validate())
		})
	}

	prod := base
	prod.AppEnv = "prod"
	prod.JWTSecret = "s"
	assert.NoError(t, prod.Validate())
	assert.True(t, prod.IsProduction())
}
