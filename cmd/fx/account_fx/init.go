package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"degreedecider/internal/config"
	"degreedecider/internal/repositories"
	"degreedecider/internal/services"
	"degreedecider/pkg/logger"
	mem "degreedecider/pkg/memcache"
	"degreedecider/pkg/metrics"
	"degreedecider/pkg/utils"
)

// Module provides the SessionGate selected by AUTH_PROVIDER.
func Module(cfg config.Config) fx.Option {
	if cfg.AuthProvider == config.AuthProviderSupabase {
		return fx.Provide(provideSupabaseGate)
	}
	return fx.Provide(provideAccountRepo, provideTokenIssuer, provideAccountService)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg config.Config, log *logger.Logger) (*utils.TokenIssuer, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		generated, err := utils.GenerateSecureToken(32)
		if err != nil {
			return nil, err
		}
		secret = generated
		log.Warn("JWT_SECRET not set; using a random secret, sessions end on restart")
	}
	return utils.NewTokenIssuer(secret, cfg.JWTTTL)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenIssuer,
	revoked mem.RevokedTokenStore,
	m *metrics.Metrics,
	log *logger.Logger,
) services.SessionGate {
	return services.NewAccountService(accountRepo, tokens, revoked, m, log)
}

func provideSupabaseGate(cfg config.Config, m *metrics.Metrics, log *logger.Logger) services.SessionGate {
	return services.NewSupabaseSessionService(services.SupabaseConfig{
		URL:            cfg.SupabaseURL,
		ServiceRoleKey: cfg.SupabaseServiceRoleKey,
		AnonKey:        cfg.SupabaseAnonKey,
	}, m, log)
}
