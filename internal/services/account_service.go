package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"degreedecider/internal/models/db_models"
	"degreedecider/internal/models/response_models"
	"degreedecider/internal/repositories"
	"degreedecider/pkg/logger"
	mem "degreedecider/pkg/memcache"
	"degreedecider/pkg/metrics"
	"degreedecider/pkg/utils"
)

const minPasswordLength = 6

// AccountService is the built-in identity provider: accounts live in the SQL
// database and sessions are self-contained JWTs.
type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	revoked     mem.RevokedTokenStore
	metrics     *metrics.Metrics
	log         *logger.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenIssuer,
	revoked mem.RevokedTokenStore,
	m *metrics.Metrics,
	log *logger.Logger,
) SessionGate {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		revoked:     revoked,
		metrics:     m,
		log:         log.With("service", "AccountService"),
	}
}

func (a *AccountService) SignUp(ctx context.Context, email, password, name string) (response_models.UserIdentity, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return response_models.UserIdentity{}, fmt.Errorf("%w: email, password, and name are required", utils.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return response_models.UserIdentity{}, fmt.Errorf("%w: invalid email address", utils.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return response_models.UserIdentity{}, fmt.Errorf("%w: password should be at least %d characters", utils.ErrInvalidInput, minPasswordLength)
	}

	existing, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return response_models.UserIdentity{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existing != nil {
		return response_models.UserIdentity{}, utils.ErrEmailAlreadyExists
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return response_models.UserIdentity{}, fmt.Errorf("hash password: %w", err)
	}

	account := &db_models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := a.accountRepo.InsertTx(account, ctx); err != nil {
		return response_models.UserIdentity{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	a.log.Info("Account created", "user_id", account.ID.String())
	return identityOf(account), nil
}

func (a *AccountService) SignIn(ctx context.Context, email, password string) (response_models.Session, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return response_models.Session{}, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return response_models.Session{}, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, password); err != nil {
		return response_models.Session{}, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID, account.Email, account.Name)
	if err != nil {
		return response_models.Session{}, fmt.Errorf("create token: %w", err)
	}

	a.log.Debug("Sign-in complete", "user_id", account.ID.String(), "duration_ms", time.Since(startTime).Milliseconds())
	return *sessionFromIdentity(identityOf(account), token), nil
}

// SignOut revokes token until its natural expiry. Signing out with a token
// that is already invalid is not an error.
func (a *AccountService) SignOut(ctx context.Context, token string) error {
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return nil
	}
	until := time.Now().Add(a.tokens.TTL())
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	a.revoked.Revoke(claims.ID, until)
	return nil
}

func (a *AccountService) GetCurrentSession(ctx context.Context, token string) (*response_models.Session, error) {
	if token == "" {
		return nil, nil
	}
	user, err := a.VerifyToken(ctx, token)
	if errors.Is(err, utils.ErrUnauthorized) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sessionFromIdentity(user, token), nil
}

func (a *AccountService) VerifyToken(ctx context.Context, token string) (response_models.UserIdentity, error) {
	user, err := a.verify(token)
	if err != nil {
		a.metrics.ObserveVerification("rejected")
		return response_models.UserIdentity{}, err
	}
	a.metrics.ObserveVerification("accepted")
	return user, nil
}

func (a *AccountService) verify(token string) (response_models.UserIdentity, error) {
	if token == "" {
		return response_models.UserIdentity{}, utils.ErrUnauthorized
	}
	claims, err := a.tokens.ValidateToken(token)
	if err != nil {
		return response_models.UserIdentity{}, err
	}
	if a.revoked.IsRevoked(claims.ID) {
		return response_models.UserIdentity{}, fmt.Errorf("%w: token has been signed out", utils.ErrUnauthorized)
	}
	return response_models.UserIdentity{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

func identityOf(account *db_models.Account) response_models.UserIdentity {
	return response_models.UserIdentity{
		ID:    account.ID.String(),
		Email: account.Email,
		Name:  account.Name,
	}
}
