package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"degreedecider/internal/models/response_models"
	"degreedecider/pkg/logger"
	"degreedecider/pkg/metrics"
	"degreedecider/pkg/utils"
)

type SupabaseConfig struct {
	URL            string
	ServiceRoleKey string
	AnonKey        string
	HTTPClient     *http.Client
}

// SupabaseSessionService delegates identity to a hosted GoTrue auth server.
type SupabaseSessionService struct {
	cfg     SupabaseConfig
	client  *http.Client
	metrics *metrics.Metrics
	log     *logger.Logger
}

func NewSupabaseSessionService(cfg SupabaseConfig, m *metrics.Metrics, log *logger.Logger) SessionGate {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &SupabaseSessionService{
		cfg:     cfg,
		client:  client,
		metrics: m,
		log:     log.With("service", "SupabaseSessionService"),
	}
}

type gotrueUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

func (u gotrueUser) identity() response_models.UserIdentity {
	return response_models.UserIdentity{ID: u.ID, Email: u.Email, Name: u.UserMetadata.Name}
}

type gotrueError struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (e gotrueError) text() string {
	for _, s := range []string{e.Msg, e.Message, e.ErrorDescription, e.Error} {
		if s != "" {
			return s
		}
	}
	return "unknown error"
}

// statusError carries a non-2xx GoTrue reply.
type statusError struct {
	status  int
	message string
}

func (e *statusError) Error() string { return fmt.Sprintf("gotrue %d: %s", e.status, e.message) }

func (s *SupabaseSessionService) SignUp(ctx context.Context, email, password, name string) (response_models.UserIdentity, error) {
	if email == "" || password == "" || name == "" {
		return response_models.UserIdentity{}, fmt.Errorf("%w: email, password, and name are required", utils.ErrInvalidInput)
	}
	body := map[string]any{
		"email":         email,
		"password":      password,
		"user_metadata": map[string]string{"name": name},
		// No mail server is configured, so accounts are confirmed on creation.
		"email_confirm": true,
	}
	var user gotrueUser
	err := s.do(ctx, http.MethodPost, "/auth/v1/admin/users", s.cfg.ServiceRoleKey, s.cfg.ServiceRoleKey, body, &user)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.status < http.StatusInternalServerError {
			return response_models.UserIdentity{}, fmt.Errorf("%w: %s", utils.ErrInvalidInput, se.message)
		}
		s.log.Error("Sign up failed", "error", err)
		return response_models.UserIdentity{}, fmt.Errorf("%w: %v", utils.ErrProviderFailure, err)
	}
	return user.identity(), nil
}

func (s *SupabaseSessionService) SignIn(ctx context.Context, email, password string) (response_models.Session, error) {
	var reply struct {
		AccessToken string     `json:"access_token"`
		User        gotrueUser `json:"user"`
	}
	body := map[string]string{"email": email, "password": password}
	err := s.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", s.cfg.AnonKey, s.cfg.AnonKey, body, &reply)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.status < http.StatusInternalServerError {
			return response_models.Session{}, utils.ErrInvalidCredentials
		}
		return response_models.Session{}, fmt.Errorf("%w: %v", utils.ErrProviderFailure, err)
	}
	return *sessionFromIdentity(reply.User.identity(), reply.AccessToken), nil
}

// SignOut only fails when the provider cannot be reached.
func (s *SupabaseSessionService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := s.do(ctx, http.MethodPost, "/auth/v1/logout", s.cfg.AnonKey, token, nil, nil)
	var se *statusError
	if err != nil && !errors.As(err, &se) {
		return fmt.Errorf("%w: %v", utils.ErrProviderFailure, err)
	}
	return nil
}

func (s *SupabaseSessionService) GetCurrentSession(ctx context.Context, token string) (*response_models.Session, error) {
	if token == "" {
		return nil, nil
	}
	user, err := s.VerifyToken(ctx, token)
	if errors.Is(err, utils.ErrUnauthorized) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sessionFromIdentity(user, token), nil
}

func (s *SupabaseSessionService) VerifyToken(ctx context.Context, token string) (response_models.UserIdentity, error) {
	if token == "" {
		s.metrics.ObserveVerification("rejected")
		return response_models.UserIdentity{}, utils.ErrUnauthorized
	}
	var user gotrueUser
	err := s.do(ctx, http.MethodGet, "/auth/v1/user", s.cfg.AnonKey, token, nil, &user)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.status < http.StatusInternalServerError {
			s.metrics.ObserveVerification("rejected")
			return response_models.UserIdentity{}, fmt.Errorf("%w: %s", utils.ErrUnauthorized, se.message)
		}
		s.metrics.ObserveVerification("error")
		return response_models.UserIdentity{}, fmt.Errorf("%w: %v", utils.ErrProviderFailure, err)
	}
	if user.ID == "" {
		s.metrics.ObserveVerification("rejected")
		return response_models.UserIdentity{}, utils.ErrUnauthorized
	}
	s.metrics.ObserveVerification("accepted")
	return user.identity(), nil
}

func (s *SupabaseSessionService) do(ctx context.Context, method, path, apiKey, bearer string, in, out any) error {
	var reader io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.cfg.URL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ge gotrueError
		_ = json.Unmarshal(raw, &ge)
		return &statusError{status: resp.StatusCode, message: ge.text()}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
