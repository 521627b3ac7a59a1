package services

import (
	"context"

	"degreedecider/internal/models/response_models"
)

// SessionGate is the identity provider seam. Every history operation goes
// through VerifyToken; client-supplied user ids are never trusted.
type SessionGate interface {
	SignUp(ctx context.Context, email, password, name string) (response_models.UserIdentity, error)
	SignIn(ctx context.Context, email, password string) (response_models.Session, error)
	SignOut(ctx context.Context, token string) error
	// GetCurrentSession returns nil without an error when token carries no
	// live session.
	GetCurrentSession(ctx context.Context, token string) (*response_models.Session, error)
	VerifyToken(ctx context.Context, token string) (response_models.UserIdentity, error)
}

func sessionFromIdentity(user response_models.UserIdentity, token string) *response_models.Session {
	user.Name = user.DisplayName()
	return &response_models.Session{User: user, AccessToken: token}
}
