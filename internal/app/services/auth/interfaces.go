package auth

import (
	"context"

	"healthfirst-service/internal/app/models"
	"healthfirst-service/internal/pkg/dto/requests"
	"healthfirst-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, token string) error
	// IsAuthenticated resolves a bearer token to its live session. It returns
	// an unauthorized error when the token is invalid, expired, or the
	// session behind it no longer exists.
	IsAuthenticated(ctx context.Context, token string) (*models.Session, error)
	// HandleUnauthorized clears the session after a downstream call came back
	// unauthorized, so the next guarded request lands on the login view.
	HandleUnauthorized(ctx context.Context, sessionID string) error
}

// CredentialStore answers whether an email/password pair belongs to a known
// account. It never reveals which half of the pair was wrong.
type CredentialStore interface {
	Verify(ctx context.Context, email, password string) (bool, error)
}
