package sessions

import (
	"context"

	"healthfirst-service/internal/app/models"
)

// SessionStore persists active sessions keyed by session ID. A nil session
// with a nil error means the session does not exist or has expired.
type SessionStore interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
