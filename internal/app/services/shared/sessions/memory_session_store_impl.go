package sessions

import (
	"context"
	"time"

	"healthfirst-service/internal/app/models"

	"github.com/zekroTJA/timedmap"
)

type memorySessionStore struct {
	sessions *timedmap.TimedMap
	ttl      time.Duration
}

// NewMemorySessionStore keeps sessions in an expiring in-process map. It is
// the default backend and the one the tests use.
func NewMemorySessionStore(ttl, cleanupInterval time.Duration) SessionStore {
	return &memorySessionStore{
		sessions: timedmap.New(cleanupInterval),
		ttl:      ttl,
	}
}

func (s *memorySessionStore) CreateSession(_ context.Context, session *models.Session) error {
	s.sessions.Set(session.SessionID, session, s.ttl)
	return nil
}

func (s *memorySessionStore) GetSession(_ context.Context, sessionID string) (*models.Session, error) {
	value := s.sessions.GetValue(sessionID)
	if value == nil {
		return nil, nil
	}
	return value.(*models.Session), nil
}

func (s *memorySessionStore) DeleteSession(_ context.Context, sessionID string) error {
	s.sessions.Remove(sessionID)
	return nil
}
