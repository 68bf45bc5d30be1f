package auth

import (
	"context"
	"strings"
	"sync"

	"healthfirst-service/internal/pkg/utils"
)

// demoCredentials are the accounts seeded when DIRECTORY_SEED_DEMO_CREDENTIALS
// is on. Passwords are bcrypt-hashed at construction time.
var demoCredentials = map[string]string{
	"demo@example.com":    "password123",
	"admin@matthevii.com": "Admin123!",
	"provider@test.com":   "Provider123!",
	"doctor@health.com":   "Doctor123!",
	"test@example.com":    "Test123!",
}

type memoryCredentialStore struct {
	mu     sync.RWMutex
	hashes map[string]string
	// decoy absorbs the bcrypt compare for unknown emails so lookups take
	// roughly the same time either way.
	decoy string
}

func NewMemoryCredentialStore(seedDemo bool) (CredentialStore, error) {
	store := &memoryCredentialStore{hashes: make(map[string]string)}

	decoy, err := utils.HashPassword("decoy-password")
	if err != nil {
		return nil, err
	}
	store.decoy = decoy

	if seedDemo {
		for email, password := range demoCredentials {
			hash, err := utils.HashPassword(password)
			if err != nil {
				return nil, err
			}
			store.hashes[strings.ToLower(email)] = hash
		}
	}
	return store, nil
}

func (s *memoryCredentialStore) Verify(_ context.Context, email, password string) (bool, error) {
	s.mu.RLock()
	hash, ok := s.hashes[strings.ToLower(email)]
	s.mu.RUnlock()

	if !ok {
		utils.CheckPasswordHash(password, s.decoy)
		return false, nil
	}
	return utils.CheckPasswordHash(password, hash), nil
}

// Register adds a credential for a freshly submitted registration so the new
// account can log in right away.
func (s *memoryCredentialStore) Register(email, password string) error {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.hashes[strings.ToLower(email)] = hash
	s.mu.Unlock()
	return nil
}
