// internal/domain/session/service.go
package session

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/infrastructure/database/bolt"
)

const (
	bucketName = "session"
	userKey    = "user"
)

// Service persists the logged-in user on the device. One record under a
// fixed key; no expiry. Logout is the only clearing mechanism, and an
// absent record means logged out.
type Service struct {
	store *bolt.Client
	log   *logrus.Logger
}

// NewService creates a new session service
func NewService(store *bolt.Client, log *logrus.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Save serializes the user record under the fixed session key
func (s *Service) Save(u *user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.store.Put(bucketName, userKey, data); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	s.log.WithField("user_id", u.ID).Debug("Session saved")
	return nil
}

// Load returns the current session user, or nil when logged out
func (s *Service) Load() (*user.User, error) {
	data, err := s.store.Get(bucketName, userKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var u user.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &u, nil
}

// Clear removes the session record
func (s *Service) Clear() error {
	if err := s.store.Delete(bucketName, userKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.log.Debug("Session cleared")
	return nil
}
