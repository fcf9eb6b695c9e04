package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"celestialbay/contexts/identity-access/account-service/domain/entities"
	domainerrors "celestialbay/contexts/identity-access/account-service/domain/errors"
)

// Store is the in-memory Repository, TokenBlacklist and Clock used for
// development and tests.
type Store struct {
	mu sync.RWMutex

	usersByID     map[string]entities.User
	userIDByEmail map[string]string
	revokedByJTI  map[string]time.Time
}

func NewStore() *Store {
	return &Store{
		usersByID:     make(map[string]entities.User),
		userIDByEmail: make(map[string]string),
		revokedByJTI:  make(map[string]time.Time),
	}
}

func (s *Store) CreateUser(ctx context.Context, user entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userIDByEmail[user.Email]; taken {
		return entities.User{}, domainerrors.ErrEmailTaken
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	s.usersByID[user.ID] = user
	s.userIDByEmail[user.Email] = user.ID
	return user, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.usersByID[id]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDByEmail[email]
	if !ok {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return s.usersByID[id], nil
}

func (s *Store) UpdateUser(ctx context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.usersByID[user.ID]
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	if current.Email != user.Email {
		if owner, taken := s.userIDByEmail[user.Email]; taken && owner != user.ID {
			return domainerrors.ErrEmailTaken
		}
		delete(s.userIDByEmail, current.Email)
		s.userIDByEmail[user.Email] = user.ID
	}
	s.usersByID[user.ID] = user
	return nil
}

func (s *Store) EmailInUse(ctx context.Context, email string, excludeUserID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.userIDByEmail[email]
	return ok && id != excludeUserID, nil
}

func (s *Store) RecordLogin(ctx context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.usersByID[id]
	if !ok {
		return domainerrors.ErrUserNotFound
	}
	user.LastLogin = &at
	s.usersByID[id] = user
	return nil
}

func (s *Store) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now().UTC())
	if _, revoked := s.revokedByJTI[jti]; revoked {
		return domainerrors.ErrTokenAlreadyRevoked
	}
	s.revokedByJTI[jti] = expiresAt
	return nil
}

func (s *Store) IsRevoked(ctx context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now().UTC())
	_, revoked := s.revokedByJTI[jti]
	return revoked, nil
}

// purgeExpiredLocked drops entries whose token would be rejected on expiry
// grounds anyway, keeping the list bounded by the refresh TTL.
func (s *Store) purgeExpiredLocked(now time.Time) {
	for jti, expiresAt := range s.revokedByJTI {
		if expiresAt.Before(now) {
			delete(s.revokedByJTI, jti)
		}
	}
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
