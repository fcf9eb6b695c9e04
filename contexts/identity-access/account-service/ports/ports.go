package ports

import (
	"context"
	"time"

	"celestialbay/contexts/identity-access/account-service/domain/entities"
	"celestialbay/internal/shared/shaping"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Clock interface {
	Now() time.Time
}

type Repository interface {
	CreateUser(ctx context.Context, user entities.User) (entities.User, error)
	GetUser(ctx context.Context, id string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	UpdateUser(ctx context.Context, user entities.User) error
	EmailInUse(ctx context.Context, email string, excludeUserID string) (bool, error)
	RecordLogin(ctx context.Context, id string, at time.Time) error
}

type TokenPair struct {
	Access  string
	Refresh string
}

type TokenClaims struct {
	UserID    string
	Email     string
	TokenType string
	JTI       string
	ExpiresAt time.Time
}

type TokenManager interface {
	IssuePair(userID, email string) (TokenPair, error)
	IssueAccess(userID, email string) (string, error)
	// Parse validates the signature and expiry and returns the claims.
	Parse(token string) (TokenClaims, error)
}

// TokenBlacklist is the refresh-token revocation list. Implementations
// drop entries whose underlying token has expired, so the list stays
// bounded by the refresh TTL.
type TokenBlacklist interface {
	// Revoke records jti until expiresAt. A second revocation of the
	// same jti fails with ErrTokenAlreadyRevoked.
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// GalaxyDirectory supplies the expandable galaxies relation of the public
// user view. The catalog context implements it.
type GalaxyDirectory interface {
	GalaxiesOwnedBy(ctx context.Context, ownerIDs []string) (map[string][]shaping.Document, error)
}

type RegisterInput struct {
	Email     string
	Password  string
	Password2 string
	FirstName string
	LastName  string
}

type UserSummary struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

type LoginResult struct {
	Access  string
	Refresh string
	User    UserSummary
}
