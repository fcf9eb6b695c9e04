// Package token issues and validates the HS256 access/refresh token pair.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"celestialbay/contexts/identity-access/account-service/ports"
)

type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string, accessTTL, refreshTTL time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

type claims struct {
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func (m *Manager) IssuePair(userID, email string) (ports.TokenPair, error) {
	access, err := m.sign(userID, email, ports.TokenTypeAccess, m.accessTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	refresh, err := m.sign(userID, email, ports.TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{Access: access, Refresh: refresh}, nil
}

func (m *Manager) IssueAccess(userID, email string) (string, error) {
	return m.sign(userID, email, ports.TokenTypeAccess, m.accessTTL)
}

func (m *Manager) sign(userID, email, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (m *Manager) Parse(tokenString string) (ports.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("parse token: %w", err)
	}

	parsed, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return ports.TokenClaims{}, errors.New("invalid token claims")
	}

	out := ports.TokenClaims{
		UserID:    parsed.Subject,
		Email:     parsed.Email,
		TokenType: parsed.TokenType,
		JTI:       parsed.ID,
	}
	if parsed.ExpiresAt != nil {
		out.ExpiresAt = parsed.ExpiresAt.Time
	}
	return out, nil
}
