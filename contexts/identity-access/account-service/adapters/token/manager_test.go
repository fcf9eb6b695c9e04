package token

import (
	"testing"
	"time"

	"celestialbay/contexts/identity-access/account-service/ports"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := NewManager("test-signing-key", 30*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	return manager
}

func TestIssuePairRoundTrip(t *testing.T) {
	manager := newTestManager(t)

	pair, err := manager.IssuePair("user-1", "ada@example.com")
	if err != nil {
		t.Fatal(err)
	}

	access, err := manager.Parse(pair.Access)
	if err != nil {
		t.Fatal(err)
	}
	if access.TokenType != ports.TokenTypeAccess {
		t.Fatalf("access token type = %q", access.TokenType)
	}
	if access.UserID != "user-1" || access.Email != "ada@example.com" {
		t.Fatalf("access claims = %+v", access)
	}

	refresh, err := manager.Parse(pair.Refresh)
	if err != nil {
		t.Fatal(err)
	}
	if refresh.TokenType != ports.TokenTypeRefresh {
		t.Fatalf("refresh token type = %q", refresh.TokenType)
	}
	if refresh.JTI == "" || refresh.JTI == access.JTI {
		t.Fatalf("refresh jti = %q, access jti = %q", refresh.JTI, access.JTI)
	}
	if refresh.ExpiresAt.Before(access.ExpiresAt) {
		t.Fatal("refresh token should outlive the access token")
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	manager := newTestManager(t)
	other, err := NewManager("a-different-key", 30*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	pair, err := other.IssuePair("user-1", "ada@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := manager.Parse(pair.Access); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager, err := NewManager("test-signing-key", time.Nanosecond, time.Nanosecond)
	if err != nil {
		t.Fatal(err)
	}
	pair, err := manager.IssuePair("user-1", "ada@example.com")
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, err := manager.Parse(pair.Access); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	manager := newTestManager(t)
	if _, err := manager.Parse("not-a-token"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager("", time.Minute, time.Minute); err == nil {
		t.Fatal("expected empty secret to be rejected")
	}
	if _, err := NewManager("key", 0, time.Minute); err == nil {
		t.Fatal("expected zero access ttl to be rejected")
	}
}
