package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"celestialbay/contexts/identity-access/account-service/domain/entities"
	domainerrors "celestialbay/contexts/identity-access/account-service/domain/errors"
)

func TestCreateUserEnforcesEmailUniqueness(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first, err := store.CreateUser(ctx, entities.User{Email: "ada@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == "" {
		t.Fatal("expected generated id")
	}

	_, err = store.CreateUser(ctx, entities.User{Email: "ada@example.com"})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("err = %v", err)
	}
}

func TestUpdateUserRebindsEmailIndex(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, entities.User{Email: "ada@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	user.Email = "countess@example.com"
	if err := store.UpdateUser(ctx, user); err != nil {
		t.Fatal(err)
	}

	if _, err := store.GetUserByEmail(ctx, "ada@example.com"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("old email still resolves: %v", err)
	}
	found, err := store.GetUserByEmail(ctx, "countess@example.com")
	if err != nil || found.ID != user.ID {
		t.Fatalf("new email lookup = %+v, %v", found, err)
	}
}

func TestUpdateUserRejectsTakenEmail(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.CreateUser(ctx, entities.User{Email: "ada@example.com"}); err != nil {
		t.Fatal(err)
	}
	second, err := store.CreateUser(ctx, entities.User{Email: "grace@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	second.Email = "ada@example.com"
	if err := store.UpdateUser(ctx, second); !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("err = %v", err)
	}
}

func TestRecordLoginSetsLastLogin(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, entities.User{Email: "ada@example.com"})
	if err != nil {
		t.Fatal(err)
	}

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := store.RecordLogin(ctx, user.ID, at); err != nil {
		t.Fatal(err)
	}

	stored, err := store.GetUser(ctx, user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.LastLogin == nil || !stored.LastLogin.Equal(at) {
		t.Fatalf("last_login = %v", stored.LastLogin)
	}
}

func TestRevokeIsSingleUse(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	expires := time.Now().Add(time.Hour)

	if err := store.Revoke(ctx, "jti-1", expires); err != nil {
		t.Fatal(err)
	}
	revoked, err := store.IsRevoked(ctx, "jti-1")
	if err != nil || !revoked {
		t.Fatalf("revoked = %v, %v", revoked, err)
	}
	if err := store.Revoke(ctx, "jti-1", expires); !errors.Is(err, domainerrors.ErrTokenAlreadyRevoked) {
		t.Fatalf("err = %v", err)
	}
}

func TestBlacklistPurgesExpiredEntries(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Revoke(ctx, "jti-old", time.Now().Add(-time.Minute)); err != nil {
		t.Fatal(err)
	}

	revoked, err := store.IsRevoked(ctx, "jti-old")
	if err != nil {
		t.Fatal(err)
	}
	if revoked {
		t.Fatal("entry past its token expiry should have been purged")
	}
	// The jti is usable again once purged; the token itself is already
	// expired so nothing is gained by replaying it.
	if err := store.Revoke(ctx, "jti-old", time.Now().Add(time.Hour)); err != nil {
		t.Fatal(err)
	}
}
