package application

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"celestialbay/contexts/identity-access/account-service/domain/entities"
	domainerrors "celestialbay/contexts/identity-access/account-service/domain/errors"
	"celestialbay/contexts/identity-access/account-service/ports"
	"celestialbay/internal/shared/shaping"
)

type Service struct {
	Repo      ports.Repository
	Tokens    ports.TokenManager
	Blacklist ports.TokenBlacklist
	Galaxies  ports.GalaxyDirectory
	Clock     ports.Clock
	Logger    *slog.Logger

	PasswordMinLength int
}

// Register creates a new account. It is an unauthenticated-only operation:
// an already-authenticated caller is rejected.
func (s Service) Register(ctx context.Context, callerID string, in ports.RegisterInput) (entities.User, error) {
	if callerID != "" {
		return entities.User{}, domainerrors.ErrAlreadyAuthenticated
	}

	in.Email = strings.TrimSpace(in.Email)
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if err := requireField("email", in.Email); err != nil {
		return entities.User{}, err
	}
	if err := requireField("password", in.Password); err != nil {
		return entities.User{}, err
	}
	if err := requireField("password2", in.Password2); err != nil {
		return entities.User{}, err
	}
	if err := requireField("first_name", in.FirstName); err != nil {
		return entities.User{}, err
	}
	if err := requireField("last_name", in.LastName); err != nil {
		return entities.User{}, err
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return entities.User{}, domainerrors.NewValidation("email", "Enter a valid email address.")
	}
	if in.Password != in.Password2 {
		return entities.User{}, domainerrors.NewValidation("password", "Password fields do not match.")
	}
	if err := s.validatePassword(in.Password); err != nil {
		return entities.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	user, err := s.Repo.CreateUser(ctx, entities.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		DateJoined:   s.now(),
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			return entities.User{}, domainerrors.NewValidation("email", "A user with this email already exists.")
		}
		return entities.User{}, err
	}

	s.log().Info("user registered",
		"event", "user_registered",
		"module", "contexts/identity-access/account-service",
		"layer", "application",
		"user_id", user.ID,
	)
	return user, nil
}

// Login verifies credentials and issues an access/refresh pair. Unknown
// email and wrong password produce the same error.
func (s Service) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ports.LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return ports.LoginResult{}, domainerrors.ErrInvalidCredentials
		}
		return ports.LoginResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ports.LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	pair, err := s.Tokens.IssuePair(user.ID, user.Email)
	if err != nil {
		return ports.LoginResult{}, err
	}
	if err := s.Repo.RecordLogin(ctx, user.ID, s.now()); err != nil {
		return ports.LoginResult{}, err
	}

	return ports.LoginResult{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User: ports.UserSummary{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
		},
	}, nil
}

// Refresh exchanges a valid, non-revoked refresh token for a new access
// token.
func (s Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return "", domainerrors.NewValidation("refresh", "This field is required.")
	}

	claims, err := s.Tokens.Parse(refreshToken)
	if err != nil || claims.TokenType != ports.TokenTypeRefresh {
		return "", domainerrors.ErrTokenInvalid
	}
	revoked, err := s.Blacklist.IsRevoked(ctx, claims.JTI)
	if err != nil {
		return "", err
	}
	if revoked {
		return "", domainerrors.ErrTokenInvalid
	}
	return s.Tokens.IssueAccess(claims.UserID, claims.Email)
}

// Logout revokes the refresh token. Failure kinds stay distinct: absent,
// malformed and already-revoked tokens each carry their own error.
func (s Service) Logout(ctx context.Context, callerID, refreshToken string) error {
	if callerID == "" {
		return domainerrors.ErrAuthenticationRequired
	}
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return domainerrors.ErrRefreshTokenRequired
	}

	claims, err := s.Tokens.Parse(refreshToken)
	if err != nil || claims.TokenType != ports.TokenTypeRefresh {
		return domainerrors.ErrTokenMalformed
	}
	if err := s.Blacklist.Revoke(ctx, claims.JTI, claims.ExpiresAt); err != nil {
		return err
	}

	s.log().Info("refresh token revoked",
		"event", "refresh_token_revoked",
		"module", "contexts/identity-access/account-service",
		"layer", "application",
		"user_id", callerID,
	)
	return nil
}

// ChangePassword rotates the caller's own password after verifying the old
// one.
func (s Service) ChangePassword(ctx context.Context, callerID, targetID, oldPassword, password, password2 string) error {
	if callerID == "" {
		return domainerrors.ErrAuthenticationRequired
	}
	if callerID != targetID {
		return domainerrors.ErrNotResourceOwner
	}

	user, err := s.Repo.GetUser(ctx, targetID)
	if err != nil {
		return err
	}
	if err := requireField("old_password", oldPassword); err != nil {
		return err
	}
	if err := requireField("password", password); err != nil {
		return err
	}
	if err := requireField("password2", password2); err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return domainerrors.NewValidation("old_password", "Old password is not correct.")
	}
	if password != password2 {
		return domainerrors.NewValidation("password", "Password fields do not match.")
	}
	if err := s.validatePassword(password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.Repo.UpdateUser(ctx, user)
}

// UpdateUser updates the caller's own email and name fields.
func (s Service) UpdateUser(ctx context.Context, callerID, targetID, email, firstName, lastName string) (entities.User, error) {
	if callerID == "" {
		return entities.User{}, domainerrors.ErrAuthenticationRequired
	}
	if callerID != targetID {
		return entities.User{}, domainerrors.ErrNotResourceOwner
	}

	email = strings.TrimSpace(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if err := requireField("email", email); err != nil {
		return entities.User{}, err
	}
	if err := requireField("first_name", firstName); err != nil {
		return entities.User{}, err
	}
	if err := requireField("last_name", lastName); err != nil {
		return entities.User{}, err
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.User{}, domainerrors.NewValidation("email", "Enter a valid email address.")
	}

	inUse, err := s.Repo.EmailInUse(ctx, email, targetID)
	if err != nil {
		return entities.User{}, err
	}
	if inUse {
		return entities.User{}, domainerrors.NewValidation("email", "This email is already in use.")
	}

	user, err := s.Repo.GetUser(ctx, targetID)
	if err != nil {
		return entities.User{}, err
	}
	user.Email = email
	user.FirstName = firstName
	user.LastName = lastName
	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

// GetUser returns the public view of a user, optionally expanding its
// galaxies.
func (s Service) GetUser(ctx context.Context, id string, shape shaping.Params) (shaping.Document, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	doc := publicUserDoc(user)
	if err := shaping.Shape(ctx, s.userResource(), []shaping.Document{doc}, shape); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s Service) userResource() *shaping.Resource {
	if s.Galaxies == nil {
		return &shaping.Resource{}
	}
	return &shaping.Resource{Relations: map[string]shaping.Relation{
		"galaxies": {Loader: s.loadGalaxies},
	}}
}

func (s Service) loadGalaxies(ctx context.Context, parentKeys []any) (map[any][]shaping.Document, error) {
	ids := make([]string, 0, len(parentKeys))
	for _, key := range parentKeys {
		if id, ok := key.(string); ok {
			ids = append(ids, id)
		}
	}
	grouped, err := s.Galaxies.GalaxiesOwnedBy(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[any][]shaping.Document, len(grouped))
	for id, docs := range grouped {
		out[id] = docs
	}
	return out, nil
}

func publicUserDoc(user entities.User) shaping.Document {
	doc := shaping.Document{
		"pk":          user.ID,
		"first_name":  user.FirstName,
		"last_name":   user.LastName,
		"date_joined": user.DateJoined.UTC().Format(time.RFC3339),
	}
	if user.LastLogin != nil {
		doc["last_login"] = user.LastLogin.UTC().Format(time.RFC3339)
	} else {
		doc["last_login"] = nil
	}
	return doc
}

func (s Service) validatePassword(password string) error {
	minLength := s.PasswordMinLength
	if minLength <= 0 {
		minLength = 8
	}
	if len(password) < minLength {
		return domainerrors.NewValidation("password", "This password is too short.")
	}
	numeric := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			numeric = false
			break
		}
	}
	if numeric {
		return domainerrors.NewValidation("password", "This password is entirely numeric.")
	}
	return nil
}

func requireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domainerrors.NewValidation(field, "This field is required.")
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) log() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
