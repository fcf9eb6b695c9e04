package errors

import "errors"

var (
	// ErrInvalidCredentials is returned for unknown email and wrong
	// password alike, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("No active account found with the given credentials")

	ErrUserNotFound           = errors.New("user not found")
	ErrEmailTaken             = errors.New("a user with this email already exists")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAlreadyAuthenticated   = errors.New("already authenticated")
	ErrNotResourceOwner       = errors.New("not the owner of this user record")

	// Refresh path.
	ErrTokenInvalid = errors.New("token is invalid or expired")

	// Logout path keeps its failure kinds distinct.
	ErrRefreshTokenRequired = errors.New("refresh token required")
	ErrTokenMalformed       = errors.New("refresh token malformed")
	ErrTokenAlreadyRevoked  = errors.New("refresh token already revoked")
)

// ValidationError is a field-keyed input error surfaced as a 400 body.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidation(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
