package errors

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrPermissionDenied       = errors.New("permission denied")

	ErrConstellationNotFound = errors.New("constellation not found")
	ErrGalaxyNotFound        = errors.New("galaxy not found")
	ErrPostNotFound          = errors.New("post not found")
	ErrCommentNotFound       = errors.New("comment not found")
	ErrImageNotFound         = errors.New("image not found")

	ErrConstellationNameTaken = errors.New("constellation name already exists")
	ErrGalaxyNameTaken        = errors.New("galaxy name already exists")
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
