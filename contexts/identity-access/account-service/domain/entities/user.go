package entities

import "time"

// User is an account registered by email. LastLogin stays nil until the
// first successful login.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	DateJoined   time.Time
	LastLogin    *time.Time
}
