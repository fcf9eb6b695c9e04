// Package account owns user identity: registration, credential
// verification, JWT access/refresh issuance and revocation, self-service
// profile and password updates, and the public user view.
package account
