// Package models defines the records persisted by the server and the
// identity extracted from a validated token.
package models

import "time"

// Account is a registered user. PasswordHash holds the bcrypt digest of the
// password; it must never appear in any response body.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
