// Package models holds the data shapes exchanged with the store API.
package models

// User is one entry of the user directory fetched before login.
// Username is stored case-sensitively by the remote; matching on login is
// case-insensitive, but the canonical (stored) spelling must be used for the
// credential check.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
