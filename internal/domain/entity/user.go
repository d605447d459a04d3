// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered identity. Email is the login key and is unique across all users.
type User struct {
	ID           string    // Assigned by the credential store at creation, never changed afterwards.
	Name         string    // Display name, only collected by the payments API variant.
	Email        string    // Case-sensitive login key.
	PasswordHash string    // bcrypt digest, never the plaintext and never serialized in responses.
	CreatedAt    time.Time // Timestamp of when this user account was created.
}
