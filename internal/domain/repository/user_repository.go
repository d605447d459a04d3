// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"authsvc/internal/domain/entity"
	"authsvc/internal/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store. Implementations must enforce email
// uniqueness at the storage level.
type UserRepository interface {
	// FindByEmail retrieves a single user by an exact, case-sensitive email match.
	// It returns ErrUserNotFound when no user has that email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and assigns its ID and CreatedAt.
	// It fails with domainerrors.ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user *entity.User) error
}
