// Package memory is a process-local credential store for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]entity.User
	now     func() time.Time
}

// NewUserRepository returns an empty store. The email map is its unique index.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byEmail: make(map[string]entity.User),
		now:     time.Now,
	}
}

// FindByEmail returns a copy of the stored user.
func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

// Create stores user under a new UUIDv7 unless the email is taken.
func (r *userRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return domainerrors.ErrEmailAlreadyExists.WrapMessage("duplicate email in memory store")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	user.ID = id.String()
	user.CreatedAt = r.now().UTC()
	r.byEmail[user.Email] = *user

	return nil
}
