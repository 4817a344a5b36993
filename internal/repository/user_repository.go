package repository

import (
	"context"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

// UserRepository manages administrator accounts in the shared store.
type UserRepository struct {
	store *Store
}

// NewUserRepository constructs a user repository.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create assigns an id and appends the user.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user.ID = r.store.allocateID()
	r.store.users = append(r.store.users, *user)
	return nil
}

// FindByEmail returns a user or ErrRecordNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, user := range r.store.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrRecordNotFound
}

// FindByID returns a user or ErrRecordNotFound.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, user := range r.store.users {
		if user.ID == id {
			u := user
			return &u, nil
		}
	}
	return nil, ErrRecordNotFound
}
