package repository

import (
	"context"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

// BranchRepository manages branch records in the shared store.
type BranchRepository struct {
	store *Store
}

// NewBranchRepository constructs a branch repository.
func NewBranchRepository(store *Store) *BranchRepository {
	return &BranchRepository{store: store}
}

// Create assigns an id and appends the branch.
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	branch.ID = r.store.allocateID()
	r.store.branches = append(r.store.branches, *branch)
	return nil
}

// Delete removes a branch.
func (r *BranchRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, branch := range r.store.branches {
		if branch.ID == id {
			r.store.branches = append(r.store.branches[:i], r.store.branches[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// List returns all branches in insertion order.
func (r *BranchRepository) List(ctx context.Context) ([]models.Branch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.Branch, len(r.store.branches))
	copy(out, r.store.branches)
	return out, nil
}

// FindByID returns a branch or ErrRecordNotFound.
func (r *BranchRepository) FindByID(ctx context.Context, id int) (*models.Branch, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, branch := range r.store.branches {
		if branch.ID == id {
			b := branch
			return &b, nil
		}
	}
	return nil, ErrRecordNotFound
}
