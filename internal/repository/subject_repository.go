package repository

import (
	"context"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

// SubjectRepository manages subject records in the shared store.
type SubjectRepository struct {
	store *Store
}

// NewSubjectRepository constructs a subject repository.
func NewSubjectRepository(store *Store) *SubjectRepository {
	return &SubjectRepository{store: store}
}

// Create assigns an id and appends the subject.
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	subject.ID = r.store.allocateID()
	r.store.subjects = append(r.store.subjects, *subject)
	return nil
}

// Delete removes a subject.
func (r *SubjectRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, subject := range r.store.subjects {
		if subject.ID == id {
			r.store.subjects = append(r.store.subjects[:i], r.store.subjects[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// List returns all subjects in insertion order.
func (r *SubjectRepository) List(ctx context.Context) ([]models.Subject, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.Subject, len(r.store.subjects))
	copy(out, r.store.subjects)
	return out, nil
}

// FindByID returns a subject or ErrRecordNotFound.
func (r *SubjectRepository) FindByID(ctx context.Context, id int) (*models.Subject, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, subject := range r.store.subjects {
		if subject.ID == id {
			s := subject
			return &s, nil
		}
	}
	return nil, ErrRecordNotFound
}
