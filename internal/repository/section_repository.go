package repository

import (
	"context"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

// SectionRepository manages section records in the shared store.
type SectionRepository struct {
	store *Store
}

// NewSectionRepository constructs a section repository.
func NewSectionRepository(store *Store) *SectionRepository {
	return &SectionRepository{store: store}
}

// Create assigns an id and appends the section.
func (r *SectionRepository) Create(ctx context.Context, section *models.Section) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	section.ID = r.store.allocateID()
	r.store.sections = append(r.store.sections, *section)
	return nil
}

// List returns all sections in insertion order.
func (r *SectionRepository) List(ctx context.Context) ([]models.Section, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.Section, len(r.store.sections))
	copy(out, r.store.sections)
	return out, nil
}

// FindByID returns a section or ErrRecordNotFound.
func (r *SectionRepository) FindByID(ctx context.Context, id int) (*models.Section, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, section := range r.store.sections {
		if section.ID == id {
			s := section
			return &s, nil
		}
	}
	return nil, ErrRecordNotFound
}

// Delete removes a section and any timetable stored for it.
func (r *SectionRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, section := range r.store.sections {
		if section.ID == id {
			r.store.sections = append(r.store.sections[:i], r.store.sections[i+1:]...)
			delete(r.store.timetables, id)
			return nil
		}
	}
	return ErrRecordNotFound
}
