package repository

import (
	"context"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

// CourseRepository manages course records in the shared store.
type CourseRepository struct {
	store *Store
}

// NewCourseRepository constructs a course repository.
func NewCourseRepository(store *Store) *CourseRepository {
	return &CourseRepository{store: store}
}

// Create assigns an id and appends the course.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	course.ID = r.store.allocateID()
	r.store.courses = append(r.store.courses, *course)
	return nil
}

// Delete removes a course.
func (r *CourseRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, course := range r.store.courses {
		if course.ID == id {
			r.store.courses = append(r.store.courses[:i], r.store.courses[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// List returns all courses in insertion order.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.Course, len(r.store.courses))
	copy(out, r.store.courses)
	return out, nil
}

// ListBySectionID returns a section's courses preserving insertion order.
// The ordering is load-bearing: the assignment engine's rotation and
// first-fit policies depend on it being stable between calls.
func (r *CourseRepository) ListBySectionID(ctx context.Context, sectionID int) ([]models.Course, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []models.Course
	for _, course := range r.store.courses {
		if course.SectionID == sectionID {
			out = append(out, course)
		}
	}
	return out, nil
}
