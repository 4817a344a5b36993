package repository

import (
	"context"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

// TeacherRepository manages teacher records in the shared store.
type TeacherRepository struct {
	store *Store
}

// NewTeacherRepository constructs a teacher repository.
func NewTeacherRepository(store *Store) *TeacherRepository {
	return &TeacherRepository{store: store}
}

// Create assigns an id and appends the teacher.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	teacher.ID = r.store.allocateID()
	r.store.teachers = append(r.store.teachers, *teacher)
	return nil
}

// Delete removes a teacher.
func (r *TeacherRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, teacher := range r.store.teachers {
		if teacher.ID == id {
			r.store.teachers = append(r.store.teachers[:i], r.store.teachers[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// List returns all teachers in insertion order.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.Teacher, len(r.store.teachers))
	copy(out, r.store.teachers)
	return out, nil
}

// FindByID returns a teacher or ErrRecordNotFound.
func (r *TeacherRepository) FindByID(ctx context.Context, id int) (*models.Teacher, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, teacher := range r.store.teachers {
		if teacher.ID == id {
			t := teacher
			return &t, nil
		}
	}
	return nil, ErrRecordNotFound
}

// ExistsByEmployeeID reports whether a teacher already uses the employee id.
func (r *TeacherRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, teacher := range r.store.teachers {
		if teacher.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}
