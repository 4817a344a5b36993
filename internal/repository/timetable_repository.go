package repository

import (
	"context"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

// TimetableRepository stores generated timetables keyed by section id. A
// section holds at most one record; Save overwrites unconditionally and the
// superseded record is discarded.
type TimetableRepository struct {
	store *Store
}

// NewTimetableRepository constructs a timetable repository.
func NewTimetableRepository(store *Store) *TimetableRepository {
	return &TimetableRepository{store: store}
}

// Save replaces the stored record for the timetable's section.
func (r *TimetableRepository) Save(ctx context.Context, timetable models.Timetable) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.timetables[timetable.SectionID] = timetable
	return nil
}

// FindBySectionID returns the most recently stored record for a section.
func (r *TimetableRepository) FindBySectionID(ctx context.Context, sectionID int) (*models.Timetable, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	timetable, ok := r.store.timetables[sectionID]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return &timetable, nil
}

// List returns summaries of every stored timetable.
func (r *TimetableRepository) List(ctx context.Context) ([]models.TimetableSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.TimetableSummary, 0, len(r.store.timetables))
	for _, timetable := range r.store.timetables {
		total := 0
		for _, day := range timetable.Slots {
			total += len(day)
		}
		out = append(out, models.TimetableSummary{
			ID:          timetable.ID,
			SectionID:   timetable.SectionID,
			SectionName: timetable.SectionName,
			GeneratedAt: timetable.GeneratedAt,
			TotalSlots:  total,
			Conflicts:   timetable.Conflicts.TotalConflicts,
		})
	}
	return out, nil
}
