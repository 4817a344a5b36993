package repository

import (
	"errors"
	"sync"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

// ErrRecordNotFound is returned by lookups when no record matches.
var ErrRecordNotFound = errors.New("record not found")

// Store is the process-wide volatile database. All entity kinds share one
// monotonically increasing identifier counter, so no two records ever
// receive the same id within a process lifetime. The mutex guards map and
// slice integrity only; there is no cross-call transaction, and concurrent
// timetable saves for the same section resolve as last write wins.
type Store struct {
	mu     sync.RWMutex
	nextID int

	users    []models.User
	branches []models.Branch
	sections []models.Section
	teachers []models.Teacher
	rooms    []models.Room
	subjects []models.Subject
	courses  []models.Course

	timetables map[int]models.Timetable
}

// NewStore initialises an empty store.
func NewStore() *Store {
	return &Store{
		nextID:     1,
		timetables: make(map[int]models.Timetable),
	}
}

// allocateID hands out the next identifier. Callers must hold s.mu.
func (s *Store) allocateID() int {
	id := s.nextID
	s.nextID++
	return id
}
