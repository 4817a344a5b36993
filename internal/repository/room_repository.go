package repository

import (
	"context"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
)

// RoomRepository manages room records in the shared store.
type RoomRepository struct {
	store *Store
}

// NewRoomRepository constructs a room repository.
func NewRoomRepository(store *Store) *RoomRepository {
	return &RoomRepository{store: store}
}

// Create assigns an id and appends the room.
func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	room.ID = r.store.allocateID()
	r.store.rooms = append(r.store.rooms, *room)
	return nil
}

// Delete removes a room.
func (r *RoomRepository) Delete(ctx context.Context, id int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, room := range r.store.rooms {
		if room.ID == id {
			r.store.rooms = append(r.store.rooms[:i], r.store.rooms[i+1:]...)
			return nil
		}
	}
	return ErrRecordNotFound
}

// List returns all rooms in insertion order.
func (r *RoomRepository) List(ctx context.Context) ([]models.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]models.Room, len(r.store.rooms))
	copy(out, r.store.rooms)
	return out, nil
}

// FindByID returns a room or ErrRecordNotFound.
func (r *RoomRepository) FindByID(ctx context.Context, id int) (*models.Room, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, room := range r.store.rooms {
		if room.ID == id {
			rm := room
			return &rm, nil
		}
	}
	return nil, ErrRecordNotFound
}
