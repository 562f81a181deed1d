package store

import (
	"context"
	"sync"

	"github.com/angristan/smartroom-tui/internal/models"
)

// Repository persists rooms between runs
type Repository interface {
	// Load returns every room in display order
	Load(ctx context.Context) ([]models.Room, error)
	// Save overwrites one existing room
	Save(ctx context.Context, room models.Room) error
	Close() error
}

// MemoryRepository keeps rooms in memory only
type MemoryRepository struct {
	rooms []models.Room
	mu    sync.RWMutex
}

// NewMemoryRepository creates a repository holding a copy of rooms
func NewMemoryRepository(rooms []models.Room) *MemoryRepository {
	return &MemoryRepository{rooms: models.CloneRooms(rooms)}
}

// Load returns a copy of the stored rooms
func (r *MemoryRepository) Load(ctx context.Context) ([]models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return models.CloneRooms(r.rooms), nil
}

// Save replaces the stored room with the same ID
func (r *MemoryRepository) Save(ctx context.Context, room models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := models.Upsert(r.rooms, room)
	if err != nil {
		return err
	}
	r.rooms = next
	return nil
}

// Close is a no-op
func (r *MemoryRepository) Close() error {
	return nil
}

var _ Repository = (*MemoryRepository)(nil)
