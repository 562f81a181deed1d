package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/angristan/smartroom-tui/internal/models"
)

var (
	ErrDuplicateRoom  = errors.New("duplicate room id")
	ErrRoomSetChanged = errors.New("mutation added or removed rooms")
	ErrClosed         = errors.New("store closed")
)

// Updater computes the next room list from the current one
type Updater func(current []models.Room) ([]models.Room, error)

// Snapshot is the room list as of one applied mutation
type Snapshot struct {
	Version uint64
	Rooms   []models.Room
}

// RoomStore is the contract the UI depends on.
// Rooms are always returned as copies; the store is the only owner.
type RoomStore interface {
	Rooms() []models.Room
	Room(id string) (models.Room, error)
	Mutate(ctx context.Context, update Updater) error
	Subscribe() <-chan Snapshot
}

// Store owns the canonical room list and serializes every mutation
type Store struct {
	mu      sync.Mutex
	rooms   []models.Room
	version uint64
	repo    Repository
	logger  *zap.Logger
	subs    []chan Snapshot
	closed  bool
}

// New loads the rooms from repo and returns a ready store
func New(ctx context.Context, repo Repository, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	rooms, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	if err := checkUnique(rooms); err != nil {
		return nil, err
	}

	logger.Info("room store loaded", zap.Int("rooms", len(rooms)))

	return &Store{
		rooms:  models.CloneRooms(rooms),
		repo:   repo,
		logger: logger,
	}, nil
}

// Rooms returns a copy of the current room list
func (s *Store) Rooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneRooms(s.rooms)
}

// Room returns a copy of one room
func (s *Store) Room(id string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Find(s.rooms, id)
}

// Snapshot returns the current list together with its version
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Version: s.version, Rooms: models.CloneRooms(s.rooms)}
}

// Mutate applies exactly one update against the latest room list.
// Changed rooms are persisted before the new list is committed, so a
// failed save leaves the store untouched.
func (s *Store) Mutate(ctx context.Context, update Updater) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	next, err := update(models.CloneRooms(s.rooms))
	if err != nil {
		return err
	}
	if err := checkSameRooms(s.rooms, next); err != nil {
		return err
	}

	changed := changedRooms(s.rooms, next)
	if len(changed) == 0 {
		return nil
	}

	for _, room := range changed {
		if err := s.repo.Save(ctx, room); err != nil {
			s.logger.Error("failed to persist room", zap.String("room_id", room.ID), zap.Error(err))
			return fmt.Errorf("failed to save room %s: %w", room.ID, err)
		}
	}

	s.rooms = models.CloneRooms(next)
	s.version++

	for _, room := range changed {
		s.logger.Info("room updated",
			zap.String("room_id", room.ID),
			zap.String("status", room.Status.String()),
			zap.Uint64("version", s.version),
		)
	}

	s.publish()
	return nil
}

// Toggle applies the toggle rule to one room and returns its new value
func (s *Store) Toggle(ctx context.Context, id string) (models.Room, error) {
	var updated models.Room
	err := s.Mutate(ctx, func(rooms []models.Room) ([]models.Room, error) {
		room, err := models.Find(rooms, id)
		if err != nil {
			return nil, err
		}
		updated = models.Toggled(room)
		return models.Upsert(rooms, updated)
	})
	if err != nil {
		return models.Room{}, err
	}
	return updated, nil
}

// SetStatus sets a room to an explicit status. This is the only way a
// room reaches Shutoff; UI controls go through Toggle.
func (s *Store) SetStatus(ctx context.Context, id string, status models.Status) (models.Room, error) {
	switch status {
	case models.StatusOn, models.StatusIdle, models.StatusShutoff:
	default:
		return models.Room{}, fmt.Errorf("%w: %d", models.ErrInvalidStatus, int(status))
	}

	var updated models.Room
	err := s.Mutate(ctx, func(rooms []models.Room) ([]models.Room, error) {
		room, err := models.Find(rooms, id)
		if err != nil {
			return nil, err
		}
		updated = room.WithStatus(status)
		return models.Upsert(rooms, updated)
	})
	if err != nil {
		return models.Room{}, err
	}
	return updated, nil
}

// Subscribe returns a channel that receives the latest snapshot after
// each mutation. Slow readers only ever see the newest one.
func (s *Store) Subscribe() <-chan Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, 1)
	if s.closed {
		close(ch)
		return ch
	}
	s.subs = append(s.subs, ch)
	return ch
}

// Close closes every subscription and the repository
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
	return s.repo.Close()
}

// publish must be called with mu held
func (s *Store) publish() {
	snap := Snapshot{Version: s.version, Rooms: models.CloneRooms(s.rooms)}
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- snap
	}
}

func checkUnique(rooms []models.Room) error {
	seen := make(map[string]struct{}, len(rooms))
	for _, r := range rooms {
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateRoom, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

func checkSameRooms(prev, next []models.Room) error {
	if err := checkUnique(next); err != nil {
		return err
	}
	if len(prev) != len(next) {
		return ErrRoomSetChanged
	}
	for _, r := range prev {
		if models.IndexOf(next, r.ID) < 0 {
			return fmt.Errorf("%w: %s missing", ErrRoomSetChanged, r.ID)
		}
	}
	return nil
}

func changedRooms(prev, next []models.Room) []models.Room {
	var changed []models.Room
	for _, r := range next {
		idx := models.IndexOf(prev, r.ID)
		if idx < 0 || !roomEqual(prev[idx], r) {
			changed = append(changed, r)
		}
	}
	return changed
}

func roomEqual(a, b models.Room) bool {
	return a.ID == b.ID && a.Name == b.Name && a.Status == b.Status && slices.Equal(a.Schedules, b.Schedules)
}

// Compile-time check that Store implements RoomStore
var _ RoomStore = (*Store)(nil)
