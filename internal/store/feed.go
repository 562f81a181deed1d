package store

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/angristan/smartroom-tui/internal/models"
)

// StatusEvent is a status reported by a room's hardware
type StatusEvent struct {
	RoomID string
	Status models.Status
	At     time.Time
}

// EventHandler is called with each delivered batch of events
type EventHandler func(events []StatusEvent)

// RoomSource is what the feed reads to pick rooms
type RoomSource interface {
	Rooms() []models.Room
}

// DeviceFeed simulates hardware reporting faults. Every interval it may
// report one powered room as shut off. Events are batched before delivery.
type DeviceFeed struct {
	source   RoomSource
	handler  EventHandler
	interval time.Duration
	faultPct int
	logger   *zap.Logger

	rng   *rand.Rand
	rngMu sync.Mutex

	mu      sync.Mutex
	done    chan struct{}
	running bool

	// Event batching
	eventBatch   []StatusEvent
	batchMu      sync.Mutex
	batchTimer   *time.Timer
	batchTimeout time.Duration
}

// NewDeviceFeed creates a feed reading rooms from source.
// faultPct is the chance, per tick, that a fault is reported.
func NewDeviceFeed(source RoomSource, handler EventHandler, interval time.Duration, faultPct int, seed uint64, logger *zap.Logger) *DeviceFeed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DeviceFeed{
		source:       source,
		handler:      handler,
		interval:     interval,
		faultPct:     faultPct,
		logger:       logger,
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		batchTimeout: 50 * time.Millisecond,
	}
}

// Start begins producing events
func (f *DeviceFeed) Start(ctx context.Context) error {
	f.mu.Lock()
	if f.running {
		f.mu.Unlock()
		return nil
	}
	f.running = true
	// A stopped feed closed the previous channel
	done := make(chan struct{})
	f.done = done
	f.mu.Unlock()

	go f.run(ctx, done)
	return nil
}

// Stop stops the feed. Calling it more than once is safe, and a stopped
// feed can be started again.
func (f *DeviceFeed) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.running {
		return
	}
	f.running = false
	close(f.done)

	f.batchMu.Lock()
	if f.batchTimer != nil {
		f.batchTimer.Stop()
	}
	f.batchMu.Unlock()
}

func (f *DeviceFeed) run(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case now := <-ticker.C:
			if ev, ok := f.next(now); ok {
				f.logger.Debug("device fault reported", zap.String("room_id", ev.RoomID))
				f.batchEvents([]StatusEvent{ev})
			}
		}
	}
}

// next decides whether a fault happens at now and on which room.
// Only rooms that are currently on or idle can fault.
func (f *DeviceFeed) next(now time.Time) (StatusEvent, bool) {
	f.rngMu.Lock()
	defer f.rngMu.Unlock()

	if f.rng.IntN(100) >= f.faultPct {
		return StatusEvent{}, false
	}

	var candidates []models.Room
	for _, room := range f.source.Rooms() {
		if room.Status != models.StatusShutoff {
			candidates = append(candidates, room)
		}
	}
	if len(candidates) == 0 {
		return StatusEvent{}, false
	}

	room := candidates[f.rng.IntN(len(candidates))]
	return StatusEvent{RoomID: room.ID, Status: models.StatusShutoff, At: now}, true
}

// batchEvents adds events to the batch and schedules delivery
func (f *DeviceFeed) batchEvents(events []StatusEvent) {
	f.batchMu.Lock()
	defer f.batchMu.Unlock()

	f.eventBatch = append(f.eventBatch, events...)

	if f.batchTimer != nil {
		f.batchTimer.Stop()
	}
	f.batchTimer = time.AfterFunc(f.batchTimeout, f.deliverBatch)
}

// deliverBatch sends the batched events to the handler
func (f *DeviceFeed) deliverBatch() {
	f.batchMu.Lock()
	batch := f.eventBatch
	f.eventBatch = nil
	f.batchMu.Unlock()

	if len(batch) > 0 && f.handler != nil {
		f.handler(batch)
	}
}

// ApplyEvents writes reported statuses into the store. Unknown rooms are
// logged and skipped.
func ApplyEvents(ctx context.Context, s *Store, events []StatusEvent, logger *zap.Logger) []models.Room {
	var applied []models.Room
	for _, ev := range events {
		room, err := s.SetStatus(ctx, ev.RoomID, ev.Status)
		if err != nil {
			logger.Warn("dropping device event", zap.String("room_id", ev.RoomID), zap.Error(err))
			continue
		}
		applied = append(applied, room)
	}
	return applied
}
