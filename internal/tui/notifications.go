package tui

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/angristan/smartroom-tui/internal/tui/components"
)

const defaultNotificationTTL = 5 * time.Second

// maxNotifications caps how many banners are stacked at once
const maxNotifications = 3

// Notification is an ephemeral banner
type Notification struct {
	ID          string
	Variant     string // "warning", "alert", "celebration"
	Title       string
	Description string
	ExpiresAt   time.Time
}

// NotificationQueue holds the banners currently on screen
type NotificationQueue struct {
	items []*Notification
	ttl   time.Duration
	now   func() time.Time
	mu    sync.Mutex
}

// NewNotificationQueue creates a queue whose banners live for ttl
func NewNotificationQueue(ttl time.Duration) *NotificationQueue {
	if ttl <= 0 {
		ttl = defaultNotificationTTL
	}
	return &NotificationQueue{
		ttl: ttl,
		now: time.Now,
	}
}

// Push adds a banner and returns its ID. Unknown variants become alerts.
// The oldest banner is dropped when the queue is full.
func (q *NotificationQueue) Push(variant, title, description string) string {
	switch variant {
	case components.VariantWarning, components.VariantAlert, components.VariantCelebration:
	default:
		variant = components.VariantAlert
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	n := &Notification{
		ID:          uuid.NewString(),
		Variant:     variant,
		Title:       title,
		Description: description,
		ExpiresAt:   q.now().Add(q.ttl),
	}
	q.items = append(q.items, n)
	if len(q.items) > maxNotifications {
		q.items = q.items[len(q.items)-maxNotifications:]
	}
	return n.ID
}

// Dismiss removes a banner by ID
func (q *NotificationQueue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, n := range q.items {
		if n.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return true
		}
	}
	return false
}

// Newest returns a copy of the most recent banner
func (q *NotificationQueue) Newest() (Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return Notification{}, false
	}
	return *q.items[len(q.items)-1], true
}

// Cleanup removes expired banners and reports whether any remain
func (q *NotificationQueue) Cleanup() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	kept := q.items[:0]
	for _, n := range q.items {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	q.items = kept
	return len(q.items) > 0
}

// Active returns copies of the visible banners, oldest first
func (q *NotificationQueue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.items))
	for i, n := range q.items {
		out[i] = *n
	}
	return out
}

// Len returns the number of visible banners
func (q *NotificationQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
