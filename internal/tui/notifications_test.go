package tui

import (
	"testing"
	"time"

	"github.com/angristan/smartroom-tui/internal/tui/components"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestQueue(ttl time.Duration) (*NotificationQueue, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)}
	q := NewNotificationQueue(ttl)
	q.now = clock.now
	return q, clock
}

func TestNotificationQueue_PushAndExpire(t *testing.T) {
	q, clock := newTestQueue(5 * time.Second)

	q.Push(components.VariantAlert, "Office shut off", "")
	if q.Len() != 1 {
		t.Fatalf("Expected 1 banner, got %d", q.Len())
	}

	clock.t = clock.t.Add(4 * time.Second)
	if !q.Cleanup() {
		t.Error("Expected banner to survive before expiry")
	}

	clock.t = clock.t.Add(time.Second)
	if q.Cleanup() {
		t.Error("Expected banner to expire at its deadline")
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}

func TestNotificationQueue_UniqueIDs(t *testing.T) {
	q, _ := newTestQueue(time.Second)

	a := q.Push(components.VariantWarning, "a", "")
	b := q.Push(components.VariantWarning, "b", "")
	if a == "" || a == b {
		t.Errorf("Expected distinct non-empty IDs, got %q and %q", a, b)
	}
}

func TestNotificationQueue_Dismiss(t *testing.T) {
	q, _ := newTestQueue(time.Minute)

	first := q.Push(components.VariantAlert, "first", "")
	q.Push(components.VariantCelebration, "second", "")

	if !q.Dismiss(first) {
		t.Fatal("Expected dismiss to find the banner")
	}
	if q.Dismiss(first) {
		t.Error("Expected second dismiss to be a no-op")
	}

	active := q.Active()
	if len(active) != 1 || active[0].Title != "second" {
		t.Errorf("Unexpected remaining banners: %+v", active)
	}

	newest, ok := q.Newest()
	if !ok || newest.Title != "second" {
		t.Fatalf("Expected newest banner second, got %+v", newest)
	}
	q.Dismiss(newest.ID)
	if _, ok := q.Newest(); ok {
		t.Error("Expected no banner left")
	}
}

func TestNotificationQueue_CapsLength(t *testing.T) {
	q, _ := newTestQueue(time.Minute)

	for _, title := range []string{"1", "2", "3", "4", "5"} {
		q.Push(components.VariantWarning, title, "")
	}

	active := q.Active()
	if len(active) != maxNotifications {
		t.Fatalf("Expected %d banners, got %d", maxNotifications, len(active))
	}
	if active[0].Title != "3" || active[2].Title != "5" {
		t.Errorf("Expected the newest banners to be kept, got %+v", active)
	}
}

func TestNotificationQueue_UnknownVariant(t *testing.T) {
	q, _ := newTestQueue(time.Minute)
	q.Push("confetti", "hello", "")

	if got := q.Active()[0].Variant; got != components.VariantAlert {
		t.Errorf("Expected unknown variant to fall back to alert, got %q", got)
	}
}

func TestNotificationQueue_DefaultTTL(t *testing.T) {
	q, clock := newTestQueue(0)
	q.Push(components.VariantAlert, "x", "")

	if got := q.Active()[0].ExpiresAt.Sub(clock.t); got != defaultNotificationTTL {
		t.Errorf("Expected default TTL %v, got %v", defaultNotificationTTL, got)
	}
}
