package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/angristan/smartroom-tui/internal/models"
)

func TestDeviceFeed_NextOnlyPicksPoweredRooms(t *testing.T) {
	s := newTestStore(t, []models.Room{
		{ID: "office", Status: models.StatusShutoff},
		{ID: "kitchen", Status: models.StatusOn},
	})
	feed := NewDeviceFeed(s, nil, time.Second, 100, 1, nil)

	for i := 0; i < 20; i++ {
		ev, ok := feed.next(time.Now())
		require.True(t, ok)
		require.Equal(t, "kitchen", ev.RoomID)
		require.Equal(t, models.StatusShutoff, ev.Status)
	}
}

func TestDeviceFeed_NoFaultsAtZeroPercent(t *testing.T) {
	s := newTestStore(t, kitchenAndBedroom())
	feed := NewDeviceFeed(s, nil, time.Second, 0, 1, nil)

	for i := 0; i < 20; i++ {
		_, ok := feed.next(time.Now())
		require.False(t, ok)
	}
}

func TestDeviceFeed_NothingLeftToFault(t *testing.T) {
	s := newTestStore(t, []models.Room{{ID: "office", Status: models.StatusShutoff}})
	feed := NewDeviceFeed(s, nil, time.Second, 100, 1, nil)

	_, ok := feed.next(time.Now())
	require.False(t, ok)
}

func TestDeviceFeed_BatchesEvents(t *testing.T) {
	delivered := make(chan []StatusEvent, 4)
	feed := NewDeviceFeed(newTestStore(t, nil), func(events []StatusEvent) {
		delivered <- events
	}, time.Hour, 0, 1, nil)

	feed.batchEvents([]StatusEvent{{RoomID: "a"}})
	feed.batchEvents([]StatusEvent{{RoomID: "b"}})

	select {
	case batch := <-delivered:
		require.Len(t, batch, 2)
		require.Equal(t, "a", batch[0].RoomID)
		require.Equal(t, "b", batch[1].RoomID)
	case <-time.After(2 * time.Second):
		t.Fatal("batch was never delivered")
	}
}

func TestDeviceFeed_StopIsIdempotent(t *testing.T) {
	feed := NewDeviceFeed(newTestStore(t, nil), nil, 10*time.Millisecond, 0, 1, nil)
	require.NoError(t, feed.Start(context.Background()))
	require.NoError(t, feed.Start(context.Background()))
	feed.Stop()
	feed.Stop()
}

func TestDeviceFeed_RestartAfterStop(t *testing.T) {
	delivered := make(chan []StatusEvent, 16)
	s := newTestStore(t, kitchenAndBedroom())
	feed := NewDeviceFeed(s, func(events []StatusEvent) {
		delivered <- events
	}, 5*time.Millisecond, 100, 1, nil)
	feed.batchTimeout = time.Millisecond

	require.NoError(t, feed.Start(context.Background()))
	feed.Stop()

	// Drain anything sent before Stop
	time.Sleep(20 * time.Millisecond)
	for len(delivered) > 0 {
		<-delivered
	}

	require.NoError(t, feed.Start(context.Background()))
	t.Cleanup(feed.Stop)

	select {
	case batch := <-delivered:
		require.NotEmpty(t, batch)
	case <-time.After(2 * time.Second):
		t.Fatal("restarted feed never reported an event")
	}
}

func TestApplyEvents(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, kitchenAndBedroom())

	applied := ApplyEvents(ctx, s, []StatusEvent{
		{RoomID: "kitchen", Status: models.StatusShutoff},
		{RoomID: "garage", Status: models.StatusShutoff},
	}, zap.NewNop())

	require.Len(t, applied, 1)
	room, err := s.Room("kitchen")
	require.NoError(t, err)
	require.Equal(t, models.StatusShutoff, room.Status)
}
