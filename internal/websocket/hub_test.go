// internal/websocket/hub_test.go
package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func TestHubKeepsRunningWhenClientBufferOverflows(t *testing.T) {
	hub := startHub(t)

	// A client whose buffer is already full. The connected event sent during
	// registration overflows it.
	slow := NewClient(hub, nil, 7)
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("{}")
	}
	hub.register <- slow

	done := make(chan struct{})
	go func() {
		hub.register <- NewClient(hub, nil, 8)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("hub stopped accepting registrations after a slow client")
	}

	require.Eventually(t, func() bool {
		return hub.IsConnected(8)
	}, 2*time.Second, 10*time.Millisecond)

	// The overflowing client was cancelled rather than left to wedge the hub.
	select {
	case <-slow.ctx.Done():
	default:
		t.Fatal("slow client was not cancelled")
	}
}

func TestHubDeliversToSlowClientWithoutBlocking(t *testing.T) {
	hub := startHub(t)

	slow := NewClient(hub, nil, 7)
	for i := 0; i < cap(slow.send); i++ {
		slow.send <- []byte("{}")
	}
	hub.register <- slow

	// Both notifications target the wedged user; neither may stall the hub.
	hub.NotifyNewMessage(7, "ad1", "iPhone 13 Pro", "Buyer")
	hub.NotifyAdStatus(7, "ad1", "sold")

	healthy := NewClient(hub, nil, 9)
	hub.register <- healthy

	require.Eventually(t, func() bool {
		return hub.IsConnected(9)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClientCloseIsIdempotent(t *testing.T) {
	hub := NewHub(nil, zap.NewNop())
	c := NewClient(hub, nil, 1)

	c.Close()
	assert.NotPanics(t, func() { c.Close() })

	// Send after close is a no-op, not a panic.
	assert.NotPanics(t, func() {
		c.Send(&Event{Type: EventPing, At: time.Now()})
	})
}
