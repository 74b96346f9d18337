package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"gps-tracking-be/internal/pkg/logger"
	"gps-tracking-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func attach(hub *Hub, buffer int) *Client {
	client := &Client{Hub: hub, Remote: "test", Send: make(chan []byte, buffer)}
	if !hub.join(client) {
		panic("hub stopped")
	}
	return client
}

func TestHub_PublishReachesEveryClient(t *testing.T) {
	hub, _ := runHub(t)
	a := attach(hub, 4)
	b := attach(hub, 4)
	require.Eventually(t, func() bool { return hub.Clients() == 2 }, time.Second, 5*time.Millisecond)

	evt := events.New(events.PaymentRecorded, map[string]interface{}{"reference": "PAY-1"})
	require.NoError(t, hub.Publish(context.Background(), evt))

	for _, c := range []*Client{a, b} {
		var frame map[string]interface{}
		require.NoError(t, json.Unmarshal(<-c.Send, &frame))
		assert.Equal(t, events.PaymentRecorded, frame["type"])
		assert.Equal(t, "PAY-1", frame["data"].(map[string]interface{})["reference"])
	}
}

func TestHub_DropsClientWithFullBuffer(t *testing.T) {
	hub, _ := runHub(t)
	slow := attach(hub, 0)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, hub.Publish(context.Background(), events.New(events.PaymentRecorded, nil)))

	assert.Equal(t, 0, hub.Clients())
	_, open := <-slow.Send
	assert.False(t, open)
}

func TestHub_UnregisterAndShutdown(t *testing.T) {
	hub, cancel := runHub(t)
	a := attach(hub, 1)
	b := attach(hub, 1)
	hub.leave(a)
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	require.Eventually(t, func() bool { return hub.Clients() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-b.Send
	assert.False(t, open)
}

func TestHub_JoinAndLeaveAfterShutdownDoNotBlock(t *testing.T) {
	hub, cancel := runHub(t)
	a := attach(hub, 1)
	cancel()
	require.Eventually(t, func() bool {
		select {
		case <-hub.done:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	finished := make(chan bool)
	go func() {
		hub.leave(a)
		finished <- hub.join(&Client{Hub: hub, Remote: "late", Send: make(chan []byte, 1)})
	}()

	select {
	case joined := <-finished:
		assert.False(t, joined)
	case <-time.After(time.Second):
		t.Fatal("hub calls blocked after shutdown")
	}
	assert.Equal(t, 0, hub.Clients())
}
