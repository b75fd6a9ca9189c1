package livefeed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"complaintdesk/backend/internal/livefeed"
	"complaintdesk/backend/internal/models"
)

func TestManager_RegisterUnregister(t *testing.T) {
	hub := livefeed.NewManagerService()
	client := newMockClient("conn-1", "user_A", 10)

	go hub.Run()

	hub.RegisterCh <- client
	time.Sleep(100 * time.Millisecond)
	assert.Contains(t, hub.Clients, "conn-1")

	hub.UnregisterCh <- client
	time.Sleep(100 * time.Millisecond)
	assert.NotContains(t, hub.Clients, "conn-1")
	assert.True(t, client.Closed(), "unregister should close the client")
}

func TestManager_BroadcastFanout(t *testing.T) {
	hub := livefeed.NewManagerService()
	clientA := newMockClient("conn-A", "user_A", 10)
	clientB := newMockClient("conn-B", "user_B", 10)

	go hub.Run()

	hub.RegisterCh <- clientA
	hub.RegisterCh <- clientB
	time.Sleep(100 * time.Millisecond)

	event := models.FeedEvent{
		Type:      models.FeedComplaintCreated,
		Complaint: models.Complaint{Text: "loud music again", Category: "Noise", Status: models.StatusPending},
	}
	hub.Broadcast(event)
	time.Sleep(100 * time.Millisecond)

	for _, client := range []*MockClient{clientA, clientB} {
		select {
		case got := <-client.RecvChannel:
			assert.Equal(t, models.FeedComplaintCreated, got.Type)
			assert.Equal(t, "Noise", got.Complaint.Category)
		default:
			t.Errorf("client %s did not receive the event", client.GetID())
		}
	}
}

func TestManager_SlowClientDisconnected(t *testing.T) {
	hub := livefeed.NewManagerService()
	// Zero buffer and nobody reading: the fan-out must not block on it.
	slow := newMockClient("conn-slow", "user_A", 0)
	healthy := newMockClient("conn-ok", "user_B", 10)

	go hub.Run()

	hub.RegisterCh <- slow
	hub.RegisterCh <- healthy
	time.Sleep(100 * time.Millisecond)

	hub.Broadcast(models.FeedEvent{Type: models.FeedStatusChanged})
	time.Sleep(100 * time.Millisecond)

	assert.NotContains(t, hub.Clients, "conn-slow", "slow client should be dropped")
	assert.True(t, slow.Closed())
	assert.Contains(t, hub.Clients, "conn-ok", "healthy client should stay connected")

	select {
	case got := <-healthy.RecvChannel:
		assert.Equal(t, models.FeedStatusChanged, got.Type)
	default:
		t.Error("healthy client did not receive the event")
	}
}
