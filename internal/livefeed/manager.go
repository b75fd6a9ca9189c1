// Package livefeed pushes complaint events to connected staff dashboards in
// real time, so the records view updates without polling.
package livefeed

import (
	"log"

	"complaintdesk/backend/internal/models"
)

// ManagerService is the hub: it owns the set of connected clients and fans
// broadcast events out to them. All state changes go through Run's loop, so
// the Clients map needs no locking.
type ManagerService struct {
	Clients map[string]Client

	// Channels
	BroadcastCh  chan models.FeedEvent
	RegisterCh   chan Client
	UnregisterCh chan Client
}

// NewManagerService creates a new feed hub.
func NewManagerService() *ManagerService {
	return &ManagerService{
		Clients:      make(map[string]Client),
		BroadcastCh:  make(chan models.FeedEvent, 64),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
	}
}

// Broadcast queues an event for delivery to every connected client.
func (m *ManagerService) Broadcast(event models.FeedEvent) {
	select {
	case m.BroadcastCh <- event:
	default:
		// Hub not running or saturated; the feed is advisory, drop it.
		log.Printf("WARN: Feed event %s dropped, broadcast channel full", event.Type)
	}
}

// Run is the hub's main dispatch loop. Start it in its own goroutine.
func (m *ManagerService) Run() {
	for {
		select {
		case client := <-m.RegisterCh:
			m.Clients[client.GetID()] = client
			log.Printf("INFO: Feed client %s registered (user %s)", client.GetID(), client.GetUserID())

		case client := <-m.UnregisterCh:
			if _, ok := m.Clients[client.GetID()]; ok {
				delete(m.Clients, client.GetID())
				client.Close()
				log.Printf("INFO: Feed client %s unregistered", client.GetID())
			}

		case event := <-m.BroadcastCh:
			for id, client := range m.Clients {
				select {
				case client.GetSendChannel() <- event:
				default:
					// Slow consumer: drop the connection rather than
					// block the whole feed.
					delete(m.Clients, id)
					client.Close()
					log.Printf("WARN: Feed client %s too slow, disconnected", id)
				}
			}
		}
	}
}
