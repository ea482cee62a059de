// Package services provides business logic services
package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Event describes a record lifecycle change broadcast to dashboard clients.
type Event struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"` // created, updated, deleted
	RecordID uint      `json:"recordId"`
	ActorID  uint      `json:"actorId"`
	At       time.Time `json:"at"`
}

// Subjects used on the bus. The hub subscribes to the wildcard.
const (
	subjectPrefix   = "records."
	subjectWildcard = "records.>"
)

// EventHub relays record events from NATS to WebSocket clients. Publishers
// and subscribers never talk to each other directly; everything goes through
// the bus, so the hub works unchanged if the bus ever moves out of process.
type EventHub struct {
	natsConn *nats.Conn
	sub      *nats.Subscription

	clients   map[*EventClient]bool
	clientsMu sync.RWMutex

	register   chan *EventClient
	unregister chan *EventClient

	eventsRelayed uint64
}

// NewEventHub creates a hub and subscribes it to record events.
func NewEventHub(natsConn *nats.Conn) (*EventHub, error) {
	h := &EventHub{
		natsConn:   natsConn,
		clients:    make(map[*EventClient]bool),
		register:   make(chan *EventClient),
		unregister: make(chan *EventClient),
	}

	sub, err := natsConn.Subscribe(subjectWildcard, func(msg *nats.Msg) {
		h.broadcast(msg.Data)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", subjectWildcard, err)
	}
	h.sub = sub

	return h, nil
}

// Run processes client registration. Call in a goroutine.
func (h *EventHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMu.Lock()
			h.clients[client] = true
			h.clientsMu.Unlock()
			log.Printf("📺 [EVENTHUB] client connected (%s), total=%d", client.remoteAddr, h.ClientCount())

		case client := <-h.unregister:
			h.clientsMu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMu.Unlock()
			log.Printf("📺 [EVENTHUB] client disconnected (%s), total=%d", client.remoteAddr, h.ClientCount())
		}
	}
}

// Publish emits a record event onto the bus.
func (h *EventHub) Publish(eventType string, recordID, actorID uint) error {
	event := Event{
		ID:       uuid.NewString(),
		Type:     eventType,
		RecordID: recordID,
		ActorID:  actorID,
		At:       time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return h.natsConn.Publish(subjectPrefix+eventType, data)
}

// Register adds a client to the hub
func (h *EventHub) Register(client *EventClient) {
	h.register <- client
}

// broadcast fans an event out to every connected client. Slow clients whose
// send buffer is full are dropped rather than allowed to stall the rest.
func (h *EventHub) broadcast(data []byte) {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			log.Printf("⚠️ [EVENTHUB] dropping slow client %s", client.remoteAddr)
			go func(c *EventClient) { h.unregister <- c }(client)
		}
	}
	atomic.AddUint64(&h.eventsRelayed, 1)
}

// ClientCount returns the number of connected clients.
func (h *EventHub) ClientCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// HubStats holds counters for the stats endpoint.
type HubStats struct {
	Clients       int    `json:"clients"`
	EventsRelayed uint64 `json:"eventsRelayed"`
}

// Stats returns current hub statistics.
func (h *EventHub) Stats() HubStats {
	return HubStats{
		Clients:       h.ClientCount(),
		EventsRelayed: atomic.LoadUint64(&h.eventsRelayed),
	}
}

// Close drops the NATS subscription.
func (h *EventHub) Close() {
	if h.sub != nil {
		h.sub.Unsubscribe()
	}
}
