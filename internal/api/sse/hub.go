// Package sse is the broadcast gateway. Each room gets a hub; clients attach
// over Server-Sent Events and receive every state change for that room.
package sse

import (
	"log/slog"
	"sync"
)

// Event is one named SSE message with a pre-encoded JSON payload
type Event struct {
	Name string
	Data []byte
}

// client is one attached event stream
type client struct {
	send chan Event
}

// Hub fans events out to every client attached to one room
type Hub struct {
	code   string
	logger *slog.Logger

	register   chan *client
	unregister chan *client
	broadcast  chan Event
	done       chan struct{}

	clients map[*client]struct{}
}

const clientBuffer = 16

func newHub(code string, logger *slog.Logger) *Hub {
	return &Hub{
		code:       code,
		logger:     logger,
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan Event, clientBuffer),
		done:       make(chan struct{}),
		clients:    make(map[*client]struct{}),
	}
}

// Run processes hub events until Close. Runs on its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug("sse client attached",
				slog.String("room", h.code),
				slog.Int("clients", len(h.clients)),
			)
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case event := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- event:
				default:
					// slow consumer, drop it rather than stall the room
					delete(h.clients, c)
					close(c.send)
				}
			}
		case <-h.done:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			return
		}
	}
}

// Broadcast queues an event for every attached client
func (h *Hub) Broadcast(event Event) {
	select {
	case h.broadcast <- event:
	case <-h.done:
	}
}

// Close detaches all clients and stops the hub
func (h *Hub) Close() {
	close(h.done)
}

// HubManager owns one running hub per room code
type HubManager struct {
	logger *slog.Logger

	mu   sync.Mutex
	hubs map[string]*Hub
}

func NewHubManager(logger *slog.Logger) *HubManager {
	return &HubManager{
		logger: logger.With(slog.String("component", "sse")),
		hubs:   make(map[string]*Hub),
	}
}

// GetOrCreateHub returns the hub for a room, starting it on first use
func (m *HubManager) GetOrCreateHub(code string) *Hub {
	m.mu.Lock()
	defer m.mu.Unlock()

	if hub, ok := m.hubs[code]; ok {
		return hub
	}
	hub := newHub(code, m.logger)
	m.hubs[code] = hub
	go hub.Run()
	return hub
}

// Shutdown stops every hub
func (m *HubManager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for code, hub := range m.hubs {
		hub.Close()
		delete(m.hubs, code)
	}
}
