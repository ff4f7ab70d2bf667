package service

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/Ibrahima96/pacao/internal/model"

	"github.com/gofiber/contrib/websocket"
)

// HubClient is one connected page. Pages are anonymous; the hub only
// pushes refresh hints, never user data.
type HubClient struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans content-update events out to every open page, so a save in
// the dashboard refreshes public pages without polling.
type Hub struct {
	clients    map[*HubClient]bool
	register   chan *HubClient
	unregister chan *HubClient
	broadcast  chan []byte
	mu         sync.RWMutex
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*HubClient]bool),
		register:   make(chan *HubClient),
		unregister: make(chan *HubClient),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			return
		}
	}
}

func (h *Hub) Shutdown() {
	close(h.done)
}

func (h *Hub) Register(client *HubClient) {
	h.register <- client
}

func (h *Hub) Unregister(client *HubClient) {
	h.unregister <- client
}

// NotifyContentUpdated tells every page that a table changed and should
// be refetched.
func (h *Hub) NotifyContentUpdated(table string) {
	event, err := json.Marshal(model.NewContentUpdatedEvent(table))
	if err != nil {
		return
	}
	select {
	case h.broadcast <- event:
	default:
		log.Printf("[Hub] Broadcast buffer full, dropped update for %s", table)
	}
}

func (h *Hub) ConnectedCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
