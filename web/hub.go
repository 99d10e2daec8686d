package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/mww/sports_scoreboard/model"
)

const messageTypeScoreboard = "scoreboard"

type socketMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub keeps track of the websocket clients watching the scoreboard and fans
// out every new scoreboard to them. It implements publisher.Publisher.
type Hub struct {
	mu      sync.RWMutex
	clients map[*socketClient]bool
	latest  []byte // last scoreboard message, sent to new clients
	closed  bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*socketClient]bool),
	}
}

func (h *Hub) PublishScoreboard(ctx context.Context, sb *model.Scoreboard) error {
	if sb == nil {
		return errors.New("nil scoreboard")
	}

	msg, err := json.Marshal(socketMessage{Type: messageTypeScoreboard, Payload: sb})
	if err != nil {
		return fmt.Errorf("error marshaling scoreboard message: %w", err)
	}

	var slow []*socketClient

	h.mu.Lock()
	h.latest = msg
	for c := range h.clients {
		if !c.trySend(msg) {
			slow = append(slow, c)
		}
	}
	h.mu.Unlock()

	for _, c := range slow {
		log.Printf("websocket client %s is not keeping up, disconnecting", c.id)
		h.unregister(c)
	}
	return nil
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close disconnects every client. Clients registered afterwards are
// disconnected right away.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	log.Printf("closing websocket hub with %d clients", len(h.clients))
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
	h.closed = true
}

// register adds the client and queues the latest scoreboard for it.
func (h *Hub) register(c *socketClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(c.send)
		return
	}

	h.clients[c] = true
	if h.latest != nil {
		c.trySend(h.latest)
	}
	log.Printf("websocket client %s connected (total: %d)", c.id, len(h.clients))
}

func (h *Hub) unregister(c *socketClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
		log.Printf("websocket client %s disconnected (total: %d)", c.id, len(h.clients))
	}
}
