package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/ajensen/friendlink/internal/store"
)

// ChatRequest is an inbound chat frame handed to the hub for relaying.
type ChatRequest struct {
	SenderID   int
	ReceiverID int
	Content    string
}

// ChatPush is the payload delivered to a registered receiver.
type ChatPush struct {
	Type      string    `json:"type"`
	SenderID  int       `json:"senderId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type Hub struct {
	// Registered clients, keyed by user id. At most one binding per
	// identity: a later registration replaces an earlier one.
	clients map[int]*Client

	// Inbound chat frames from the clients.
	relay chan ChatRequest

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	store store.Store
}

func NewHub(store store.Store) *Hub {
	return &Hub{
		relay:      make(chan ChatRequest),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[int]*Client),
		store:      store,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			// Last writer wins. A replaced handle is only dropped from
			// the map; its own close event still tears the socket down.
			h.clients[client.userID] = client
		case client := <-h.unregister:
			// Identity-checked so that a stale connection closing does
			// not evict a newer registration for the same user.
			if current, ok := h.clients[client.userID]; ok && current == client {
				delete(h.clients, client.userID)
				close(client.send)
			}
		case req := <-h.relay:
			h.handleRelay(req)
		}
	}
}

// handleRelay persists the message, then attempts a best-effort push to the
// receiver. The store write is the durability guarantee: if it fails nothing
// is pushed, and a missed push is recovered by refetching history.
func (h *Hub) handleRelay(req ChatRequest) {
	msg, err := h.store.SaveMessage(req.SenderID, req.ReceiverID, req.Content)
	if err != nil {
		log.Printf("Error saving message: %v", err)
		return
	}

	client, ok := h.clients[req.ReceiverID]
	if !ok {
		return
	}

	payload, _ := json.Marshal(ChatPush{
		Type:      "chat",
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	})

	select {
	case client.send <- payload:
	default:
		close(client.send)
		delete(h.clients, req.ReceiverID)
	}
}
