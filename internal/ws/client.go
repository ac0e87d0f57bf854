package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Content length is otherwise
	// unbounded; this only caps abuse.
	maxMessageSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// envelope is the wire format of every client-to-server frame.
type envelope struct {
	Type       string `json:"type"`
	UserID     int    `json:"userId"`
	SenderID   int    `json:"senderId"`
	ReceiverID int    `json:"receiverId"`
	Content    string `json:"content"`
}

// Client is one WebSocket connection. It stays anonymous until the peer
// sends an auth frame; only then is it registered with the hub.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// Buffered channel of outbound payloads.
	send chan []byte

	// Identity claimed by the auth frame. Zero until then.
	userID int
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("ws read: %v", err)
			}
			break
		}

		var env envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			log.Printf("ws: dropping malformed frame: %v", err)
			continue
		}

		switch env.Type {
		case "auth":
			// One identity per connection. A repeat auth frame is ignored:
			// re-binding under a second id would leave a stale registry
			// entry that close could never clean up.
			if env.UserID == 0 || c.userID != 0 {
				continue
			}
			c.userID = env.UserID
			c.hub.register <- c
		case "chat":
			// Frames before the handshake have no registered identity.
			if c.userID == 0 || env.Content == "" {
				continue
			}
			c.hub.relay <- ChatRequest{
				SenderID:   env.SenderID,
				ReceiverID: env.ReceiverID,
				Content:    env.Content,
			}
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub dropped this client.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs upgrades an HTTP request to a WebSocket connection and starts the
// read/write pumps. Registration happens later, on the auth frame.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	client := &Client{hub: hub, conn: conn, send: make(chan []byte, 256)}

	go client.writePump()
	go client.readPump()
}
