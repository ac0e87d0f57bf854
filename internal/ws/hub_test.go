package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ajensen/friendlink/internal/store/sqlstore"
)

func newTestHub(t *testing.T) (*Hub, *sqlstore.SQLStore) {
	t.Helper()
	store, err := sqlstore.New("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	hub := NewHub(store)
	go hub.Run()
	return hub, store
}

func TestRelayPersistsWithoutReceiver(t *testing.T) {
	hub, store := newTestHub(t)

	hub.relay <- ChatRequest{SenderID: 1, ReceiverID: 2, Content: "Hello World"}

	// Give the hub time to process
	time.Sleep(100 * time.Millisecond)

	messages, err := store.GetConversation(1, 2)
	if err != nil {
		t.Fatalf("Failed to get messages: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
	if messages[0].Content != "Hello World" {
		t.Errorf("Expected content 'Hello World', got '%s'", messages[0].Content)
	}
}

func TestRelayPushesToRegisteredReceiver(t *testing.T) {
	hub, _ := newTestHub(t)

	receiver := &Client{hub: hub, userID: 2, send: make(chan []byte, 1)}
	hub.register <- receiver

	hub.relay <- ChatRequest{SenderID: 1, ReceiverID: 2, Content: "ping"}

	select {
	case payload := <-receiver.send:
		var push ChatPush
		if err := json.Unmarshal(payload, &push); err != nil {
			t.Fatalf("Failed to decode push: %v", err)
		}
		if push.Type != "chat" || push.SenderID != 1 || push.Content != "ping" {
			t.Errorf("Unexpected push payload: %+v", push)
		}
		if push.CreatedAt.IsZero() {
			t.Error("Expected createdAt in push payload")
		}
	case <-time.After(time.Second):
		t.Fatal("Expected a push to the registered receiver")
	}
}

func TestRegisterReplacesExisting(t *testing.T) {
	hub, _ := newTestHub(t)

	old := &Client{hub: hub, userID: 2, send: make(chan []byte, 1)}
	newer := &Client{hub: hub, userID: 2, send: make(chan []byte, 1)}
	hub.register <- old
	hub.register <- newer

	hub.relay <- ChatRequest{SenderID: 1, ReceiverID: 2, Content: "hello"}

	select {
	case <-newer.send:
	case <-time.After(time.Second):
		t.Fatal("Expected push to go to the newer registration")
	}

	select {
	case <-old.send:
		t.Error("Expected the replaced handle to receive nothing")
	default:
	}
}

func TestUnregisterUnknownIsNoop(t *testing.T) {
	hub, store := newTestHub(t)

	stranger := &Client{hub: hub, userID: 7, send: make(chan []byte, 1)}
	hub.unregister <- stranger

	// The hub keeps running and relaying after the no-op
	hub.relay <- ChatRequest{SenderID: 1, ReceiverID: 7, Content: "still works"}
	time.Sleep(100 * time.Millisecond)

	messages, _ := store.GetConversation(1, 7)
	if len(messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(messages))
	}
}

func TestStaleUnregisterKeepsNewerBinding(t *testing.T) {
	hub, _ := newTestHub(t)

	old := &Client{hub: hub, userID: 2, send: make(chan []byte, 1)}
	newer := &Client{hub: hub, userID: 2, send: make(chan []byte, 1)}
	hub.register <- old
	hub.register <- newer

	// The replaced connection finally dies; its unregister must not evict
	// the newer registration.
	hub.unregister <- old

	hub.relay <- ChatRequest{SenderID: 1, ReceiverID: 2, Content: "hi"}

	select {
	case <-newer.send:
	case <-time.After(time.Second):
		t.Fatal("Expected newer registration to survive stale unregister")
	}
}
