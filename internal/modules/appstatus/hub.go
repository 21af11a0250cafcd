package appstatus

import (
	"sync"

	"github.com/gorilla/websocket"
)

// subscriber wraps a connection with its own write lock; gorilla/websocket
// allows only one concurrent writer per connection.
type subscriber struct {
	conn  *websocket.Conn
	write sync.Mutex
}

func (s *subscriber) send(message interface{}) error {
	s.write.Lock()
	defer s.write.Unlock()

	return s.conn.WriteJSON(message)
}

// Hub fans app-status events out to every connected client. Subscribers are
// anonymous; each connection gets its own id.
type Hub struct {
	subscribers map[int64]*subscriber
	nextID      int64
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int64]*subscriber),
	}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	h.subscribers[h.nextID] = &subscriber{conn: conn}
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if sub, exists := h.subscribers[id]; exists {
		_ = sub.conn.Close()
		delete(h.subscribers, id)
	}
}

// Send writes the message to a single subscriber.
func (h *Hub) Send(id int64, message interface{}) error {
	h.mutex.RLock()
	sub, exists := h.subscribers[id]
	h.mutex.RUnlock()

	if !exists {
		return nil
	}
	return sub.send(message)
}

// Broadcast writes the message to every subscriber, dropping connections
// that fail mid-write.
func (h *Hub) Broadcast(message interface{}) {
	h.mutex.RLock()
	subs := make(map[int64]*subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		subs[id] = sub
	}
	h.mutex.RUnlock()

	for id, sub := range subs {
		if err := sub.send(message); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subscribers)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, sub := range h.subscribers {
		_ = sub.conn.Close()
		delete(h.subscribers, id)
	}
}
