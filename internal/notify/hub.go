// Package notify pushes order events to connected admin dashboards over
// websockets. Delivery is best-effort: nothing is persisted and a
// subscriber that is disconnected or slow simply misses events.
package notify

import (
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// Event kinds broadcast to admin subscribers.
const (
	EventNewOrder      = "new-order"
	EventStatusUpdated = "status-updated"
)

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 16
)

// Envelope is the wire format: {"event": ..., "data": ...}.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans events out to every connected subscriber. All map access is
// serialized on the Run loop, so no lock is needed.
type Hub struct {
	register   chan *subscriber
	unregister chan *subscriber
	broadcast  chan []byte
	done       chan struct{}
	subs       map[*subscriber]struct{}
	count      atomic.Int64
}

func NewHub() *Hub {
	return &Hub{
		register:   make(chan *subscriber),
		unregister: make(chan *subscriber),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		subs:       make(map[*subscriber]struct{}),
	}
}

// Run owns the subscriber set. It returns after Stop.
func (h *Hub) Run() {
	for {
		select {
		case s := <-h.register:
			h.subs[s] = struct{}{}
			h.count.Store(int64(len(h.subs)))
			log.Printf("[ws] subscriber connected, total=%d", len(h.subs))

		case s := <-h.unregister:
			if _, ok := h.subs[s]; ok {
				delete(h.subs, s)
				close(s.send)
			}
			h.count.Store(int64(len(h.subs)))
			log.Printf("[ws] subscriber gone, total=%d", len(h.subs))

		case msg := <-h.broadcast:
			for s := range h.subs {
				select {
				case s.send <- msg:
				default:
					// Slow subscriber, drop the event rather than block.
				}
			}

		case <-h.done:
			for s := range h.subs {
				delete(h.subs, s)
				close(s.send)
				_ = s.conn.Close()
			}
			h.count.Store(0)
			return
		}
	}
}

// SubscriberCount reports how many admin clients are connected.
func (h *Hub) SubscriberCount() int {
	return int(h.count.Load())
}

// Stop disconnects all subscribers and ends the Run loop.
func (h *Hub) Stop() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}

// Publish broadcasts an event to all current subscribers. It never
// blocks and never returns an error to the caller: a failed broadcast
// must not affect the HTTP response that triggered it.
func (h *Hub) Publish(event string, data any) {
	b, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		log.Printf("[ws] marshal %s event: %v", event, err)
		return
	}
	select {
	case h.broadcast <- b:
	case <-h.done:
	default:
		log.Printf("[ws] broadcast queue full, dropped %s event", event)
	}
}

// Subscribe attaches an upgraded connection to the hub and services it
// until the peer goes away.
func (h *Hub) Subscribe(conn *websocket.Conn) {
	s := &subscriber{conn: conn, send: make(chan []byte, sendBufferSize)}
	select {
	case h.register <- s:
	case <-h.done:
		_ = conn.Close()
		return
	}
	go s.writeLoop()
	go s.readLoop(h)
}

func (s *subscriber) writeLoop() {
	for msg := range s.send {
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
	_ = s.conn.Close()
}

// readLoop drains the connection; subscribers only listen, so the first
// read error means the peer disconnected.
func (s *subscriber) readLoop(h *Hub) {
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			break
		}
	}
	select {
	case h.unregister <- s:
	case <-h.done:
	}
	_ = s.conn.Close()
}
