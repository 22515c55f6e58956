package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 64
)

// Hub fans ball events out to websocket subscribers, grouped per match.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*client]bool)}
}

// Serve upgrades the request and subscribes the connection to one match's
// feed until it drops.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, matchID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: failed to upgrade connection: %v", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, sendBufferSize)}

	h.mu.Lock()
	if h.rooms[matchID] == nil {
		h.rooms[matchID] = make(map[*client]bool)
	}
	h.rooms[matchID][c] = true
	h.mu.Unlock()

	go c.writePump()
	c.readPump(func() { h.drop(matchID, c) })
}

// Broadcast marshals the event and queues it to every subscriber of the
// match. Slow clients are dropped rather than blocking the simulation.
func (h *Hub) Broadcast(matchID string, event any) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("live: marshal broadcast: %v", err)
		return
	}
	h.mu.RLock()
	room := h.rooms[matchID]
	var stale []*client
	for c := range room {
		select {
		case c.send <- data:
		default:
			stale = append(stale, c)
		}
	}
	h.mu.RUnlock()
	for _, c := range stale {
		h.drop(matchID, c)
	}
}

// ClientCount reports subscribers across all matches.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, room := range h.rooms {
		n += len(room)
	}
	return n
}

func (h *Hub) drop(matchID string, c *client) {
	h.mu.Lock()
	if room, ok := h.rooms[matchID]; ok {
		if _, subscribed := room[c]; subscribed {
			delete(room, c)
			close(c.send)
			if len(room) == 0 {
				delete(h.rooms, matchID)
			}
		}
	}
	h.mu.Unlock()
}

// readPump discards inbound frames; the feed is one-way. It exists to notice
// closes and keep the pong handler serviced.
func (c *client) readPump(onClose func()) {
	defer func() {
		onClose()
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
