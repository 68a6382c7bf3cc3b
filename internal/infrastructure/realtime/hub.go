package realtime

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/logger"
)

// Client is one WebSocket connection. A user may hold several (two tabs, a
// phone and a laptop); each is tracked separately.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Conn:   conn,
		Send:   make(chan []byte, 64),
	}
}

// Hub tracks connected clients and which conversation room each one is
// currently viewing, and fans frames out to them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	byUser  map[string]map[*Client]bool
	rooms   map[string]map[*Client]bool

	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		byUser:     make(map[string]map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.add(client)
				logger.Debug("Client registered: %s", client.UserID)

			case client := <-h.Unregister:
				h.remove(client)
				logger.Debug("Client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) add(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if h.byUser[client.UserID] == nil {
		h.byUser[client.UserID] = make(map[*Client]bool)
	}
	h.byUser[client.UserID][client] = true
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.clients[client] {
		return
	}
	delete(h.clients, client)

	if conns := h.byUser[client.UserID]; conns != nil {
		delete(conns, client)
		if len(conns) == 0 {
			delete(h.byUser, client.UserID)
		}
	}
	for room, members := range h.rooms {
		if members[client] {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}

	close(client.Send)
}

// JoinRoom moves the client into a conversation room, leaving any room it
// was in before. One room per connection mirrors one open chat surface.
func (h *Hub) JoinRoom(client *Client, conversationID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for room, members := range h.rooms {
		if members[client] && room != conversationID {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}

	if h.rooms[conversationID] == nil {
		h.rooms[conversationID] = make(map[*Client]bool)
	}
	h.rooms[conversationID][client] = true
}

func (h *Hub) LeaveRoom(client *Client, conversationID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if members := h.rooms[conversationID]; members != nil {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, conversationID)
		}
	}
}

func (h *Hub) SendToUser(userID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.byUser[userID] {
		select {
		case client.Send <- message:
		default:
			logger.Warn("Dropping frame for slow client %s", userID)
		}
	}
}

func (h *Hub) SendToRoom(conversationID string, message []byte, excludeUserID string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[conversationID] {
		if excludeUserID != "" && client.UserID == excludeUserID {
			continue
		}
		select {
		case client.Send <- message:
		default:
			logger.Warn("Dropping frame for slow client %s", client.UserID)
		}
	}
}

// SendToClient delivers to a single connection, for per-surface view models.
func (h *Hub) SendToClient(client *Client, message []byte) {
	h.mu.RLock()
	ok := h.clients[client]
	h.mu.RUnlock()

	if !ok {
		return
	}
	select {
	case client.Send <- message:
	default:
		logger.Warn("Dropping frame for slow client %s", client.UserID)
	}
}

// ReadPump consumes inbound frames and hands them to onMessage until the
// connection drops, then unregisters the client.
func (c *Client) ReadPump(h *Hub, onMessage func([]byte)) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error for %s: %v", c.UserID, err)
			}
			break
		}
		onMessage(message)
	}
}

// WritePump drains the send channel onto the wire.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("WebSocket write error for %s: %v", c.UserID, err)
			return
		}
	}
}
