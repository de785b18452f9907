// interfaces/websocket/hub.go
package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/service"
)

// Message types on the real-time surface.
type MessageType string

const (
	// Connection management
	TypeConnect MessageType = "connect"
	TypePing    MessageType = "ping"
	TypePong    MessageType = "pong"

	// Chat messages
	TypeMessageSend MessageType = "message:send"
	TypeMessageNew  MessageType = "message:new"
	TypeMessageAck  MessageType = "message:ack"
	TypeMessageRead MessageType = "message:read"

	// Typing indicators
	TypeTypingStart MessageType = "typing:start"
	TypeTypingStop  MessageType = "typing:stop"

	// Presence
	TypePresenceUpdate MessageType = "presence:update"

	// Friend events
	TypeFriendRequestNew    MessageType = "friend:request:new"
	TypeFriendRequestUpdate MessageType = "friend:request:update"
	TypeFriendRemoved       MessageType = "friend:removed"
)

// WSMessage is an inbound frame.
type WSMessage struct {
	Type MessageType     `json:"type"`
	Data json.RawMessage `json:"data"`
}

// WSResponse is an outbound frame.
type WSResponse struct {
	Type      MessageType `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Success   bool        `json:"success"`
	Error     string      `json:"error,omitempty"`
}

// MessageHandler handles one inbound message type.
type MessageHandler interface {
	Handle(client *Client, data json.RawMessage) error
}

// Hub owns every WebSocket connection and the presence registry. The registry
// maps a user to at most one connection: the latest register wins, and an
// older handle for the same user is silently superseded. An entry's lifetime
// is strictly bound to its connection's lifetime.
type Hub struct {
	// Registered clients (clientID -> client)
	clients    map[uuid.UUID]*Client
	clientsMux sync.RWMutex

	// Presence registry (userID -> clientID), last register wins
	userConns    map[uuid.UUID]uuid.UUID
	userConnsMux sync.RWMutex

	// Inbound message handlers
	handlers map[string]MessageHandler

	// Core services, set after construction to break the service -> notifier
	// -> hub cycle
	messageService  service.MessageService
	presenceService service.PresenceService

	// Channels
	register   chan *Client
	unregister chan *Client

	startTime time.Time
}

// NewHub creates a new WebSocket hub.
func NewHub() *Hub {
	hub := &Hub{
		clients:    make(map[uuid.UUID]*Client),
		userConns:  make(map[uuid.UUID]uuid.UUID),
		handlers:   make(map[string]MessageHandler),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		startTime:  time.Now(),
	}
	hub.registerHandlers()
	return hub
}

func (h *Hub) SetMessageService(messageService service.MessageService) {
	h.messageService = messageService
}

func (h *Hub) SetPresenceService(presenceService service.PresenceService) {
	h.presenceService = presenceService
}

// Run processes registrations and sweeps dead connections until done closes.
func (h *Hub) Run(done <-chan struct{}) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			log.Println("WebSocket hub shutting down")
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-ticker.C:
			h.sweepDeadClients()
		}
	}
}

// registerClient binds a connection to its user and announces presence.
func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	h.clients[client.ID] = client
	h.clientsMux.Unlock()

	h.userConnsMux.Lock()
	h.userConns[client.UserID] = client.ID
	h.userConnsMux.Unlock()

	if h.presenceService != nil {
		if err := h.presenceService.SetUserOnline(client.UserID); err != nil {
			log.Printf("presence mirror: set online %s: %v", client.UserID, err)
		}
	}

	// Announced to every connected client, not just friends. That matches the
	// system this replaces; scoping it down would change observable behavior.
	h.BroadcastAll(TypePresenceUpdate, map[string]interface{}{
		"user_id": client.UserID.String(),
		"online":  true,
	})

	h.sendToClient(client, WSResponse{
		Type:      TypeConnect,
		Data:      map[string]interface{}{"client_id": client.ID.String()},
		Timestamp: time.Now(),
		Success:   true,
	})
}

// unregisterClient drops a connection. The registry entry is removed only if
// it still points at this connection; a superseded handle going away must not
// mark the user's newer connection offline.
func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		client.closeSend()
	} else {
		h.clientsMux.Unlock()
		return
	}
	h.clientsMux.Unlock()

	wentOffline := false
	h.userConnsMux.Lock()
	if h.userConns[client.UserID] == client.ID {
		delete(h.userConns, client.UserID)
		wentOffline = true
	}
	h.userConnsMux.Unlock()

	if !wentOffline {
		return
	}

	if h.presenceService != nil {
		if err := h.presenceService.SetUserOffline(client.UserID); err != nil {
			log.Printf("presence mirror: set offline %s: %v", client.UserID, err)
		}
	}

	h.BroadcastAll(TypePresenceUpdate, map[string]interface{}{
		"user_id": client.UserID.String(),
		"online":  false,
	})
}

// lookup resolves a user to their active connection.
func (h *Hub) lookup(userID uuid.UUID) (*Client, bool) {
	h.userConnsMux.RLock()
	clientID, ok := h.userConns[userID]
	h.userConnsMux.RUnlock()
	if !ok {
		return nil, false
	}

	h.clientsMux.RLock()
	client, ok := h.clients[clientID]
	h.clientsMux.RUnlock()
	return client, ok
}

// IsOnline reports whether the user has a registered connection. A miss is a
// normal outcome meaning "recipient offline", not a failure.
func (h *Hub) IsOnline(userID uuid.UUID) bool {
	_, ok := h.lookup(userID)
	return ok
}

// NotifyUser pushes one event to the user's connection if present. Returns
// whether a connection was registered at the instant of the call; the write
// itself is fire-and-forget.
func (h *Hub) NotifyUser(userID uuid.UUID, event MessageType, data interface{}) bool {
	client, ok := h.lookup(userID)
	if !ok {
		return false
	}

	payload, err := json.Marshal(WSResponse{
		Type:      event,
		Data:      data,
		Timestamp: time.Now(),
		Success:   true,
	})
	if err != nil {
		return false
	}

	if !client.trySend(payload) {
		// Send buffer full; the connection is not keeping up, drop it.
		go func() { h.unregister <- client }()
	}
	return true
}

// BroadcastAll pushes one event to every connected client.
func (h *Hub) BroadcastAll(event MessageType, data interface{}) {
	payload, err := json.Marshal(WSResponse{
		Type:      event,
		Data:      data,
		Timestamp: time.Now(),
		Success:   true,
	})
	if err != nil {
		return
	}

	h.clientsMux.RLock()
	targets := make([]*Client, 0, len(h.clients))
	for _, client := range h.clients {
		targets = append(targets, client)
	}
	h.clientsMux.RUnlock()

	for _, client := range targets {
		if !client.trySend(payload) {
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) sendToClient(client *Client, response WSResponse) {
	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	if !client.trySend(payload) {
		go func() { h.unregister <- client }()
	}
}

// sweepDeadClients unregisters connections that stopped answering pings.
// Without the sweep a silent peer would leak a registry entry and the system
// would keep pushing to an unreachable user.
func (h *Hub) sweepDeadClients() {
	h.clientsMux.RLock()
	stale := make([]*Client, 0)
	for _, client := range h.clients {
		if time.Since(client.LastPong()) > pongWait+pingPeriod {
			stale = append(stale, client)
		}
	}
	h.clientsMux.RUnlock()

	// Unregister directly: the sweep runs on the same goroutine that drains
	// h.unregister, so sending on the channel here would block forever.
	for _, client := range stale {
		log.Printf("WebSocket hub: dropping unresponsive client %s (user %s)", client.ID, client.UserID)
		h.unregisterClient(client)
	}
}

// Stats returns connection counters for the health endpoint.
func (h *Hub) Stats() map[string]interface{} {
	h.clientsMux.RLock()
	totalClients := len(h.clients)
	h.clientsMux.RUnlock()

	h.userConnsMux.RLock()
	onlineUsers := len(h.userConns)
	h.userConnsMux.RUnlock()

	return map[string]interface{}{
		"connections":  totalClients,
		"online_users": onlineUsers,
		"uptime":       time.Since(h.startTime).String(),
	}
}
