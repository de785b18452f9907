// infrastructure/adapter/notifier_adapter.go
package adapter

import (
	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/port"
	"github.com/driftchat/gofiber-dm-api/interfaces/websocket"
)

// NotifierAdapter implements port.Notifier over the WebSocket hub, keeping the
// application layer free of transport imports.
type NotifierAdapter struct {
	hub *websocket.Hub
}

func NewNotifierAdapter(hub *websocket.Hub) port.Notifier {
	return &NotifierAdapter{hub: hub}
}

func (a *NotifierAdapter) NotifyUser(userID uuid.UUID, event string, data interface{}) bool {
	return a.hub.NotifyUser(userID, websocket.MessageType(event), data)
}

func (a *NotifierAdapter) BroadcastAll(event string, data interface{}) {
	a.hub.BroadcastAll(websocket.MessageType(event), data)
}
