// interfaces/websocket/handlers.go
package websocket

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/driftchat/gofiber-dm-api/domain/dto"
	"github.com/driftchat/gofiber-dm-api/domain/service"
)

// registerHandlers wires all inbound message handlers.
func (h *Hub) registerHandlers() {
	h.handlers[string(TypeMessageSend)] = &MessageSendHandler{hub: h}
	h.handlers[string(TypeMessageRead)] = &MessageReadHandler{hub: h}
	h.handlers[string(TypeTypingStart)] = &TypingHandler{hub: h, event: TypeTypingStart}
	h.handlers[string(TypeTypingStop)] = &TypingHandler{hub: h, event: TypeTypingStop}
	h.handlers[string(TypePing)] = &PingHandler{hub: h}
}

// MessageSendHandler runs the delivery pipeline for a live connection and
// acks back to the sending connection. The ack arrives whether or not the
// recipient push happened; it means "accepted by the server", nothing more.
type MessageSendHandler struct {
	hub *Hub
}

func (s *MessageSendHandler) Handle(client *Client, data json.RawMessage) error {
	var input service.SendMessageInput
	if err := json.Unmarshal(data, &input); err != nil {
		return errors.New("invalid message data")
	}

	if s.hub.messageService == nil {
		return errors.New("message service unavailable")
	}

	message, err := s.hub.messageService.Send(client.UserID, input)
	if err != nil {
		return err
	}

	s.hub.sendToClient(client, WSResponse{
		Type:      TypeMessageAck,
		Data:      dto.ToMessageAck(message),
		Timestamp: time.Now(),
		Success:   true,
	})
	return nil
}

// MessageReadHandler marks all messages from one sender as read.
type MessageReadHandler struct {
	hub *Hub
}

type messageReadData struct {
	WithUserID uuid.UUID `json:"with_user_id"`
}

func (s *MessageReadHandler) Handle(client *Client, data json.RawMessage) error {
	var readData messageReadData
	if err := json.Unmarshal(data, &readData); err != nil {
		return errors.New("invalid read data")
	}
	if readData.WithUserID == uuid.Nil {
		return errors.New("with_user_id required")
	}

	if s.hub.messageService == nil {
		return errors.New("message service unavailable")
	}

	_, err := s.hub.messageService.MarkRead(client.UserID, readData.WithUserID)
	return err
}

// TypingHandler forwards a typing signal to the recipient if online. No
// persistence, no ack, no deduplication; a miss is dropped on the floor.
type TypingHandler struct {
	hub   *Hub
	event MessageType
}

type typingData struct {
	To uuid.UUID `json:"to"`
}

func (s *TypingHandler) Handle(client *Client, data json.RawMessage) error {
	var typing typingData
	if err := json.Unmarshal(data, &typing); err != nil {
		return errors.New("invalid typing data")
	}
	if typing.To == uuid.Nil {
		return errors.New("to required")
	}

	s.hub.NotifyUser(typing.To, s.event, map[string]interface{}{
		"from": client.UserID.String(),
	})
	return nil
}

// PingHandler answers application-level pings.
type PingHandler struct {
	hub *Hub
}

func (s *PingHandler) Handle(client *Client, _ json.RawMessage) error {
	client.touchPong()
	s.hub.sendToClient(client, WSResponse{
		Type:      TypePong,
		Timestamp: time.Now(),
		Success:   true,
	})
	return nil
}
