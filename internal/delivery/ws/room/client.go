package ws_room

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/cinetalk/backend/internal/model"
)

const sendBufferSize = 256

type Client struct {
	id   uuid.UUID
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func newClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   uuid.New(),
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

func (h *Hub) StartClientReading(client *Client) {
	defer func() {
		h.Disconnect(client)
		client.conn.Close()
	}()

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			break
		}

		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			h.logger.Warn("dropping malformed event", "conn_id", client.id, "error", err)
			continue
		}
		h.handleEvent(client, event)
	}
}

func (h *Hub) StartClientWriting(client *Client) {
	defer client.conn.Close()

	for message := range client.send {
		if err := client.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

func (h *Hub) handleEvent(client *Client, event Event) {
	switch event.Type {
	case EventJoinRoom:
		if key, ok := h.resolveRoomKey(client, event); ok {
			h.Join(client, key)
		}
	case EventLeaveRoom:
		if key, ok := h.resolveRoomKey(client, event); ok {
			h.Leave(client, key)
		}
	case EventSendComment:
		h.relay(client, event, EventNewComment)
	case EventLikeComment:
		h.relay(client, event, EventCommentLiked)
	default:
		h.logger.Warn("unknown event type", "conn_id", client.id, "type", event.Type)
	}
}

// relay forwards a client-originated payload to the rest of its room
// under the outbound event name. The payload itself is passed through
// untouched.
func (h *Hub) relay(client *Client, event Event, out EventType) {
	key, ok := h.resolveRoomKey(client, event)
	if !ok {
		return
	}
	h.Publish(client, key, Event{Type: out, Payload: event.Payload})
}

func (h *Hub) resolveRoomKey(client *Client, event Event) (model.RoomKey, bool) {
	var ref roomRef
	if err := json.Unmarshal(event.Payload, &ref); err != nil ||
		ref.ContentType == "" || ref.ContentID == "" {
		h.logger.Warn("event without room reference", "conn_id", client.id, "type", event.Type)
		return model.EmptyRoomKey, false
	}
	return ref.key(), true
}
