package ws_room

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/cinetalk/backend/internal/model"
)

type EventType string

const (
	// Client -> server.
	EventJoinRoom    EventType = "join_room"
	EventLeaveRoom   EventType = "leave_room"
	EventSendComment EventType = "send_comment"
	EventLikeComment EventType = "like_comment"

	// Server -> room members.
	EventNewComment   EventType = "new_comment"
	EventCommentLiked EventType = "comment_liked"
)

type Event struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// roomRef is the part of any payload that pins it to a room.
type roomRef struct {
	ContentType string `json:"contentType"`
	ContentID   string `json:"contentId"`
}

func (r roomRef) key() model.RoomKey {
	return r.ContentType + "_" + r.ContentID
}

// Hub owns all room membership. Rooms exist only while they have
// members; everything is derived from join/leave/disconnect.
type Hub struct {
	mu sync.RWMutex

	// Sets of clients per room and the reverse index, so a dropped
	// connection can be removed from every room it joined.
	rooms  map[model.RoomKey]map[*Client]bool
	joined map[*Client]map[model.RoomKey]bool

	logger *slog.Logger
}

type HubOption func(*Hub)

func WithLogger(logger *slog.Logger) HubOption {
	return func(h *Hub) {
		h.logger = logger
	}
}

func NewHub(opts ...HubOption) *Hub {
	h := &Hub{
		rooms:  make(map[model.RoomKey]map[*Client]bool),
		joined: make(map[*Client]map[model.RoomKey]bool),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Join is idempotent: joining a room twice is the same as joining once.
func (h *Hub) Join(client *Client, key model.RoomKey) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[key]; !ok {
		h.rooms[key] = make(map[*Client]bool)
	}
	h.rooms[key][client] = true

	if _, ok := h.joined[client]; !ok {
		h.joined[client] = make(map[model.RoomKey]bool)
	}
	h.joined[client][key] = true

	h.logger.Info("client joined room", "conn_id", client.id, "room", key)
}

func (h *Hub) Leave(client *Client, key model.RoomKey) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeFromRoom(client, key)

	h.logger.Info("client left room", "conn_id", client.id, "room", key)
}

// Publish relays an event to every member of the room except its
// origin. Delivery is fire-and-forget: a member whose send buffer is
// full simply misses the event.
func (h *Hub) Publish(origin *Client, key model.RoomKey, event Event) {
	raw, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal event", "type", event.Type, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[key] {
		if client == origin {
			continue
		}
		select {
		case client.send <- raw:
		default:
			h.logger.Warn("dropping event for slow client", "conn_id", client.id, "room", key)
		}
	}
}

// Disconnect removes the client from every room it joined and releases
// its send channel. Safe to call once per connection.
func (h *Hub) Disconnect(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for key := range h.joined[client] {
		if room, ok := h.rooms[key]; ok {
			delete(room, client)
			if len(room) == 0 {
				delete(h.rooms, key)
			}
		}
	}
	delete(h.joined, client)
	close(client.send)

	h.logger.Info("client disconnected", "conn_id", client.id)
}

func (h *Hub) removeFromRoom(client *Client, key model.RoomKey) {
	if room, ok := h.rooms[key]; ok {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, key)
		}
	}
	if keys, ok := h.joined[client]; ok {
		delete(keys, key)
	}
}
