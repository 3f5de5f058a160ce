package ws_room

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type HubUnitSuite struct {
	suite.Suite
}

func newTestClient() *Client {
	return &Client{
		id:   uuid.New(),
		send: make(chan []byte, 8),
	}
}

func commentPayload(contentType, contentID string) json.RawMessage {
	raw, _ := json.Marshal(map[string]any{
		"contentType": contentType,
		"contentId":   contentID,
		"username":    "moviegoer",
		"comment":     "loved the ending",
		"likes":       0,
	})
	return raw
}

func received(client *Client) (Event, bool) {
	select {
	case raw := <-client.send:
		var event Event
		if err := json.Unmarshal(raw, &event); err != nil {
			return Event{}, false
		}
		return event, true
	default:
		return Event{}, false
	}
}

func (s *HubUnitSuite) TestPublishSkipsOriginAndOtherRooms(t provider.T) {
	t.Parallel()

	hub := NewHub()
	a, b, c := newTestClient(), newTestClient(), newTestClient()
	hub.Join(a, "movie_42")
	hub.Join(b, "movie_42")
	hub.Join(c, "tv_7")

	hub.Publish(a, "movie_42", Event{
		Type:    EventNewComment,
		Payload: commentPayload("movie", "42"),
	})

	event, ok := received(b)
	assert.True(t, ok, "other member of the room must receive the event")
	assert.Equal(t, EventNewComment, event.Type)

	_, ok = received(a)
	assert.False(t, ok, "origin must not be echoed its own event")

	_, ok = received(c)
	assert.False(t, ok, "members of other rooms must not receive the event")
}

func (s *HubUnitSuite) TestJoinIsIdempotent(t provider.T) {
	t.Parallel()

	hub := NewHub()
	a, b := newTestClient(), newTestClient()
	hub.Join(a, "movie_42")
	hub.Join(b, "movie_42")
	hub.Join(b, "movie_42")

	hub.Publish(a, "movie_42", Event{
		Type:    EventNewComment,
		Payload: commentPayload("movie", "42"),
	})

	_, ok := received(b)
	assert.True(t, ok)
	_, ok = received(b)
	assert.False(t, ok, "double join must not duplicate delivery")
}

func (s *HubUnitSuite) TestLeaveStopsDelivery(t provider.T) {
	t.Parallel()

	hub := NewHub()
	a, b := newTestClient(), newTestClient()
	hub.Join(a, "movie_42")
	hub.Join(b, "movie_42")

	hub.Leave(b, "movie_42")
	hub.Publish(a, "movie_42", Event{
		Type:    EventNewComment,
		Payload: commentPayload("movie", "42"),
	})

	_, ok := received(b)
	assert.False(t, ok, "former member must not receive events")

	// Leaving a room you are not in is a no-op.
	hub.Leave(b, "movie_42")
}

func (s *HubUnitSuite) TestDisconnectCleansEveryRoom(t provider.T) {
	t.Parallel()

	hub := NewHub()
	a, b := newTestClient(), newTestClient()
	hub.Join(a, "movie_42")
	hub.Join(b, "movie_42")
	hub.Join(b, "tv_7")

	hub.Disconnect(b)

	hub.Publish(a, "movie_42", Event{
		Type:    EventNewComment,
		Payload: commentPayload("movie", "42"),
	})
	hub.Publish(a, "tv_7", Event{
		Type:    EventCommentLiked,
		Payload: commentPayload("tv", "7"),
	})

	_, open := <-b.send
	assert.False(t, open, "send channel must be closed after disconnect")
}

func (s *HubUnitSuite) TestRelayRewritesEventType(t provider.T) {
	t.Parallel()

	hub := NewHub()
	a, b := newTestClient(), newTestClient()
	hub.Join(a, "movie_42")
	hub.Join(b, "movie_42")

	payload := commentPayload("movie", "42")
	hub.handleEvent(a, Event{Type: EventSendComment, Payload: payload})

	event, ok := received(b)
	assert.True(t, ok)
	assert.Equal(t, EventNewComment, event.Type)
	assert.JSONEq(t, string(payload), string(event.Payload))

	hub.handleEvent(a, Event{Type: EventLikeComment, Payload: payload})

	event, ok = received(b)
	assert.True(t, ok)
	assert.Equal(t, EventCommentLiked, event.Type)
}

func (s *HubUnitSuite) TestJoinAndLeaveThroughEvents(t provider.T) {
	t.Parallel()

	hub := NewHub()
	a, b := newTestClient(), newTestClient()

	join, _ := json.Marshal(map[string]string{"contentType": "movie", "contentId": "42"})
	hub.handleEvent(a, Event{Type: EventJoinRoom, Payload: join})
	hub.handleEvent(b, Event{Type: EventJoinRoom, Payload: join})

	hub.Publish(a, "movie_42", Event{
		Type:    EventNewComment,
		Payload: commentPayload("movie", "42"),
	})
	_, ok := received(b)
	assert.True(t, ok)

	hub.handleEvent(b, Event{Type: EventLeaveRoom, Payload: join})
	hub.Publish(a, "movie_42", Event{
		Type:    EventNewComment,
		Payload: commentPayload("movie", "42"),
	})
	_, ok = received(b)
	assert.False(t, ok)
}

func (s *HubUnitSuite) TestEventWithoutRoomReferenceIsDropped(t provider.T) {
	t.Parallel()

	hub := NewHub()
	a, b := newTestClient(), newTestClient()
	hub.Join(b, "movie_42")

	hub.handleEvent(a, Event{Type: EventSendComment, Payload: json.RawMessage(`{}`)})
	hub.handleEvent(a, Event{Type: EventSendComment, Payload: json.RawMessage(`not json`)})

	_, ok := received(b)
	assert.False(t, ok)
}

func TestHubUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(HubUnitSuite))
}
