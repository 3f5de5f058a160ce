package model

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnknownContentType = errors.New("unknown content type")

// ContentType is a closed set: comments are attached either to a movie
// or to a TV show.
type ContentType string

const (
	ContentTypeMovie ContentType = "movie"
	ContentTypeTV    ContentType = "tv"
)

func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentTypeMovie, ContentTypeTV:
		return ContentType(s), nil
	}
	return "", ErrUnknownContentType
}

type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ContentID   string             `bson:"contentId" json:"contentId"`
	ContentType ContentType        `bson:"contentType" json:"contentType"`
	Username    string             `bson:"username" json:"username"`
	Comment     string             `bson:"comment" json:"comment"`
	Likes       int                `bson:"likes" json:"likes"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// RoomKey identifies an ephemeral broadcast group of viewers watching
// the same content.
type RoomKey = string

const EmptyRoomKey RoomKey = ""

func BuildRoomKey(contentType ContentType, contentID string) RoomKey {
	return string(contentType) + "_" + contentID
}
