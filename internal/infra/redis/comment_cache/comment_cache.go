package infra_redis_comment_cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis"

	"github.com/cinetalk/backend/internal/model"
)

const defaultTTL = time.Minute

// Driver keeps the rendered comment list of each content room under a
// single key. Entries are short-lived; writes simply drop the key.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    defaultTTL,
	}
}

func (d *Driver) Get(_ context.Context, key model.RoomKey) ([]model.Comment, error) {
	raw, err := d.client.Get(d.getFullKey(key)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var comments []model.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (d *Driver) Set(_ context.Context, key model.RoomKey, comments []model.Comment) error {
	raw, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	return d.client.Set(d.getFullKey(key), string(raw), d.ttl).Err()
}

func (d *Driver) Invalidate(_ context.Context, key model.RoomKey) error {
	return d.client.Del(d.getFullKey(key)).Err()
}

func (d *Driver) getFullKey(key model.RoomKey) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
