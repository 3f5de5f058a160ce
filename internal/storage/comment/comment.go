package storage_comment

import (
	"context"
	"log/slog"

	"github.com/cinetalk/backend/internal/model"
)

//go:generate mockery --name=Repository --output=./mocks/comment/repository --filename=repository.go
type Repository interface {
	Insert(ctx context.Context, comment model.Comment) (model.Comment, error)
	FindByContent(ctx context.Context, contentType model.ContentType, contentID string) ([]model.Comment, error)
	IncrementLikes(ctx context.Context, commentID string) (model.Comment, error)
}

//go:generate mockery --name=ListCache --output=./mocks/comment/cache --filename=cache.go
type ListCache interface {
	// Get returns (nil, nil) on a cache miss.
	Get(ctx context.Context, key model.RoomKey) ([]model.Comment, error)
	Set(ctx context.Context, key model.RoomKey, comments []model.Comment) error
	Invalidate(ctx context.Context, key model.RoomKey) error
}

// Storage fronts the document store with a per-content list cache.
// The cache is best-effort: any cache failure falls through to the
// repository.
type Storage struct {
	repo  Repository
	cache ListCache

	logger *slog.Logger
}

type StorageOption func(*Storage)

func WithLogger(logger *slog.Logger) StorageOption {
	return func(s *Storage) {
		s.logger = logger
	}
}

func New(repo Repository, cache ListCache, opts ...StorageOption) *Storage {
	s := &Storage{
		repo:   repo,
		cache:  cache,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Storage) FindByContent(ctx context.Context, contentType model.ContentType, contentID string) ([]model.Comment, error) {
	key := model.BuildRoomKey(contentType, contentID)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("comment cache read failed", "key", key, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	comments, err := s.repo.FindByContent(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, comments); err != nil {
		s.logger.Warn("comment cache write failed", "key", key, "error", err)
	}
	return comments, nil
}

func (s *Storage) Insert(ctx context.Context, comment model.Comment) (model.Comment, error) {
	created, err := s.repo.Insert(ctx, comment)
	if err != nil {
		return model.Comment{}, err
	}

	s.invalidate(ctx, model.BuildRoomKey(created.ContentType, created.ContentID))
	return created, nil
}

func (s *Storage) IncrementLikes(ctx context.Context, commentID string) (model.Comment, error) {
	updated, err := s.repo.IncrementLikes(ctx, commentID)
	if err != nil {
		return model.Comment{}, err
	}

	s.invalidate(ctx, model.BuildRoomKey(updated.ContentType, updated.ContentID))
	return updated, nil
}

func (s *Storage) invalidate(ctx context.Context, key model.RoomKey) {
	if err := s.cache.Invalidate(ctx, key); err != nil {
		s.logger.Warn("comment cache invalidation failed", "key", key, "error", err)
	}
}
