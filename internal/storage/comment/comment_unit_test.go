package storage_comment

import (
	"context"
	"errors"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/cinetalk/backend/internal/model"
	cache_mocks "github.com/cinetalk/backend/internal/storage/comment/mocks/comment/cache"
	repo_mocks "github.com/cinetalk/backend/internal/storage/comment/mocks/comment/repository"
)

type StorageCommentUnitSuite struct {
	suite.Suite
}

type resources struct {
	storage *Storage
	repo    *repo_mocks.Repository
	cache   *cache_mocks.ListCache
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewRepository(t)
	cache := cache_mocks.NewListCache(t)
	storage := New(repo, cache)

	return &resources{
		storage: storage,
		repo:    repo,
		cache:   cache,
		ctx:     context.Background(),
	}
}

func movieComment() model.Comment {
	return model.Comment{
		ID:          primitive.NewObjectID(),
		ContentID:   "42",
		ContentType: model.ContentTypeMovie,
		Username:    "moviegoer",
		Comment:     "loved the ending",
	}
}

func (s *StorageCommentUnitSuite) TestFindByContent(t provider.T) {
	t.Parallel()

	comments := []model.Comment{movieComment()}

	testCases := []struct {
		name        string
		setupMocks  func(r *resources)
		expectError bool
	}{
		{
			name: "Should serve from cache when warm",
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, "movie_42").Return(comments, nil).Once()
			},
		},
		{
			name: "Should fall through to repository on miss and warm the cache",
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, "movie_42").Return(nil, nil).Once()
				r.repo.On("FindByContent", r.ctx, model.ContentTypeMovie, "42").
					Return(comments, nil).Once()
				r.cache.On("Set", r.ctx, "movie_42", comments).Return(nil).Once()
			},
		},
		{
			name: "Should degrade to repository when cache read fails",
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, "movie_42").
					Return(nil, errors.New("redis gone")).Once()
				r.repo.On("FindByContent", r.ctx, model.ContentTypeMovie, "42").
					Return(comments, nil).Once()
				r.cache.On("Set", r.ctx, "movie_42", comments).
					Return(errors.New("redis gone")).Once()
			},
		},
		{
			name: "Should return error when repository fails",
			setupMocks: func(r *resources) {
				r.cache.On("Get", r.ctx, "movie_42").Return(nil, nil).Once()
				r.repo.On("FindByContent", r.ctx, model.ContentTypeMovie, "42").
					Return(nil, errors.New("connection refused")).Once()
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			result, err := r.storage.FindByContent(r.ctx, model.ContentTypeMovie, "42")

			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, comments, result)
			}
			r.repo.AssertExpectations(t)
			r.cache.AssertExpectations(t)
		})
	}
}

func (s *StorageCommentUnitSuite) TestInsert(t provider.T) {
	t.Parallel()

	r := initResources(t)
	comment := movieComment()

	r.repo.On("Insert", r.ctx, comment).Return(comment, nil).Once()
	r.cache.On("Invalidate", r.ctx, "movie_42").Return(nil).Once()

	created, err := r.storage.Insert(r.ctx, comment)

	assert.NoError(t, err)
	assert.Equal(t, comment, created)
	r.repo.AssertExpectations(t)
	r.cache.AssertExpectations(t)
}

func (s *StorageCommentUnitSuite) TestIncrementLikes(t provider.T) {
	t.Parallel()

	r := initResources(t)
	liked := movieComment()
	liked.Likes = 1

	r.repo.On("IncrementLikes", r.ctx, liked.ID.Hex()).Return(liked, nil).Once()
	r.cache.On("Invalidate", r.ctx, "movie_42").Return(nil).Once()

	updated, err := r.storage.IncrementLikes(r.ctx, liked.ID.Hex())

	assert.NoError(t, err)
	assert.Equal(t, 1, updated.Likes)
	r.repo.AssertExpectations(t)
	r.cache.AssertExpectations(t)
}

func (s *StorageCommentUnitSuite) TestIncrementLikesRepositoryError(t provider.T) {
	t.Parallel()

	r := initResources(t)

	r.repo.On("IncrementLikes", r.ctx, "unknown").
		Return(model.Comment{}, errors.New("no such document")).Once()

	_, err := r.storage.IncrementLikes(r.ctx, "unknown")

	assert.Error(t, err)
	r.repo.AssertExpectations(t)
	r.cache.AssertExpectations(t)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(StorageCommentUnitSuite))
}
