package usecase_comment

import (
	"context"
	"errors"
	"strings"

	"github.com/cinetalk/backend/internal/model"
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrResourceNotFound   = errors.New("no such resource")
	ErrInternal           = errors.New("internal error")
)

//go:generate mockery --name=CommentStorage --output=./mocks/comment/storage --filename=storage.go
type CommentStorage interface {
	Insert(ctx context.Context, comment model.Comment) (model.Comment, error)
	FindByContent(ctx context.Context, contentType model.ContentType, contentID string) ([]model.Comment, error)
	IncrementLikes(ctx context.Context, commentID string) (model.Comment, error)
}

type Usecase struct {
	storage CommentStorage
}

func New(storage CommentStorage) *Usecase {
	return &Usecase{storage: storage}
}

// List returns every comment for the given content, newest first.
// No comments is not an error.
func (u *Usecase) List(ctx context.Context, contentType model.ContentType, contentID string) ([]model.Comment, error) {
	comments, err := u.storage.FindByContent(ctx, contentType, contentID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	if comments == nil {
		comments = []model.Comment{}
	}
	return comments, nil
}

func (u *Usecase) Create(ctx context.Context, contentID, contentType, username, comment string) (model.Comment, error) {
	if strings.TrimSpace(contentID) == "" ||
		strings.TrimSpace(contentType) == "" ||
		strings.TrimSpace(username) == "" ||
		strings.TrimSpace(comment) == "" {
		return model.Comment{}, ErrMissingField
	}

	ct, err := model.ParseContentType(contentType)
	if err != nil {
		return model.Comment{}, errors.Join(ErrInvalidContentType, err)
	}

	created, err := u.storage.Insert(ctx, model.Comment{
		ContentID:   contentID,
		ContentType: ct,
		Username:    username,
		Comment:     comment,
	})
	if err != nil {
		return model.Comment{}, errors.Join(ErrInternal, err)
	}
	return created, nil
}

// Like bumps the counter by exactly one. The increment happens inside
// the store as a single atomic update, so concurrent likes never lose
// each other.
func (u *Usecase) Like(ctx context.Context, commentID string) (model.Comment, error) {
	updated, err := u.storage.IncrementLikes(ctx, commentID)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return model.Comment{}, ErrResourceNotFound
		}
		return model.Comment{}, errors.Join(ErrInternal, err)
	}
	return updated, nil
}
