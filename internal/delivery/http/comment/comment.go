package http_comment

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinetalk/backend/internal/model"
	usecase_comment "github.com/cinetalk/backend/internal/usecase/comment"
)

type Controller struct {
	uc *usecase_comment.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_comment.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/comments")
	comments.GET("/:contentType/:contentId", c.list)
	comments.POST("", c.create)
	comments.POST("/like/:commentId", c.like)
}

func (c *Controller) list(ctx *gin.Context) {
	contentType, err := model.ParseContentType(ctx.Param("contentType"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid content type"})
		return
	}

	comments, err := c.uc.List(ctx.Request.Context(), contentType, ctx.Param("contentId"))
	if err != nil {
		c.logger.Error("failed to list comments",
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching comments"})
		return
	}

	ctx.JSON(http.StatusOK, comments)
}

type CreateCommentDTO struct {
	ContentID   string `json:"contentId"`
	ContentType string `json:"contentType"`
	Username    string `json:"username"`
	Comment     string `json:"comment"`
}

func (c *Controller) create(ctx *gin.Context) {
	var req CreateCommentDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	created, err := c.uc.Create(ctx.Request.Context(), req.ContentID, req.ContentType, req.Username, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, usecase_comment.ErrMissingField):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		case errors.Is(err, usecase_comment.ErrInvalidContentType):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid content type"})
		default:
			c.logger.Error("failed to save comment",
				slog.String("error", err.Error()),
			)
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving comment"})
		}
		return
	}

	// The caller re-publishes the created comment over the websocket
	// channel itself; nothing is broadcast from here.
	ctx.JSON(http.StatusCreated, created)
}

func (c *Controller) like(ctx *gin.Context) {
	updated, err := c.uc.Like(ctx.Request.Context(), ctx.Param("commentId"))
	if err != nil {
		if errors.Is(err, usecase_comment.ErrResourceNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": "Comment not found"})
			return
		}
		c.logger.Error("failed to like comment",
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error liking comment"})
		return
	}

	ctx.JSON(http.StatusOK, updated)
}
