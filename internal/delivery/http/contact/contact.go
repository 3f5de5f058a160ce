package http_contact

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinetalk/backend/internal/model"
	usecase_contact "github.com/cinetalk/backend/internal/usecase/contact"
)

type Controller struct {
	uc *usecase_contact.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_contact.Usecase, opts ...ControllerOption) *Controller {
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
	router.POST("/contact", c.submit)
}

type ContactRequestDTO struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *Controller) submit(ctx *gin.Context) {
	var req ContactRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	err := c.uc.Submit(ctx.Request.Context(), model.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase_contact.ErrMissingField):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		case errors.Is(err, usecase_contact.ErrInvalidEmail):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		default:
			c.logger.Error("failed to send contact email",
				slog.String("error", err.Error()),
			)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}
