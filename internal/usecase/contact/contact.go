package usecase_contact

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cinetalk/backend/internal/model"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrInvalidEmail = errors.New("invalid email format")
	ErrDelivery     = errors.New("failed to send email")
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

//go:generate mockery --name=EmailTransport --output=./mocks/contact/transport --filename=transport.go
type EmailTransport interface {
	Send(ctx context.Context, msg model.EmailMessage) error
}

type Usecase struct {
	transport EmailTransport
}

func New(transport EmailTransport) *Usecase {
	return &Usecase{transport: transport}
}

// Submit validates the form and forwards it as a single outbound email.
// The transport is never touched when validation fails.
func (u *Usecase) Submit(ctx context.Context, form model.ContactForm) error {
	if strings.TrimSpace(form.Name) == "" ||
		strings.TrimSpace(form.Email) == "" ||
		strings.TrimSpace(form.Message) == "" {
		return ErrMissingField
	}

	if !emailPattern.MatchString(form.Email) {
		return ErrInvalidEmail
	}

	subject := "New Contact Message"
	if s := strings.TrimSpace(form.Subject); s != "" {
		subject = "Contact: " + s
	}

	msg := model.EmailMessage{
		ReplyTo: form.Email,
		Subject: subject,
		Body: fmt.Sprintf("Name: %s\nEmail: %s\nMessage:\n%s",
			form.Name, form.Email, form.Message),
	}

	if err := u.transport.Send(ctx, msg); err != nil {
		return errors.Join(ErrDelivery, err)
	}
	return nil
}
