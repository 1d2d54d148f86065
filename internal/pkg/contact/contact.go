package contact

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/env"
	"github.com/ManuelReschke/Folio/internal/pkg/hcaptcha"
	"github.com/ManuelReschke/Folio/internal/pkg/mail"
)

var (
	ErrCaptcha       = errors.New("captcha verification failed")
	ErrNotConfigured = errors.New("contact form is not configured")
)

// ValidationError wraps field validation failures of a contact message
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Service delivers contact form messages to the site owner
type Service struct {
	Recipient     string
	Send          func(mail.Message) error
	VerifyCaptcha func(token string) (bool, error)
}

// NewService wires the service to SMTP and, when configured, hCaptcha
func NewService() *Service {
	s := &Service{
		Recipient: env.GetEnv("CONTACT_RECIPIENT", ""),
		Send:      mail.Send,
	}
	if hcaptcha.Enabled() {
		s.VerifyCaptcha = hcaptcha.Verify
	}
	return s
}

// Submit validates msg and mails it with the sender as reply-to
func (s *Service) Submit(msg models.ContactMessage, captchaToken string) error {
	msg.Normalize()
	if err := msg.Validate(); err != nil {
		return &ValidationError{Err: err}
	}

	if s.VerifyCaptcha != nil {
		if ok, err := s.VerifyCaptcha(captchaToken); !ok {
			log.Warnf("[Contact] Captcha rejected: %v", err)
			return ErrCaptcha
		}
	}

	if s.Recipient == "" {
		return ErrNotConfigured
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\nSubject: %s\n\n%s\n",
		msg.FullName(), msg.Email, msg.Subject, msg.Message)
	err := s.Send(mail.Message{
		To:      s.Recipient,
		ReplyTo: msg.Email,
		Subject: "[Contact] " + msg.Subject,
		Body:    body,
	})
	if err != nil {
		return fmt.Errorf("send contact message: %w", err)
	}
	return nil
}
