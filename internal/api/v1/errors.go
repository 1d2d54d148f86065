package apiv1

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/internal/pkg/contact"
	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/newsletter"
)

// writeError maps service errors onto status codes and the error body
func writeError(c *fiber.Ctx, err error) error {
	status, body := describeError(err)
	if status == fiber.StatusInternalServerError {
		log.Errorf("[API] %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(body)
}

func describeError(err error) (int, Error) {
	var verr *content.ValidationError
	var cverr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, Error{Error: "validation_error", Message: verr.Error(), Fields: verr.Fields()}
	case errors.As(err, &cverr):
		return fiber.StatusBadRequest, Error{Error: "validation_error", Message: cverr.Error()}
	case errors.Is(err, content.ErrInvalidTransition):
		return fiber.StatusBadRequest, Error{Error: "invalid_transition", Message: err.Error()}
	case errors.Is(err, content.ErrInvalidSchedule):
		return fiber.StatusBadRequest, Error{Error: "invalid_schedule", Message: err.Error()}
	case errors.Is(err, contact.ErrCaptcha):
		return fiber.StatusBadRequest, Error{Error: "captcha_failed", Message: err.Error()}
	case errors.Is(err, content.ErrNotFound), errors.Is(err, newsletter.ErrSubscriberNotFound):
		return fiber.StatusNotFound, Error{Error: "not_found", Message: err.Error()}
	case errors.Is(err, content.ErrNoLink):
		return fiber.StatusNotFound, Error{Error: "no_link", Message: err.Error()}
	case errors.Is(err, content.ErrDuplicateSlug):
		return fiber.StatusConflict, Error{Error: "duplicate_slug", Message: err.Error()}
	case errors.Is(err, newsletter.ErrAlreadySubscribed):
		return fiber.StatusConflict, Error{Error: "already_subscribed", Message: err.Error()}
	case errors.Is(err, newsletter.ErrInvalidEmail):
		return fiber.StatusUnprocessableEntity, Error{Error: "invalid_email", Message: err.Error()}
	case errors.Is(err, contact.ErrNotConfigured):
		return fiber.StatusServiceUnavailable, Error{Error: "unavailable", Message: err.Error()}
	default:
		return fiber.StatusInternalServerError, Error{Error: "internal_error", Message: "Internal server error"}
	}
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(Error{Error: "invalid_body", Message: "Request body must be valid JSON"})
}
