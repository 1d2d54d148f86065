package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/internal/pkg/constants"
	"github.com/ManuelReschke/Folio/internal/pkg/newsletter"
	"github.com/ManuelReschke/Folio/internal/pkg/statistics"
)

// NewsletterController handles the signup form shown in the footer
type NewsletterController struct {
	newsletter *newsletter.Service
}

// NewNewsletterController creates a new newsletter controller
func NewNewsletterController(svc *newsletter.Service) *NewsletterController {
	return &NewsletterController{newsletter: svc}
}

// HandleSubscribe subscribes the posted email and returns to the page the
// form was sent from
func (nc *NewsletterController) HandleSubscribe(c *fiber.Ctx) error {
	back := safeRedirect(c.FormValue("return_to"), constants.RouteHome)

	result, err := nc.newsletter.Subscribe(c.FormValue("email"))
	if err != nil {
		switch {
		case errors.Is(err, newsletter.ErrInvalidEmail), errors.Is(err, newsletter.ErrAlreadySubscribed):
			return flashError(c, back, err.Error())
		default:
			log.Errorf("[Newsletter] Subscribe failed: %v", err)
			return flashError(c, back, "Subscription failed, please try again later")
		}
	}

	statistics.Invalidate()
	return flashSuccess(c, back, result.Message)
}
