package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/constants"
	"github.com/ManuelReschke/Folio/internal/pkg/contact"
	"github.com/ManuelReschke/Folio/internal/pkg/viewmodel"
)

// ContactController renders and delivers the contact form
type ContactController struct {
	contact *contact.Service
}

// NewContactController creates a new contact controller
func NewContactController(svc *contact.Service) *ContactController {
	return &ContactController{contact: svc}
}

// HandleContact renders the form
func (cc *ContactController) HandleContact(c *fiber.Ctx) error {
	return cc.renderForm(c, models.ContactMessage{}, fiber.StatusOK, "")
}

// HandleSubmit mails the submitted message to the site owner
func (cc *ContactController) HandleSubmit(c *fiber.Ctx) error {
	msg := models.ContactMessage{
		FirstName: c.FormValue("firstName"),
		LastName:  c.FormValue("lastName"),
		Email:     c.FormValue("email"),
		Subject:   c.FormValue("subject"),
		Message:   c.FormValue("message"),
	}

	err := cc.contact.Submit(msg, c.FormValue("h-captcha-response"))
	if err == nil {
		log.Infof("[Contact] Message from %s delivered", GetClientIP(c))
		return flashSuccess(c, constants.RouteContact, "Thank you for your message! I will get back to you soon.")
	}

	var verr *contact.ValidationError
	switch {
	case errors.As(err, &verr):
		return cc.renderForm(c, msg, fiber.StatusUnprocessableEntity, "Please fill in all fields with a valid email address")
	case errors.Is(err, contact.ErrCaptcha):
		return cc.renderForm(c, msg, fiber.StatusBadRequest, "Please complete the captcha")
	case errors.Is(err, contact.ErrNotConfigured):
		return cc.renderForm(c, msg, fiber.StatusServiceUnavailable, "The contact form is currently unavailable")
	default:
		log.Errorf("[Contact] Delivery failed: %v", err)
		return cc.renderForm(c, msg, fiber.StatusBadGateway, "Your message could not be sent, please try again later")
	}
}

func (cc *ContactController) renderForm(c *fiber.Ctx, msg models.ContactMessage, status int, message string) error {
	layout := newLayout(c, "Contact", &viewmodel.OpenGraph{Description: "Get in touch"})
	if message != "" {
		layout.Msg = fiber.Map{"type": "error", "message": message}
	}
	return render(c.Status(status), "contact", layout, fiber.Map{"Form": msg})
}
