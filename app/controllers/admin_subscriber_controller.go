package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/internal/pkg/constants"
	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/newsletter"
	"github.com/ManuelReschke/Folio/internal/pkg/statistics"
)

const subscribersPerPage = 50

// AdminSubscriberController lists and deactivates newsletter subscribers
type AdminSubscriberController struct {
	newsletter *newsletter.Service
}

// NewAdminSubscriberController creates a new admin subscriber controller
func NewAdminSubscriberController(svc *newsletter.Service) *AdminSubscriberController {
	return &AdminSubscriberController{newsletter: svc}
}

// HandleList renders one page of subscribers, newest first
func (sc *AdminSubscriberController) HandleList(c *fiber.Ctx) error {
	page := queryPage(c)
	subscribers, total, err := sc.newsletter.List(page, subscribersPerPage)
	if err != nil {
		log.Errorf("[Admin] Failed to list subscribers: %v", err)
		return flashError(c, constants.RouteAdmin, "Subscribers could not be loaded")
	}

	pager := content.Page[struct{}]{Total: total, Page: page, PerPage: subscribersPerPage}
	return render(c, "admin/subscribers/index", adminLayout(c, "Subscribers"), fiber.Map{
		"Subscribers": subscribers,
		"Total":       total,
		"Page":        page,
		"HasPrev":     pager.HasPrev(),
		"HasNext":     pager.HasNext(),
	})
}

// HandleDeactivate marks a subscriber inactive; the row is kept
func (sc *AdminSubscriberController) HandleDeactivate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return flashError(c, constants.RouteAdminSubscribers, "Invalid subscriber ID")
	}
	if err := sc.newsletter.Deactivate(id); err != nil {
		if errors.Is(err, newsletter.ErrSubscriberNotFound) {
			return flashError(c, constants.RouteAdminSubscribers, "Subscriber not found")
		}
		log.Errorf("[Admin] Failed to deactivate subscriber %d: %v", id, err)
		return flashError(c, constants.RouteAdminSubscribers, "Subscriber could not be deactivated")
	}

	statistics.Invalidate()
	return flashSuccess(c, constants.RouteAdminSubscribers, "Subscriber deactivated")
}
