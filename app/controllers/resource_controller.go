package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/constants"
	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/viewmodel"
)

// ResourceController renders the public resource library
type ResourceController struct {
	content *content.Service
}

// NewResourceController creates a new resource controller
func NewResourceController(svc *content.Service) *ResourceController {
	return &ResourceController{content: svc}
}

// HandleIndex lists visible resources, optionally filtered by ?category=
func (rc *ResourceController) HandleIndex(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" && !models.IsResourceCategory(category) {
		category = ""
	}
	resources, err := rc.content.ListVisibleResources(category)
	if err != nil {
		log.Errorf("[Resources] Failed to list resources: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Resources could not be loaded")
	}

	return render(c, "resources/index", newLayout(c, "Resources", &viewmodel.OpenGraph{
		Description: "Lecture materials, courses and programs worth knowing about",
	}), fiber.Map{
		"Resources":  resources,
		"Category":   category,
		"Categories": models.ResourceCategories,
	})
}

// HandleVisit counts a view and redirects to the resource's primary link
func (rc *ResourceController) HandleVisit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return renderNotFound(c)
	}
	target, err := rc.content.VisitResource(id)
	return rc.redirect(c, id, target, err)
}

// HandleDownload counts a download and redirects to the download link
func (rc *ResourceController) HandleDownload(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return renderNotFound(c)
	}
	target, _, err := rc.content.DownloadResource(id)
	return rc.redirect(c, id, target, err)
}

func (rc *ResourceController) redirect(c *fiber.Ctx, id uint, target string, err error) error {
	switch {
	case err == nil:
		return c.Redirect(target, fiber.StatusFound)
	case errors.Is(err, content.ErrNotFound):
		return renderNotFound(c)
	case errors.Is(err, content.ErrNoLink):
		return flashError(c, constants.RouteResources, "This resource has no link yet")
	default:
		log.Errorf("[Resources] Failed to follow resource %d: %v", id, err)
		return flashError(c, constants.RouteResources, "Something went wrong, please try again")
	}
}
