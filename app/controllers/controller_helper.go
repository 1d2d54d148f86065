package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/hcaptcha"
	"github.com/ManuelReschke/Folio/internal/pkg/oauth"
	"github.com/ManuelReschke/Folio/internal/pkg/usercontext"
	"github.com/ManuelReschke/Folio/internal/pkg/viewmodel"
)

const (
	layoutMain = "layouts/main"
	siteName   = "Folio"
)

// newLayout builds the layout for the current request. Flash messages from
// the previous redirect are consumed here.
func newLayout(c *fiber.Ctx, page string, og *viewmodel.OpenGraph) viewmodel.Layout {
	layout := viewmodel.NewLayout(page)
	layout.Path = c.Path()
	layout.Msg = flash.Get(c)
	layout.IsAdmin = usercontext.IsAdmin(c)
	layout.Username = usercontext.Username(c)
	layout.CaptchaSiteKey = hcaptcha.SiteKey()
	layout.OAuthProviders = oauth.Providers()
	if token, ok := c.Locals(usercontext.KeyCSRFToken).(string); ok {
		layout.CSRFToken = token
	}
	if og == nil {
		og = &viewmodel.OpenGraph{Title: page}
	}
	if og.Title == "" {
		og.Title = page
	}
	if og.Type == "" {
		og.Type = "website"
	}
	if og.URL == "" {
		og.URL = c.BaseURL() + c.OriginalURL()
	}
	layout.OGViewModel = og
	return layout
}

// adminLayout is newLayout for pages behind the admin gate
func adminLayout(c *fiber.Ctx, page string) viewmodel.Layout {
	layout := newLayout(c, page+" | Admin", nil)
	layout.FromProtected = true
	return layout
}

// render executes view inside the main layout
func render(c *fiber.Ctx, view string, layout viewmodel.Layout, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Layout"] = layout
	return c.Render(view, data, layoutMain)
}

// renderNotFound answers with the 404 page
func renderNotFound(c *fiber.Ctx) error {
	layout := newLayout(c, "Not Found", nil)
	layout.IsError = true
	return render(c.Status(fiber.StatusNotFound), "errors/404", layout, nil)
}

// HandleNotFound is the catch-all route
func HandleNotFound(c *fiber.Ctx) error {
	return renderNotFound(c)
}

func flashError(c *fiber.Ctx, target, message string) error {
	return flash.WithError(c, fiber.Map{"type": "error", "message": message}).Redirect(target)
}

func flashSuccess(c *fiber.Ctx, target, message string) error {
	return flash.WithSuccess(c, fiber.Map{"type": "success", "message": message}).Redirect(target)
}

// errorMessage turns a content error into text for the editor
func errorMessage(err error) string {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		if fields := verr.Fields(); len(fields) > 0 {
			return "Please check the following fields: " + strings.Join(fields, ", ")
		}
		return verr.Err.Error()
	case errors.Is(err, content.ErrDuplicateSlug):
		return "This slug is already in use"
	case errors.Is(err, content.ErrInvalidTransition):
		return "Published content has to be moved back to draft before it can be scheduled"
	case errors.Is(err, content.ErrInvalidSchedule):
		return "The scheduled publish time must be in the future"
	case errors.Is(err, content.ErrNotFound):
		return "The requested entry does not exist"
	default:
		log.Errorf("[Admin] %v", err)
		return "Something went wrong, please try again"
	}
}

// errorStatus maps a content error onto the HTTP status of a re-rendered form
func errorStatus(err error) int {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, content.ErrDuplicateSlug):
		return fiber.StatusConflict
	case errors.Is(err, content.ErrInvalidTransition), errors.Is(err, content.ErrInvalidSchedule):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, content.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func queryPage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func isChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "on", "true", "yes":
		return true
	}
	return false
}

// safeRedirect only follows local paths
func safeRedirect(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return fallback
	}
	return target
}

// GetClientIP determines the client address, honoring the common proxy headers
func GetClientIP(c *fiber.Ctx) string {
	if ip := strings.TrimSpace(c.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(c.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return strings.TrimPrefix(c.IP(), "::ffff:")
}
