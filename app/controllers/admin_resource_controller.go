package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/constants"
	"github.com/ManuelReschke/Folio/internal/pkg/content"
	"github.com/ManuelReschke/Folio/internal/pkg/statistics"
	"github.com/ManuelReschke/Folio/internal/pkg/viewmodel"
)

// ResourceForm holds the values shown in the resource editor
type ResourceForm struct {
	ID              uint
	Title           string
	Slug            string
	Description     string
	Category        string
	Topics          string
	Status          string
	IsFeatured      bool
	IsFree          bool
	DownloadURL     string
	WebsiteURL      string
	PreviewURL      string
	ApplyURL        string
	RegistrationURL string
	ImageURL        string
	PublishedAt     string
}

func resourceFormFrom(r *models.Resource) ResourceForm {
	return ResourceForm{
		ID:              r.ID,
		Title:           r.Title,
		Slug:            r.Slug,
		Description:     r.Description,
		Category:        r.Category,
		Topics:          strings.Join(r.Topics, ", "),
		Status:          string(r.Status),
		IsFeatured:      r.IsFeatured,
		IsFree:          r.IsFree,
		DownloadURL:     viewmodel.Deref(r.DownloadURL),
		WebsiteURL:      viewmodel.Deref(r.WebsiteURL),
		PreviewURL:      viewmodel.Deref(r.PreviewURL),
		ApplyURL:        viewmodel.Deref(r.ApplyURL),
		RegistrationURL: viewmodel.Deref(r.RegistrationURL),
		ImageURL:        viewmodel.Deref(r.ImageURL),
		PublishedAt:     viewmodel.DateInput(r.PublishedAt),
	}
}

func resourceFormFromRequest(c *fiber.Ctx) ResourceForm {
	return ResourceForm{
		Title:           c.FormValue("title"),
		Slug:            c.FormValue("slug"),
		Description:     c.FormValue("description"),
		Category:        c.FormValue("category"),
		Topics:          c.FormValue("topics"),
		Status:          c.FormValue("status"),
		IsFeatured:      isChecked(c.FormValue("is_featured")),
		IsFree:          isChecked(c.FormValue("is_free")),
		DownloadURL:     c.FormValue("download_url"),
		WebsiteURL:      c.FormValue("website_url"),
		PreviewURL:      c.FormValue("preview_url"),
		ApplyURL:        c.FormValue("apply_url"),
		RegistrationURL: c.FormValue("registration_url"),
		ImageURL:        c.FormValue("image_url"),
		PublishedAt:     c.FormValue("published_at"),
	}
}

// Input converts the submitted form into service input
func (f ResourceForm) Input() (content.ResourceInput, error) {
	status, err := models.ParseContentStatus(f.Status)
	if err != nil {
		return content.ResourceInput{}, &content.ValidationError{Err: err}
	}
	publishedAt, err := viewmodel.ParseDateInput(f.PublishedAt)
	if err != nil {
		return content.ResourceInput{}, &content.ValidationError{Err: fmt.Errorf("invalid publish date %q", f.PublishedAt)}
	}
	isFree := f.IsFree
	return content.ResourceInput{
		Title:           f.Title,
		Slug:            f.Slug,
		Description:     f.Description,
		Category:        f.Category,
		Topics:          content.SplitList(f.Topics),
		Status:          status,
		IsFeatured:      f.IsFeatured,
		IsFree:          &isFree,
		DownloadURL:     f.DownloadURL,
		WebsiteURL:      f.WebsiteURL,
		PreviewURL:      f.PreviewURL,
		ApplyURL:        f.ApplyURL,
		RegistrationURL: f.RegistrationURL,
		ImageURL:        f.ImageURL,
		PublishedAt:     publishedAt,
	}, nil
}

// AdminResourceController handles the resource management screens
type AdminResourceController struct {
	content *content.Service
}

// NewAdminResourceController creates a new admin resource controller
func NewAdminResourceController(svc *content.Service) *AdminResourceController {
	return &AdminResourceController{content: svc}
}

// HandleList renders all resources regardless of status
func (rc *AdminResourceController) HandleList(c *fiber.Ctx) error {
	resources, err := rc.content.ListResources()
	if err != nil {
		return flashError(c, constants.RouteAdmin, errorMessage(err))
	}
	return render(c, "admin/resources/index", adminLayout(c, "Resources"), fiber.Map{
		"Resources": resources,
	})
}

// HandleCreate renders an empty editor; new resources are free by default
func (rc *AdminResourceController) HandleCreate(c *fiber.Ctx) error {
	return rc.renderForm(c, ResourceForm{Status: string(models.StatusDraft), IsFree: true}, fiber.StatusOK, "")
}

// HandleStore creates a resource from the submitted editor
func (rc *AdminResourceController) HandleStore(c *fiber.Ctx) error {
	form := resourceFormFromRequest(c)
	in, err := form.Input()
	if err == nil {
		_, err = rc.content.CreateResource(in)
	}
	if err != nil {
		return rc.renderForm(c, form, errorStatus(err), errorMessage(err))
	}

	statistics.Invalidate()
	return flashSuccess(c, constants.RouteAdminResources, "Resource created")
}

// HandleEdit renders the editor for an existing resource
func (rc *AdminResourceController) HandleEdit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return flashError(c, constants.RouteAdminResources, "Invalid resource ID")
	}
	resource, err := rc.content.GetResource(id)
	if err != nil {
		return flashError(c, constants.RouteAdminResources, errorMessage(err))
	}
	return rc.renderForm(c, resourceFormFrom(resource), fiber.StatusOK, "")
}

// HandleUpdate saves the editor of an existing resource
func (rc *AdminResourceController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return flashError(c, constants.RouteAdminResources, "Invalid resource ID")
	}

	form := resourceFormFromRequest(c)
	form.ID = id
	in, err := form.Input()
	if err == nil {
		_, err = rc.content.UpdateResource(id, in)
	}
	if err != nil {
		return rc.renderForm(c, form, errorStatus(err), errorMessage(err))
	}

	statistics.Invalidate()
	return flashSuccess(c, constants.RouteAdminResources, "Resource updated")
}

// HandleDelete removes a resource
func (rc *AdminResourceController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return flashError(c, constants.RouteAdminResources, "Invalid resource ID")
	}
	if err := rc.content.DeleteResource(id); err != nil {
		return flashError(c, constants.RouteAdminResources, errorMessage(err))
	}

	statistics.Invalidate()
	return flashSuccess(c, constants.RouteAdminResources, "Resource deleted")
}

func (rc *AdminResourceController) renderForm(c *fiber.Ctx, form ResourceForm, status int, message string) error {
	page := "New Resource"
	action := constants.RouteAdminResources + "/store"
	if form.ID != 0 {
		page = "Edit Resource"
		action = fmt.Sprintf("%s/update/%d", constants.RouteAdminResources, form.ID)
	}
	layout := adminLayout(c, page)
	if message != "" {
		layout.Msg = fiber.Map{"type": "error", "message": message}
	}
	return render(c.Status(status), "admin/resources/form", layout, fiber.Map{
		"Form":       form,
		"Action":     action,
		"Categories": models.ResourceCategories,
		"Statuses":   []models.ContentStatus{models.StatusDraft, models.StatusPublished, models.StatusScheduled},
	})
}
