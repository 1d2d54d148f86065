package content

import (
	"errors"
	"strings"
	"time"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/slug"
)

// ErrNoLink is returned when a resource has no target for the requested action
var ErrNoLink = errors.New("resource has no link")

// ResourceInput carries the editable fields of a resource. IsFree defaults to
// true for new resources when omitted.
type ResourceInput struct {
	Title           string               `json:"title" form:"title"`
	Slug            string               `json:"slug" form:"slug"`
	Description     string               `json:"description" form:"description"`
	Category        string               `json:"category" form:"category"`
	Topics          []string             `json:"topics" form:"-"`
	Status          models.ContentStatus `json:"status" form:"status"`
	IsFeatured      bool                 `json:"is_featured" form:"is_featured"`
	IsFree          *bool                `json:"is_free" form:"-"`
	DownloadURL     string               `json:"download_url" form:"download_url"`
	WebsiteURL      string               `json:"website_url" form:"website_url"`
	PreviewURL      string               `json:"preview_url" form:"preview_url"`
	ApplyURL        string               `json:"apply_url" form:"apply_url"`
	RegistrationURL string               `json:"registration_url" form:"registration_url"`
	ImageURL        string               `json:"image_url" form:"image_url"`
	PublishedAt     *time.Time           `json:"published_at" form:"-"`
}

func (in ResourceInput) status() models.ContentStatus {
	if in.Status == "" {
		return models.StatusDraft
	}
	return in.Status
}

func (in ResourceInput) applyTo(r *models.Resource) {
	r.Title = strings.TrimSpace(in.Title)
	r.Slug = slug.Normalize(in.Slug, in.Title)
	r.Description = in.Description
	r.Category = strings.TrimSpace(in.Category)
	r.Topics = cleanList(in.Topics)
	r.IsFeatured = in.IsFeatured
	if in.IsFree != nil {
		r.IsFree = *in.IsFree
	}
	r.DownloadURL = optional(in.DownloadURL)
	r.WebsiteURL = optional(in.WebsiteURL)
	r.PreviewURL = optional(in.PreviewURL)
	r.ApplyURL = optional(in.ApplyURL)
	r.RegistrationURL = optional(in.RegistrationURL)
	r.ImageURL = optional(in.ImageURL)
}

// CreateResource validates and inserts a new resource
func (s *Service) CreateResource(in ResourceInput) (*models.Resource, error) {
	now := s.now()
	resource := &models.Resource{IsFree: true}
	in.applyTo(resource)

	publishedAt, err := resolvePublishedAt("", in.status(), nil, in.PublishedAt, now)
	if err != nil {
		return nil, err
	}
	resource.Status = in.status()
	resource.PublishedAt = publishedAt

	if err := resource.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	exists, err := s.resources.SlugExists(resource.Slug)
	if err != nil {
		return nil, translate("check resource slug", err)
	}
	if exists {
		return nil, ErrDuplicateSlug
	}

	if err := s.resources.Create(resource); err != nil {
		return nil, translate("create resource", err)
	}
	return resource, nil
}

// UpdateResource replaces the editable fields of a resource. Counters and
// creation time are preserved.
func (s *Service) UpdateResource(id uint, in ResourceInput) (*models.Resource, error) {
	now := s.now()
	resource, err := s.resources.GetByID(id)
	if err != nil {
		return nil, translate("load resource", err)
	}

	publishedAt, err := resolvePublishedAt(resource.Status, in.status(), resource.PublishedAt, in.PublishedAt, now)
	if err != nil {
		return nil, err
	}

	oldSlug := resource.Slug
	in.applyTo(resource)
	resource.Status = in.status()
	resource.PublishedAt = publishedAt

	if err := resource.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	if resource.Slug != oldSlug {
		exists, err := s.resources.SlugExistsExceptID(resource.Slug, resource.ID)
		if err != nil {
			return nil, translate("check resource slug", err)
		}
		if exists {
			return nil, ErrDuplicateSlug
		}
	}

	if err := s.resources.Update(resource); err != nil {
		return nil, translate("update resource", err)
	}
	return resource, nil
}

// DeleteResource removes a resource permanently
func (s *Service) DeleteResource(id uint) error {
	n, err := s.resources.Delete(id)
	if err != nil {
		return translate("delete resource", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementResourceViews adds one view and returns the new count
func (s *Service) IncrementResourceViews(id uint) (int64, error) {
	views, err := s.resources.IncrementViews(id)
	if err != nil {
		return 0, translate("increment resource views", err)
	}
	return views, nil
}

// IncrementResourceDownloads adds one download and returns the new count
func (s *Service) IncrementResourceDownloads(id uint) (int64, error) {
	downloads, err := s.resources.IncrementDownloads(id)
	if err != nil {
		return 0, translate("increment resource downloads", err)
	}
	return downloads, nil
}

// GetResource loads any resource for the admin panel
func (s *Service) GetResource(id uint) (*models.Resource, error) {
	resource, err := s.resources.GetByID(id)
	if err != nil {
		return nil, translate("load resource", err)
	}
	return resource, nil
}

// ListResources returns every resource for the admin panel
func (s *Service) ListResources() ([]models.Resource, error) {
	resources, err := s.resources.GetAll()
	if err != nil {
		return nil, translate("list resources", err)
	}
	return resources, nil
}

// GetVisibleResource loads a resource the public may see
func (s *Service) GetVisibleResource(id uint) (*models.Resource, error) {
	resource, err := s.resources.GetVisibleByID(id, s.now())
	if err != nil {
		return nil, translate("load resource", err)
	}
	return resource, nil
}

// ListVisibleResources returns the public library, optionally filtered by
// category
func (s *Service) ListVisibleResources(category string) ([]models.Resource, error) {
	resources, err := s.resources.GetVisible(s.now(), repository.ListOptions{Category: strings.TrimSpace(category)})
	if err != nil {
		return nil, translate("list resources", err)
	}
	return resources, nil
}

// VisitResource counts a view of a public resource and returns the URL to
// send the visitor to
func (s *Service) VisitResource(id uint) (string, error) {
	resource, err := s.GetVisibleResource(id)
	if err != nil {
		return "", err
	}
	target := resource.PrimaryURL()
	if target == "" {
		return "", ErrNoLink
	}
	if _, err := s.IncrementResourceViews(id); err != nil {
		return "", err
	}
	return target, nil
}

// DownloadResource counts a download of a public resource and returns the
// download URL
func (s *Service) DownloadResource(id uint) (string, int64, error) {
	resource, err := s.GetVisibleResource(id)
	if err != nil {
		return "", 0, err
	}
	if resource.DownloadURL == nil || *resource.DownloadURL == "" {
		return "", 0, ErrNoLink
	}
	downloads, err := s.IncrementResourceDownloads(id)
	if err != nil {
		return "", 0, err
	}
	return *resource.DownloadURL, downloads, nil
}
