package content

import (
	"strings"
	"time"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/app/repository"
	"github.com/ManuelReschke/Folio/internal/pkg/slug"
)

// PostInput carries the editable fields of a post from a form or the API.
// An empty Slug is derived from the Title; PublishedAt is only read for the
// scheduled status.
type PostInput struct {
	Title       string               `json:"title" form:"title"`
	Slug        string               `json:"slug" form:"slug"`
	Content     string               `json:"content" form:"content"`
	Excerpt     string               `json:"excerpt" form:"excerpt"`
	Category    string               `json:"category" form:"category"`
	Tags        []string             `json:"tags" form:"-"`
	Status      models.ContentStatus `json:"status" form:"status"`
	IsFeatured  bool                 `json:"is_featured" form:"is_featured"`
	CoverImage  string               `json:"cover_image" form:"cover_image"`
	PublishedAt *time.Time           `json:"published_at" form:"-"`
}

func (in PostInput) status() models.ContentStatus {
	if in.Status == "" {
		return models.StatusDraft
	}
	return in.Status
}

func (in PostInput) applyTo(post *models.Post) {
	post.Title = strings.TrimSpace(in.Title)
	post.Slug = slug.Normalize(in.Slug, in.Title)
	post.Content = in.Content
	post.Excerpt = optional(in.Excerpt)
	post.Category = optional(in.Category)
	post.Tags = cleanList(in.Tags)
	post.IsFeatured = in.IsFeatured
	post.CoverImage = optional(in.CoverImage)
}

// CreatePost validates and inserts a new post
func (s *Service) CreatePost(in PostInput) (*models.Post, error) {
	now := s.now()
	post := &models.Post{}
	in.applyTo(post)

	publishedAt, err := resolvePublishedAt("", in.status(), nil, in.PublishedAt, now)
	if err != nil {
		return nil, err
	}
	post.Status = in.status()
	post.PublishedAt = publishedAt

	if err := post.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	exists, err := s.posts.SlugExists(post.Slug)
	if err != nil {
		return nil, translate("check post slug", err)
	}
	if exists {
		return nil, ErrDuplicateSlug
	}

	if err := s.posts.Create(post); err != nil {
		return nil, translate("create post", err)
	}
	return post, nil
}

// UpdatePost replaces the editable fields of a post. Views, creation time and
// author are preserved.
func (s *Service) UpdatePost(id uint, in PostInput) (*models.Post, error) {
	now := s.now()
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, translate("load post", err)
	}

	publishedAt, err := resolvePublishedAt(post.Status, in.status(), post.PublishedAt, in.PublishedAt, now)
	if err != nil {
		return nil, err
	}

	oldSlug := post.Slug
	in.applyTo(post)
	post.Status = in.status()
	post.PublishedAt = publishedAt

	if err := post.Validate(); err != nil {
		return nil, &ValidationError{Err: err}
	}

	if post.Slug != oldSlug {
		exists, err := s.posts.SlugExistsExceptID(post.Slug, post.ID)
		if err != nil {
			return nil, translate("check post slug", err)
		}
		if exists {
			return nil, ErrDuplicateSlug
		}
	}

	if err := s.posts.Update(post); err != nil {
		return nil, translate("update post", err)
	}
	return post, nil
}

// DeletePost removes a post permanently
func (s *Service) DeletePost(id uint) error {
	n, err := s.posts.Delete(id)
	if err != nil {
		return translate("delete post", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementPostViews adds one view and returns the new count
func (s *Service) IncrementPostViews(id uint) (int64, error) {
	views, err := s.posts.IncrementViews(id)
	if err != nil {
		return 0, translate("increment post views", err)
	}
	return views, nil
}

// GetPost loads any post for the admin panel
func (s *Service) GetPost(id uint) (*models.Post, error) {
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, translate("load post", err)
	}
	return post, nil
}

// ListPosts returns every post for the admin panel
func (s *Service) ListPosts() ([]models.Post, error) {
	posts, err := s.posts.GetAll()
	if err != nil {
		return nil, translate("list posts", err)
	}
	return posts, nil
}

// GetVisiblePost loads a post the public may see
func (s *Service) GetVisiblePost(postSlug string) (*models.Post, error) {
	post, err := s.posts.GetVisibleBySlug(postSlug, s.now())
	if err != nil {
		return nil, translate("load post", err)
	}
	return post, nil
}

// ListVisiblePosts returns one page of public posts, optionally filtered by
// category
func (s *Service) ListVisiblePosts(category string, page, perPage int) (Page[models.Post], error) {
	page, perPage = normalizePage(page, perPage)
	now := s.now()
	opts := repository.ListOptions{
		Category: strings.TrimSpace(category),
		Offset:   (page - 1) * perPage,
		Limit:    perPage,
	}

	total, err := s.posts.CountVisible(now, opts)
	if err != nil {
		return Page[models.Post]{}, translate("count posts", err)
	}
	items, err := s.posts.GetVisible(now, opts)
	if err != nil {
		return Page[models.Post]{}, translate("list posts", err)
	}
	return Page[models.Post]{Items: items, Total: total, Page: page, PerPage: perPage}, nil
}

// FeaturedPosts returns up to limit featured public posts
func (s *Service) FeaturedPosts(limit int) ([]models.Post, error) {
	posts, err := s.posts.GetVisible(s.now(), repository.ListOptions{FeaturedOnly: true, Limit: limit})
	if err != nil {
		return nil, translate("list featured posts", err)
	}
	return posts, nil
}

// RelatedPosts returns up to limit public posts sharing the category of post
func (s *Service) RelatedPosts(post *models.Post, limit int) ([]models.Post, error) {
	if post.Category == nil || *post.Category == "" {
		return []models.Post{}, nil
	}
	posts, err := s.posts.GetVisible(s.now(), repository.ListOptions{
		Category:  *post.Category,
		ExcludeID: post.ID,
		Limit:     limit,
	})
	if err != nil {
		return nil, translate("list related posts", err)
	}
	return posts, nil
}

// PostCategories lists the categories used by public posts
func (s *Service) PostCategories() ([]string, error) {
	categories, err := s.posts.GetCategories(s.now())
	if err != nil {
		return nil, translate("list categories", err)
	}
	return categories, nil
}
