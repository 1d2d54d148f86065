package content

import (
	"strings"
	"time"

	"github.com/ManuelReschke/Folio/app/repository"
)

// DefaultPageSize is the number of items per public listing page
const DefaultPageSize = 9

// Service holds the publishing rules for posts and resources. All mutations
// of those tables go through it.
type Service struct {
	posts     repository.PostRepository
	resources repository.ResourceRepository
	now       func() time.Time
}

// NewService creates a content service over the given repositories
func NewService(posts repository.PostRepository, resources repository.ResourceRepository) *Service {
	return &Service{
		posts:     posts,
		resources: resources,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// NewServiceFromRepositories is a shorthand for the repository bundle
func NewServiceFromRepositories(repos *repository.Repositories) *Service {
	return NewService(repos.Post, repos.Resource)
}

// WithClock replaces the time source, used by tests and the scheduler
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Now returns the service clock
func (s *Service) Now() time.Time {
	return s.now()
}

// Page is one page of a public listing
type Page[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}

// Pages returns the number of pages, at least one
func (p Page[T]) Pages() int {
	if p.PerPage <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.PerPage) - 1) / int64(p.PerPage))
}

// HasPrev reports whether a previous page exists
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists
func (p Page[T]) HasNext() bool { return p.Page < p.Pages() }

// PromoteDue publishes every scheduled post and resource whose time has come
func (s *Service) PromoteDue() (posts int64, resources int64, err error) {
	now := s.now()
	if posts, err = s.posts.PromoteDue(now); err != nil {
		return 0, 0, translate("promote posts", err)
	}
	if resources, err = s.resources.PromoteDue(now); err != nil {
		return posts, 0, translate("promote resources", err)
	}
	return posts, resources, nil
}

// SplitList turns a comma separated form value into trimmed, non-empty items
func SplitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func cleanList(values []string) []string {
	items := []string{}
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			items = append(items, v)
		}
	}
	return items
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	return page, perPage
}
