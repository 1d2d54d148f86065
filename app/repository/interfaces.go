package repository

import (
	"time"

	"github.com/ManuelReschke/Folio/app/models"
	"gorm.io/gorm"
)

// ListOptions filters and paginates public listings. Zero values mean "no filter".
type ListOptions struct {
	Category     string
	FeaturedOnly bool
	ExcludeID    uint
	Offset       int
	Limit        int
}

// PostRepository defines the interface for post-related database operations
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetBySlug(slug string) (*models.Post, error)
	GetVisibleBySlug(slug string, now time.Time) (*models.Post, error)
	GetAll() ([]models.Post, error)
	GetVisible(now time.Time, opts ListOptions) ([]models.Post, error)
	CountVisible(now time.Time, opts ListOptions) (int64, error)
	GetRecent(limit int) ([]models.Post, error)
	GetCategories(now time.Time) ([]string, error)
	Update(post *models.Post) error
	Delete(id uint) (int64, error)
	Count() (int64, error)
	CountByStatus(status models.ContentStatus) (int64, error)
	SumViews() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
	IncrementViews(id uint) (int64, error)
	PromoteDue(now time.Time) (int64, error)
}

// ResourceRepository defines the interface for resource-related database operations
type ResourceRepository interface {
	Create(resource *models.Resource) error
	GetByID(id uint) (*models.Resource, error)
	GetBySlug(slug string) (*models.Resource, error)
	GetVisibleByID(id uint, now time.Time) (*models.Resource, error)
	GetAll() ([]models.Resource, error)
	GetVisible(now time.Time, opts ListOptions) ([]models.Resource, error)
	CountVisible(now time.Time) (int64, error)
	Update(resource *models.Resource) error
	Delete(id uint) (int64, error)
	Count() (int64, error)
	CountByStatus(status models.ContentStatus) (int64, error)
	SumDownloads() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
	IncrementViews(id uint) (int64, error)
	IncrementDownloads(id uint) (int64, error)
	PromoteDue(now time.Time) (int64, error)
}

// SubscriberRepository defines the interface for newsletter subscriber operations
type SubscriberRepository interface {
	Create(subscriber *models.Subscriber) error
	GetByID(id uint) (*models.Subscriber, error)
	GetByEmail(email string) (*models.Subscriber, error)
	List(offset, limit int) ([]models.Subscriber, error)
	SetActive(id uint, active bool) error
	Count() (int64, error)
	CountActive() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Post       PostRepository
	Resource   ResourceRepository
	Subscriber SubscriberRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Post:       NewPostRepository(db),
		Resource:   NewResourceRepository(db),
		Subscriber: NewSubscriberRepository(db),
	}
}
