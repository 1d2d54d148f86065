package repository

import (
	"time"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/metrics/counter"
	"gorm.io/gorm"
)

// resourceRepository implements the ResourceRepository interface
type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository instance
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

// Create creates a new resource in the database
func (r *resourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

// GetByID retrieves a resource by its ID
func (r *resourceRepository) GetByID(id uint) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.First(&resource, id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetBySlug retrieves a resource by its slug
func (r *resourceRepository) GetBySlug(slug string) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.Where("slug = ?", slug).First(&resource).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetVisibleByID retrieves a resource by ID only if the public may see it
func (r *resourceRepository) GetVisibleByID(id uint, now time.Time) (*models.Resource, error) {
	var resource models.Resource
	err := r.db.Scopes(models.VisibleAt(now)).Where("id = ?", id).First(&resource).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetAll retrieves all resources, newest first
func (r *resourceRepository) GetAll() ([]models.Resource, error) {
	var resources []models.Resource
	err := r.db.Order("created_at DESC").Find(&resources).Error
	return resources, err
}

// GetVisible retrieves public resources, featured first and then newest first
func (r *resourceRepository) GetVisible(now time.Time, opts ListOptions) ([]models.Resource, error) {
	var resources []models.Resource
	q := r.db.Scopes(models.VisibleAt(now))
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	q = q.Order("is_featured DESC").Order("created_at DESC")
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	err := q.Find(&resources).Error
	return resources, err
}

// CountVisible counts the resources the public may see
func (r *resourceRepository) CountVisible(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Resource{}).Scopes(models.VisibleAt(now)).Count(&count).Error
	return count, err
}

// Update writes all editable columns of an existing resource. Counters are
// left alone so concurrent increments are not overwritten.
func (r *resourceRepository) Update(resource *models.Resource) error {
	return r.db.Model(resource).Select("*").Omit("id", "views", "downloads", "created_at").Updates(resource).Error
}

// Delete permanently removes a resource and returns the number of deleted rows
func (r *resourceRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Resource{}, id)
	return res.RowsAffected, res.Error
}

// Count returns the total number of resources
func (r *resourceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Resource{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of resources in the given status
func (r *resourceRepository) CountByStatus(status models.ContentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Resource{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// SumDownloads returns the total downloads over all resources
func (r *resourceRepository) SumDownloads() (int64, error) {
	var total int64
	err := r.db.Model(&models.Resource{}).Select("COALESCE(SUM(downloads), 0)").Scan(&total).Error
	return total, err
}

// SlugExists checks if a slug already exists
func (r *resourceRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Resource{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *resourceRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Resource{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

// IncrementViews adds one view and returns the new total
func (r *resourceRepository) IncrementViews(id uint) (int64, error) {
	return counter.Increment(r.db, &models.Resource{}, counter.ColumnViews, id)
}

// IncrementDownloads adds one download and returns the new total
func (r *resourceRepository) IncrementDownloads(id uint) (int64, error) {
	return counter.Increment(r.db, &models.Resource{}, counter.ColumnDownloads, id)
}

// PromoteDue marks scheduled resources whose publish time has passed as published
func (r *resourceRepository) PromoteDue(now time.Time) (int64, error) {
	res := r.db.Model(&models.Resource{}).
		Where("status = ? AND published_at IS NOT NULL AND published_at <= ?", models.StatusScheduled, now).
		Update("status", models.StatusPublished)
	return res.RowsAffected, res.Error
}
