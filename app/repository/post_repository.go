package repository

import (
	"time"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/metrics/counter"
	"gorm.io/gorm"
)

// postRepository implements the PostRepository interface
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create creates a new post in the database
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetByID retrieves a post by its ID
func (r *postRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBySlug retrieves a post by its slug regardless of status
func (r *postRepository) GetBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetVisibleBySlug retrieves a post by slug only if the public may see it
func (r *postRepository) GetVisibleBySlug(slug string, now time.Time) (*models.Post, error) {
	var post models.Post
	err := r.db.Scopes(models.VisibleAt(now)).Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetAll retrieves all posts, newest first
func (r *postRepository) GetAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *postRepository) visibleQuery(now time.Time, opts ListOptions) *gorm.DB {
	q := r.db.Model(&models.Post{}).Scopes(models.VisibleAt(now))
	if opts.Category != "" {
		q = q.Where("category = ?", opts.Category)
	}
	if opts.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	if opts.ExcludeID != 0 {
		q = q.Where("id <> ?", opts.ExcludeID)
	}
	return q
}

// GetVisible retrieves public posts, featured first and then newest first
func (r *postRepository) GetVisible(now time.Time, opts ListOptions) ([]models.Post, error) {
	var posts []models.Post
	q := r.visibleQuery(now, opts).Order("is_featured DESC").Order("created_at DESC")
	if opts.Offset > 0 {
		q = q.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	err := q.Find(&posts).Error
	return posts, err
}

// CountVisible counts public posts matching opts (pagination is ignored)
func (r *postRepository) CountVisible(now time.Time, opts ListOptions) (int64, error) {
	var count int64
	err := r.visibleQuery(now, opts).Count(&count).Error
	return count, err
}

// GetRecent retrieves the most recently created posts regardless of status
func (r *postRepository) GetRecent(limit int) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

// GetCategories returns the distinct categories of public posts
func (r *postRepository) GetCategories(now time.Time) ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Post{}).Scopes(models.VisibleAt(now)).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().Order("category").Pluck("category", &categories).Error
	return categories, err
}

// Update writes all editable columns of an existing post. Counters are
// left alone so concurrent increments are not overwritten.
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Model(post).Select("*").Omit("id", "views", "created_at").Updates(post).Error
}

// Delete permanently removes a post and returns the number of deleted rows
func (r *postRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.Post{}, id)
	return res.RowsAffected, res.Error
}

// Count returns the total number of posts
func (r *postRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// CountByStatus returns the number of posts in the given status
func (r *postRepository) CountByStatus(status models.ContentStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// SumViews returns the total views over all posts
func (r *postRepository) SumViews() (int64, error) {
	var total int64
	err := r.db.Model(&models.Post{}).Select("COALESCE(SUM(views), 0)").Scan(&total).Error
	return total, err
}

// SlugExists checks if a slug already exists
func (r *postRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// SlugExistsExceptID checks if a slug exists excluding a specific ID
func (r *postRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

// IncrementViews adds one view and returns the new total
func (r *postRepository) IncrementViews(id uint) (int64, error) {
	return counter.Increment(r.db, &models.Post{}, counter.ColumnViews, id)
}

// PromoteDue marks scheduled posts whose publish time has passed as published
func (r *postRepository) PromoteDue(now time.Time) (int64, error) {
	res := r.db.Model(&models.Post{}).
		Where("status = ? AND published_at IS NOT NULL AND published_at <= ?", models.StatusScheduled, now).
		Update("status", models.StatusPublished)
	return res.RowsAffected, res.Error
}
