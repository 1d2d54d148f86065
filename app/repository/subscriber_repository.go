package repository

import (
	"github.com/ManuelReschke/Folio/app/models"
	"gorm.io/gorm"
)

// subscriberRepository implements the SubscriberRepository interface
type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new subscriber repository instance
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

// Create inserts a new subscriber
func (r *subscriberRepository) Create(subscriber *models.Subscriber) error {
	return r.db.Create(subscriber).Error
}

// GetByID retrieves a subscriber by its ID
func (r *subscriberRepository) GetByID(id uint) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.First(&subscriber, id).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// GetByEmail retrieves a subscriber by exact email match
func (r *subscriberRepository) GetByEmail(email string) (*models.Subscriber, error) {
	var subscriber models.Subscriber
	err := r.db.Where("email = ?", email).First(&subscriber).Error
	if err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// List retrieves subscribers newest first with pagination
func (r *subscriberRepository) List(offset, limit int) ([]models.Subscriber, error) {
	var subscribers []models.Subscriber
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&subscribers).Error
	return subscribers, err
}

// SetActive flips the is_active flag of a single row
func (r *subscriberRepository) SetActive(id uint, active bool) error {
	res := r.db.Model(&models.Subscriber{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// MySQL reports changed rows only, so an unchanged row needs a lookup
	var count int64
	if err := r.db.Model(&models.Subscriber{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total number of subscribers
func (r *subscriberRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscriber{}).Count(&count).Error
	return count, err
}

// CountActive returns the number of active subscribers
func (r *subscriberRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscriber{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
