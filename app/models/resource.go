package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Resource categories offered in the library
const (
	CategoryLectureMaterials    = "Lecture Materials"
	CategoryFreeOnlineCourses   = "Free Online Courses"
	CategoryDataSciencePrograms = "Data Science Programs"
	CategoryMentorshipPrograms  = "Mentorship Programs"
	CategorySchoolApplications  = "School Applications"
)

// ResourceCategories is the fixed, ordered set of resource categories
var ResourceCategories = []string{
	CategoryLectureMaterials,
	CategoryFreeOnlineCourses,
	CategoryDataSciencePrograms,
	CategoryMentorshipPrograms,
	CategorySchoolApplications,
}

// IsResourceCategory reports whether category belongs to ResourceCategories
func IsResourceCategory(category string) bool {
	for _, c := range ResourceCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Resource represents a curated external link or document
type Resource struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Title           string        `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	Slug            string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required,min=1,max=255"`
	Description     string        `gorm:"type:text;not null" json:"description" validate:"required"`
	Category        string        `gorm:"type:varchar(100);index;not null" json:"category" validate:"required,resource_category"`
	Topics          []string      `gorm:"serializer:json;type:text" json:"topics" validate:"dive,max=50"`
	Status          ContentStatus `gorm:"type:varchar(20);index;not null;default:'draft'" json:"status" validate:"oneof=draft published scheduled"`
	IsFeatured      bool          `gorm:"type:tinyint(1);default:0" json:"is_featured"`
	IsFree          bool          `gorm:"type:tinyint(1);not null" json:"is_free"`
	Views           int64         `gorm:"not null;default:0" json:"views"`
	Downloads       int64         `gorm:"not null;default:0" json:"downloads"`
	DownloadURL     *string       `gorm:"type:varchar(1024)" json:"download_url" validate:"omitempty,url"`
	WebsiteURL      *string       `gorm:"type:varchar(1024)" json:"website_url" validate:"omitempty,url"`
	PreviewURL      *string       `gorm:"type:varchar(1024)" json:"preview_url" validate:"omitempty,url"`
	ApplyURL        *string       `gorm:"type:varchar(1024)" json:"apply_url" validate:"omitempty,url"`
	RegistrationURL *string       `gorm:"type:varchar(1024)" json:"registration_url" validate:"omitempty,url"`
	ImageURL        *string       `gorm:"type:varchar(1024)" json:"image_url" validate:"omitempty,url"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	PublishedAt     *time.Time    `gorm:"index" json:"published_at"`
}

// TableName specifies the table name for the Resource model
func (Resource) TableName() string {
	return "resources"
}

func (r *Resource) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("resource_category", func(fl validator.FieldLevel) bool {
		return IsResourceCategory(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.Struct(r)
}

// IsVisible reports whether the resource may be shown on the public site at now
func (r *Resource) IsVisible(now time.Time) bool {
	return IsVisibleAt(r.Status, r.PublishedAt, now)
}

// PrimaryURL returns the first configured outbound link, in the order
// website, apply, registration, preview, download.
func (r *Resource) PrimaryURL() string {
	for _, u := range []*string{r.WebsiteURL, r.ApplyURL, r.RegistrationURL, r.PreviewURL, r.DownloadURL} {
		if u != nil && *u != "" {
			return *u
		}
	}
	return ""
}
