package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Post represents a blog post
type Post struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title" validate:"required,min=1,max=255"`
	Slug        string        `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug" validate:"required,min=1,max=255"`
	Content     string        `gorm:"type:longtext;not null" json:"content" validate:"required"`
	Excerpt     *string       `gorm:"type:text" json:"excerpt"`
	Status      ContentStatus `gorm:"type:varchar(20);index;not null;default:'draft'" json:"status" validate:"oneof=draft published scheduled"`
	Category    *string       `gorm:"type:varchar(100);index" json:"category" validate:"omitempty,max=100"`
	Tags        []string      `gorm:"serializer:json;type:text" json:"tags" validate:"dive,max=50"`
	AuthorID    *string       `gorm:"type:varchar(64)" json:"author_id"`
	Views       int64         `gorm:"not null;default:0" json:"views"`
	IsFeatured  bool          `gorm:"type:tinyint(1);default:0" json:"is_featured"`
	CoverImage  *string       `gorm:"type:varchar(1024)" json:"cover_image" validate:"omitempty,url"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	PublishedAt *time.Time    `gorm:"index" json:"published_at"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}

func (p *Post) Validate() error {
	v := validator.New()
	return v.Struct(p)
}

// IsVisible reports whether the post may be shown on the public site at now
func (p *Post) IsVisible(now time.Time) bool {
	return IsVisibleAt(p.Status, p.PublishedAt, now)
}
