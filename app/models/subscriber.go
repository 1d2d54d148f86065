package models

import (
	"time"
)

// Subscriber is a newsletter recipient. Rows are never deleted, only deactivated.
type Subscriber struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	IsActive  bool      `gorm:"type:tinyint(1);not null;default:1" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Subscriber model
func (Subscriber) TableName() string {
	return "subscribers"
}
