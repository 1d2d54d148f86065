package models

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ContactMessage is a submission of the public contact form. It is mailed, not stored.
type ContactMessage struct {
	FirstName string `json:"firstName" form:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" form:"lastName" validate:"required,max=100"`
	Email     string `json:"email" form:"email" validate:"required,email,max=255"`
	Subject   string `json:"subject" form:"subject" validate:"required,max=200"`
	Message   string `json:"message" form:"message" validate:"required,max=5000"`
}

// Normalize trims surrounding whitespace from every field
func (m *ContactMessage) Normalize() {
	m.FirstName = strings.TrimSpace(m.FirstName)
	m.LastName = strings.TrimSpace(m.LastName)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)
}

func (m *ContactMessage) Validate() error {
	v := validator.New()
	return v.Struct(m)
}

// FullName joins first and last name
func (m *ContactMessage) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}
