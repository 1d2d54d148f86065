package viewmodel

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Layout carries what layouts/main needs on every page
type Layout struct {
	Page           string
	Path           string
	FromProtected  bool
	IsError        bool
	Msg            fiber.Map
	Username       string
	IsAdmin        bool
	CSRFToken      string
	CaptchaSiteKey string
	OAuthProviders []string
	Year           int
	OGViewModel    *OpenGraph
}

// OpenGraph describes the link preview of a page
type OpenGraph struct {
	Title       string
	Description string
	Type        string
	URL         string
	Image       string
}

// NewLayout returns a layout for page with the current year filled in
func NewLayout(page string) Layout {
	return Layout{Page: page, Year: time.Now().Year()}
}
