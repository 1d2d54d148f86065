package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// ContentStatus is the publication state shared by posts and resources
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusScheduled ContentStatus = "scheduled"
)

// allowedTransitions lists the target states reachable from each state.
// Re-saving in the same state is always allowed.
var allowedTransitions = map[ContentStatus][]ContentStatus{
	StatusDraft:     {StatusPublished, StatusScheduled},
	StatusPublished: {StatusDraft},
	StatusScheduled: {StatusPublished, StatusDraft},
}

// ParseContentStatus converts form/API input into a ContentStatus.
// An empty value defaults to draft.
func ParseContentStatus(value string) (ContentStatus, error) {
	switch s := ContentStatus(strings.ToLower(strings.TrimSpace(value))); s {
	case "":
		return StatusDraft, nil
	case StatusDraft, StatusPublished, StatusScheduled:
		return s, nil
	default:
		return "", fmt.Errorf("unknown status %q", value)
	}
}

// IsValid reports whether s is one of the known states
func (s ContentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether a record in state s may be saved as next
func (s ContentStatus) CanTransitionTo(next ContentStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == "" || s == next {
		return true
	}
	for _, candidate := range allowedTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// VisibleAt scopes a query to rows the public may see at the given time:
// published rows and scheduled rows whose publish time has passed.
func VisibleAt(now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? OR (status = ? AND published_at <= ?)", StatusPublished, StatusScheduled, now)
	}
}

// IsVisibleAt mirrors VisibleAt for an already loaded record
func IsVisibleAt(status ContentStatus, publishedAt *time.Time, now time.Time) bool {
	switch status {
	case StatusPublished:
		return true
	case StatusScheduled:
		return publishedAt != nil && !publishedAt.After(now)
	default:
		return false
	}
}
