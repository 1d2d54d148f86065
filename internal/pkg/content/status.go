package content

import (
	"time"

	"github.com/ManuelReschke/Folio/app/models"
)

// resolvePublishedAt applies the transition rules for saving a record that is
// currently in state current (empty for new records) as next, and returns the
// published_at value to store.
func resolvePublishedAt(current, next models.ContentStatus, currentAt, requested *time.Time, now time.Time) (*time.Time, error) {
	if !next.IsValid() {
		return nil, invalid("unknown status %q", next)
	}
	if !current.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	switch next {
	case models.StatusPublished:
		if currentAt != nil && !currentAt.After(now) {
			return currentAt, nil
		}
		t := now
		return &t, nil
	case models.StatusScheduled:
		if requested == nil || !requested.After(now) {
			return nil, ErrInvalidSchedule
		}
		t := *requested
		return &t, nil
	default:
		return currentAt, nil
	}
}
