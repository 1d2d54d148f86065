package content

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/Folio/app/models"
)

func TestResolvePublishedAt(t *testing.T) {
	now := baseTime
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name      string
		current   models.ContentStatus
		next      models.ContentStatus
		currentAt *time.Time
		requested *time.Time
		want      *time.Time
		wantErr   error
	}{
		{"new draft", "", models.StatusDraft, nil, nil, nil, nil},
		{"new published", "", models.StatusPublished, nil, nil, &now, nil},
		{"new scheduled", "", models.StatusScheduled, nil, &future, &future, nil},
		{"draft to published", models.StatusDraft, models.StatusPublished, nil, nil, &now, nil},
		{"republish keeps past time", models.StatusDraft, models.StatusPublished, &past, nil, &past, nil},
		{"published re-save", models.StatusPublished, models.StatusPublished, &past, nil, &past, nil},
		{"published to draft keeps time", models.StatusPublished, models.StatusDraft, &past, nil, &past, nil},
		{"scheduled to published", models.StatusScheduled, models.StatusPublished, &future, nil, &now, nil},
		{"scheduled to draft", models.StatusScheduled, models.StatusDraft, &future, nil, &future, nil},
		{"published to scheduled", models.StatusPublished, models.StatusScheduled, &past, &future, nil, ErrInvalidTransition},
		{"schedule in the past", models.StatusDraft, models.StatusScheduled, nil, &past, nil, ErrInvalidSchedule},
		{"schedule exactly now", models.StatusDraft, models.StatusScheduled, nil, &now, nil, ErrInvalidSchedule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePublishedAt(tt.current, tt.next, tt.currentAt, tt.requested, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "want %s got %s", tt.want, got)
		})
	}
}

func TestResolvePublishedAt_UnknownStatus(t *testing.T) {
	_, err := resolvePublishedAt(models.StatusDraft, "archived", nil, nil, baseTime)
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
}
