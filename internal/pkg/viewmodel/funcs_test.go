package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuelReschke/Folio/app/models"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 1, 2025", FormatDate(ts))
	assert.Equal(t, "March 1, 2025", FormatDate(&ts))
	assert.Equal(t, "", FormatDate((*time.Time)(nil)))
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "", FormatDate("nope"))
}

func TestDateInputRoundTrip(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	s := DateInput(&ts)
	assert.Equal(t, "2025-03-01T12:30", s)

	parsed, err := ParseDateInput(s)
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.True(t, ts.Equal(*parsed))

	parsed, err = ParseDateInput("2025-03-01T12:30:15")
	require.NoError(t, err)
	assert.Equal(t, 15, parsed.Second())

	parsed, err = ParseDateInput("  ")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = ParseDateInput("yesterday")
	assert.Error(t, err)
}

func TestDateInputUsesEditorTimezone(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Europe/Berlin")
	assert.Equal(t, "Europe/Berlin", EditorLocation().String())

	// 09:00 in Berlin during winter time is 08:00 UTC
	parsed, err := ParseDateInput("2025-01-15T09:00")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2025, 1, 15, 8, 0, 0, 0, time.UTC), *parsed)
	assert.Equal(t, time.UTC, parsed.Location())

	assert.Equal(t, "2025-01-15T09:00", DateInput(parsed))
}

func TestEditorLocationFallsBackToUTC(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Mars/Olympus_Mons")
	assert.Equal(t, time.UTC, EditorLocation())
}

func TestDerefAndStatusClass(t *testing.T) {
	s := "x"
	assert.Equal(t, "x", Deref(&s))
	assert.Equal(t, "", Deref(nil))

	assert.Equal(t, "badge-success", StatusClass(models.StatusPublished))
	assert.Equal(t, "badge-info", StatusClass(models.StatusScheduled))
	assert.Equal(t, "badge-ghost", StatusClass(models.StatusDraft))
}
