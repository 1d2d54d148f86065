package viewmodel

import (
	"html/template"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/env"
	"github.com/ManuelReschke/Folio/internal/pkg/utils"
)

const (
	dateLayout      = "January 2, 2006"
	dateInputLayout = "2006-01-02T15:04"
)

// TemplateFuncs are registered on the html engine
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate":  FormatDate,
		"dateInput":   DateInput,
		"editorZone":  func() string { return EditorLocation().String() },
		"deref":       Deref,
		"join":        strings.Join,
		"excerpt":     utils.Excerpt,
		"readingTime": utils.ReadingTime,
		"paragraphs":  func(s string) template.HTML { return template.HTML(utils.FormatParagraphs(s)) },
		"gravatar":    utils.GetGravatarURL,
		"statusClass": StatusClass,
		"add":         func(a, b int) int { return a + b },
		"sub":         func(a, b int) int { return a - b },
	}
}

// FormatDate renders time.Time and *time.Time values for humans; nil and
// zero values become an empty string
func FormatDate(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(dateLayout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format(dateLayout)
	default:
		return ""
	}
}

// EditorLocation is the zone of the admin editors' datetime-local fields,
// taken from APP_TIMEZONE. Unknown or empty names fall back to UTC.
func EditorLocation() *time.Location {
	name := strings.TrimSpace(env.GetEnv("APP_TIMEZONE", "UTC"))
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DateInput formats a time for a datetime-local input in EditorLocation
func DateInput(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(EditorLocation()).Format(dateInputLayout)
}

// ParseDateInput is the inverse of DateInput and returns UTC. An empty value
// yields nil.
func ParseDateInput(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	loc := EditorLocation()
	t, err := time.ParseInLocation(dateInputLayout, value, loc)
	if err != nil {
		// browsers may submit seconds
		t, err = time.ParseInLocation("2006-01-02T15:04:05", value, loc)
		if err != nil {
			return nil, err
		}
	}
	t = t.UTC()
	return &t, nil
}

// Deref returns the value behind an optional string
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StatusClass maps a content status to its badge class
func StatusClass(status models.ContentStatus) string {
	switch status {
	case models.StatusPublished:
		return "badge-success"
	case models.StatusScheduled:
		return "badge-info"
	default:
		return "badge-ghost"
	}
}
