package slug

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation is removed", "Hello, World!", "hello-world"},
		{"space runs collapse", "A   B  C", "a-b-c"},
		{"tabs are stripped not separated", "A\tB", "ab"},
		{"hyphen runs collapse", "Data -- Science", "data-science"},
		{"digits are kept", "Top 10 Tips for 2024", "top-10-tips-for-2024"},
		{"outer hyphens are trimmed", "  -Intro- ", "intro"},
		{"non ascii letters are dropped", "Über Café", "ber-caf"},
		{"only symbols", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_IsIdempotent(t *testing.T) {
	for _, title := range []string{"Hello World", "  Mixed CASE -- title ", "Top 10 Tips"} {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "custom-slug", Normalize("Custom Slug", "Ignored Title"))
	assert.Equal(t, "fallback-title", Normalize("", "Fallback Title"))
	assert.Equal(t, "fallback-title", Normalize("???", "Fallback Title"))
}

func TestGenerateSecureSlug_InvalidLength(t *testing.T) {
	t.Parallel()

	_, err := GenerateSecureSlug(0)
	assert.Error(t, err)
}

func TestGenerateSecureSlug_LengthAndAlphabet(t *testing.T) {
	t.Parallel()

	s, err := GenerateSecureSlug(13)
	require.NoError(t, err)
	assert.Len(t, s, 13)

	for i := 0; i < len(s); i++ {
		assert.NotEqual(t, -1, strings.IndexByte(alphabet, s[i]), "invalid character %q", s[i])
	}
}

func TestGenerateSecureSlug_UniqueWithinSmallBatch(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		s, err := GenerateSecureSlug(10)
		require.NoError(t, err)
		_, exists := seen[s]
		require.False(t, exists, "duplicate slug generated in small batch: %s", s)
		seen[s] = struct{}{}
	}
}
