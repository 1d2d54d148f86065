package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkdown(t *testing.T) {
	in := "# Title\n\nSome **bold** and [a link](https://example.com).\n\n- item one\n> quoted"
	assert.Equal(t, "Title Some bold and a link. item one quoted", StripMarkdown(in))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short text", Excerpt("short text", 50))

	long := strings.Repeat("word ", 40)
	got := Excerpt(long, 30)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), 33)
	assert.False(t, strings.Contains(got, "wo..."))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 1, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("a few words"))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("w ", 201)))
}

func TestFormatParagraphs(t *testing.T) {
	got := FormatParagraphs("first <b>\nline\n\n\nsecond")
	assert.Equal(t,
		`<p class="mb-4 text-base-content leading-relaxed">first &lt;b&gt;<br>line</p>`+
			`<p class="mb-4 text-base-content leading-relaxed">second</p>`,
		got)
	assert.Empty(t, FormatParagraphs("   "))
}

func TestGetGravatarURL(t *testing.T) {
	url := GetGravatarURL("  Someone@Example.com ", 0)
	assert.Equal(t, GetGravatarURL("someone@example.com", 200), url)
	assert.Contains(t, url, "s=200")
	assert.Contains(t, url, "d=identicon")
}
