package utils

import (
	"html"
	"math"
	"regexp"
	"strings"
)

const wordsPerMinute = 200

var (
	reCodeFence  = regexp.MustCompile("(?s)```.*?```")
	reImage      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	reLink       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	reHeading    = regexp.MustCompile(`(?m)^\s{0,3}#{1,6}\s*`)
	reListMarker = regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.)\s+`)
	reQuote      = regexp.MustCompile(`(?m)^\s*>\s?`)
	reEmphasis   = regexp.MustCompile("[*_`~]+")
	reBlankLines = regexp.MustCompile(`\n\s*\n`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// StripMarkdown reduces markdown source to plain text for previews
func StripMarkdown(content string) string {
	text := reCodeFence.ReplaceAllString(content, " ")
	text = reImage.ReplaceAllString(text, "$1")
	text = reLink.ReplaceAllString(text, "$1")
	text = reHeading.ReplaceAllString(text, "")
	text = reListMarker.ReplaceAllString(text, "")
	text = reQuote.ReplaceAllString(text, "")
	text = reEmphasis.ReplaceAllString(text, "")
	return strings.TrimSpace(reSpaces.ReplaceAllString(text, " "))
}

// Excerpt returns at most max runes of the plain text of content, cut at a
// word boundary and suffixed with an ellipsis when shortened
func Excerpt(content string, max int) string {
	text := StripMarkdown(content)
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}
	cut := string(runes[:max])
	if i := strings.LastIndex(cut, " "); i > max/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " .,;:") + "..."
}

// ReadingTime estimates the minutes needed to read content, at least one
func ReadingTime(content string) int {
	words := len(strings.Fields(StripMarkdown(content)))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// FormatParagraphs escapes plain text and wraps each blank-line separated
// block in a styled paragraph. Single line breaks become <br>.
func FormatParagraphs(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var b strings.Builder
	for _, block := range reBlankLines.Split(strings.TrimSpace(content), -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		escaped := html.EscapeString(block)
		b.WriteString(`<p class="mb-4 text-base-content leading-relaxed">`)
		b.WriteString(strings.ReplaceAll(escaped, "\n", "<br>"))
		b.WriteString("</p>")
	}
	return b.String()
}
