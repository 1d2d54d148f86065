package slug

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
)

// Alphabet for random object names (62 characters: 0-9, a-z, A-Z)
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9 -]`)
	whitespace   = regexp.MustCompile(`\s+`)
	hyphens      = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a url-safe identifier: lower-case, only
// [a-z0-9-], no repeated and no leading or trailing hyphens.
// Non-ASCII letters are dropped, so a title without any ASCII letter or
// digit yields an empty slug.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = invalidChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Normalize returns the slug to store for an entity: the editor supplied
// value run through Slugify, or Slugify(title) when nothing usable was given.
func Normalize(supplied, title string) string {
	if s := Slugify(supplied); s != "" {
		return s
	}
	return Slugify(title)
}

// GenerateSecureSlug creates a cryptographically secure random Base62 slug.
func GenerateSecureSlug(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid slug length: %d", length)
	}

	// Rejection sampling to avoid modulo bias.
	// 248 is the largest multiple of 62 below 256.
	const maxRandomByte = 248

	out := make([]byte, length)
	buf := make([]byte, length*2)
	written := 0

	for written < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to read secure random bytes: %w", err)
		}

		for _, b := range buf {
			if b >= maxRandomByte {
				continue
			}
			out[written] = alphabet[int(b)%len(alphabet)]
			written++
			if written == length {
				break
			}
		}
	}

	return string(out), nil
}
