package upload

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ManuelReschke/Folio/internal/pkg/constants"
	"github.com/ManuelReschke/Folio/internal/pkg/slug"
)

// MaxFileSize is the largest accepted image (5 MB)
const MaxFileSize = 5 * 1024 * 1024

// randomNameLength is the length of the random part of an object name
const randomNameLength = 13

var (
	ErrTooLarge        = errors.New("File size must be less than 5MB")
	ErrUnsupportedType = errors.New("Only JPG, JPEG, PNG, WEBP and GIF images are supported")
	ErrInvalidFolder   = errors.New("Unknown upload folder")
)

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	// Note: SVG is intentionally excluded due to XSS risk without sanitization
}

var allowedMime = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedFolders = map[string]bool{
	constants.UploadFolderDefault:   true,
	constants.UploadFolderCovers:    true,
	constants.UploadFolderResources: true,
}

// ValidateSize rejects empty and oversized files
func ValidateSize(size int64) error {
	if size <= 0 {
		return errors.New("File is empty")
	}
	if size > MaxFileSize {
		return ErrTooLarge
	}
	return nil
}

// ValidateImageBySniff checks the provided filename (extension) and the first bytes (head)
// against a whitelist of image types. Returns detected mime or an error.
func ValidateImageBySniff(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", ErrUnsupportedType
	}

	detected := http.DetectContentType(head)

	// Block obvious scriptable types regardless of extension
	if strings.HasPrefix(detected, "text/html") || strings.HasPrefix(detected, "application/xhtml") {
		return "", errors.New("Invalid file type: HTML content is not allowed")
	}
	if strings.HasPrefix(detected, "text/xml") || strings.HasPrefix(detected, "application/xml") || detected == "image/svg+xml" {
		return "", errors.New("SVG/XML files are not supported")
	}

	if allowedMime[detected] {
		return detected, nil
	}
	return "", ErrUnsupportedType
}

// NormalizeFolder maps the requested folder onto an allowed one
func NormalizeFolder(folder string) (string, error) {
	folder = strings.Trim(strings.TrimSpace(folder), "/")
	if folder == "" {
		return constants.UploadFolderDefault, nil
	}
	if !allowedFolders[folder] {
		return "", ErrInvalidFolder
	}
	return folder, nil
}

// ObjectKey builds "folder/<unix-millis>_<random>.<ext>" for an upload
func ObjectKey(folder, filename string, now time.Time) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	random, err := slug.GenerateSecureSlug(randomNameLength)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%d_%s%s", folder, now.UnixMilli(), random, ext), nil
}
