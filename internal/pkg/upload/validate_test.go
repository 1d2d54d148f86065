package upload

import (
	"bytes"
	"image"
	"image/png"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngHead(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestValidateImageBySniff(t *testing.T) {
	head := pngHead(t)

	mime, err := ValidateImageBySniff("cover.PNG", head)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	_, err = ValidateImageBySniff("cover.svg", head)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ValidateImageBySniff("cover.png", []byte("<html><script>alert(1)</script></html>"))
	assert.Error(t, err)

	_, err = ValidateImageBySniff("cover.jpg", []byte("plain text pretending"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidateSize(t *testing.T) {
	assert.NoError(t, ValidateSize(1024))
	assert.NoError(t, ValidateSize(MaxFileSize))
	assert.ErrorIs(t, ValidateSize(MaxFileSize+1), ErrTooLarge)
	assert.Error(t, ValidateSize(0))
}

func TestNormalizeFolder(t *testing.T) {
	folder, err := NormalizeFolder("")
	require.NoError(t, err)
	assert.Equal(t, "uploads", folder)

	folder, err = NormalizeFolder("/covers/")
	require.NoError(t, err)
	assert.Equal(t, "covers", folder)

	_, err = NormalizeFolder("../etc")
	assert.ErrorIs(t, err, ErrInvalidFolder)
}

func TestObjectKey(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	key, err := ObjectKey("covers", "Photo.JPG", now)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^covers/1700000000123_[0-9A-Za-z]{13}\.jpg$`), key)

	other, err := ObjectKey("covers", "Photo.JPG", now)
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}
