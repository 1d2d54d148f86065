package imageprocessor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2/log"
)

// MaxWidth is the widest image kept as uploaded; wider images are scaled down
const MaxWidth = 1600

// JPEGQuality is used when re-encoding scaled JPEGs
const JPEGQuality = 85

// Result is an image ready for storage
type Result struct {
	Data    []byte
	Width   int
	Height  int
	Resized bool
}

// resizable lists the formats re-encoded after scaling. GIF (animation) and
// WebP (no encoder) are stored as uploaded.
var resizable = map[string]imaging.Format{
	".jpg":  imaging.JPEG,
	".jpeg": imaging.JPEG,
	".png":  imaging.PNG,
}

// Prepare scales JPEG and PNG images wider than MaxWidth down to MaxWidth,
// keeping the aspect ratio and applying the EXIF orientation. Other formats
// and small images are returned unchanged.
func Prepare(data []byte, ext string) (*Result, error) {
	ext = strings.ToLower(ext)
	format, ok := resizable[ext]
	if !ok {
		return &Result{Data: data}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= MaxWidth {
		return &Result{Data: data, Width: bounds.Dx(), Height: bounds.Dy()}, nil
	}

	resized := imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)
	if format == imaging.JPEG {
		// JPEG has no alpha channel
		resized = imaging.Overlay(imaging.New(resized.Bounds().Dx(), resized.Bounds().Dy(), color.White), resized, image.Pt(0, 0), 1.0)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	log.Infof("[ImageProcessor] Resized image from %dx%d to %dx%d",
		bounds.Dx(), bounds.Dy(), resized.Bounds().Dx(), resized.Bounds().Dy())

	return &Result{
		Data:    buf.Bytes(),
		Width:   resized.Bounds().Dx(),
		Height:  resized.Bounds().Dy(),
		Resized: true,
	}, nil
}

// ContentType returns the MIME type for an allowed image extension
func ContentType(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
