package controllers

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/Folio/internal/pkg/imageprocessor"
	"github.com/ManuelReschke/Folio/internal/pkg/objectstore"
	"github.com/ManuelReschke/Folio/internal/pkg/upload"
)

// sniffLength is the number of bytes inspected for content type detection
const sniffLength = 512

// AdminUploadController stores editor images in the object store
type AdminUploadController struct {
	store objectstore.Store
	now   func() time.Time
}

// NewAdminUploadController creates an upload controller. A nil store
// disables uploads.
func NewAdminUploadController(store objectstore.Store) *AdminUploadController {
	return &AdminUploadController{store: store, now: time.Now}
}

func uploadError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": code, "message": message})
}

// HandleUpload accepts one image in the multipart field "file" and answers
// with its public URL
func (uc *AdminUploadController) HandleUpload(c *fiber.Ctx) error {
	if uc.store == nil {
		return uploadError(c, fiber.StatusServiceUnavailable, "storage_disabled", "Image storage is not configured")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return uploadError(c, fiber.StatusBadRequest, "no_file", "No file provided")
	}
	if err := upload.ValidateSize(fh.Size); err != nil {
		status := fiber.StatusBadRequest
		if errors.Is(err, upload.ErrTooLarge) {
			status = fiber.StatusRequestEntityTooLarge
		}
		return uploadError(c, status, "invalid_size", err.Error())
	}

	folder, err := upload.NormalizeFolder(c.FormValue("folder"))
	if err != nil {
		return uploadError(c, fiber.StatusBadRequest, "invalid_folder", err.Error())
	}

	f, err := fh.Open()
	if err != nil {
		return uploadError(c, fiber.StatusBadRequest, "unreadable_file", "Failed to read file")
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, upload.MaxFileSize+1))
	if err != nil {
		return uploadError(c, fiber.StatusBadRequest, "unreadable_file", "Failed to read file")
	}
	if err := upload.ValidateSize(int64(len(data))); err != nil {
		return uploadError(c, fiber.StatusRequestEntityTooLarge, "invalid_size", err.Error())
	}

	head := data
	if len(head) > sniffLength {
		head = head[:sniffLength]
	}
	if _, err := upload.ValidateImageBySniff(fh.Filename, head); err != nil {
		return uploadError(c, fiber.StatusUnsupportedMediaType, "unsupported_type", err.Error())
	}

	key, err := upload.ObjectKey(folder, fh.Filename, uc.now())
	if err != nil {
		log.Errorf("[Upload] Failed to build object key: %v", err)
		return uploadError(c, fiber.StatusInternalServerError, "internal", "Upload failed")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))

	prepared, err := imageprocessor.Prepare(data, ext)
	if err != nil {
		return uploadError(c, fiber.StatusUnprocessableEntity, "invalid_image", "The image could not be decoded")
	}

	url, err := uc.store.Put(c.UserContext(), key, prepared.Data, imageprocessor.ContentType(ext))
	if err != nil {
		log.Errorf("[Upload] Failed to store %s: %v", key, err)
		return uploadError(c, fiber.StatusBadGateway, "storage_error", "Upload failed")
	}

	log.Infof("[Upload] Stored %s (%d bytes, resized=%t)", key, len(prepared.Data), prepared.Resized)
	return c.JSON(fiber.Map{"url": url})
}

// HandleDelete removes an object previously returned by HandleUpload
func (uc *AdminUploadController) HandleDelete(c *fiber.Ctx) error {
	if uc.store == nil {
		return uploadError(c, fiber.StatusServiceUnavailable, "storage_disabled", "Image storage is not configured")
	}

	key, ok := uc.store.KeyFromURL(c.FormValue("url"))
	if !ok {
		return uploadError(c, fiber.StatusBadRequest, "invalid_url", "URL does not point to the image storage")
	}
	if err := uc.store.Delete(c.UserContext(), key); err != nil {
		log.Errorf("[Upload] Failed to delete %s: %v", key, err)
		return uploadError(c, fiber.StatusBadGateway, "storage_error", "Delete failed")
	}
	return c.JSON(fiber.Map{"deleted": true})
}
