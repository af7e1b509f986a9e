package handler

import (
	"github.com/gofiber/fiber/v2"

	"vetapi/internal/model"
	"vetapi/internal/storage"
)

// DownloadUpload streams a stored object by key. The key is the full storage
// path, so the route must use a wildcard segment.
func DownloadUpload(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("*")
		if key == "" {
			return writeError(c, fiber.StatusBadRequest, "KEY_REQUIRED", "object key is required")
		}
		rc, info, err := store.Get(c.UserContext(), key)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "object not found")
		}
		name := info.Metadata["original-filename"]
		if name == "" {
			name = key
		}
		return sendFileRef(c, rc, model.FileRef{
			FileName:    name,
			ContentType: info.ContentType,
			Size:        info.Size,
		})
	}
}
