package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"vetapi/internal/model"
	"vetapi/internal/storage"
)

// FileUpload is one incoming multipart file, streamed to object storage by
// the service that owns the parent document.
type FileUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Description string
	Reader      io.Reader
}

// uploadFiles stores each upload under keyPrefix and returns the resulting
// descriptors. If any upload fails, the objects already written are deleted
// before the error is returned.
func uploadFiles(ctx context.Context, store storage.Storage, keyPrefix string, uploads []FileUpload) ([]model.FileRef, error) {
	refs := make([]model.FileRef, 0, len(uploads))
	for _, up := range uploads {
		ext := filepath.Ext(up.FileName)
		key := filepath.ToSlash(filepath.Join(keyPrefix, uuid.New().String()+ext))

		info, err := store.Put(ctx, key, up.Reader, storage.PutObjectOptions{
			Size:        up.Size,
			ContentType: up.ContentType,
			Metadata: map[string]string{
				"original-filename": up.FileName,
			},
		})
		if err != nil {
			removeFiles(ctx, store, refs)
			return nil, fmt.Errorf("upload %s: %w", up.FileName, err)
		}
		refs = append(refs, model.FileRef{
			ID:          uuid.New().String(),
			FileName:    up.FileName,
			StoragePath: info.Key,
			ContentType: info.ContentType,
			Size:        info.Size,
			UploadedAt:  time.Now().UTC(),
			Description: up.Description,
		})
	}
	return refs, nil
}

// removeFiles deletes the stored objects behind refs. Errors are ignored:
// orphaned objects are a resource leak, not a correctness violation.
func removeFiles(ctx context.Context, store storage.Storage, refs []model.FileRef) {
	for _, ref := range refs {
		_ = store.Delete(ctx, ref.StoragePath)
	}
}

// findFileRef returns the descriptor with the given id and its index, or -1.
func findFileRef(refs []model.FileRef, id string) (model.FileRef, int) {
	for i, ref := range refs {
		if ref.ID == id {
			return ref, i
		}
	}
	return model.FileRef{}, -1
}
