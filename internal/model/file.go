package model

import "time"

// FileRef describes a file held in object storage and embedded in a parent
// document (patient attachments, medical-record report files).
// StoragePath is the object key; the row owning the FileRef is the only
// reference to it, so deleting the owner must also delete the object.
type FileRef struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	StoragePath string    `json:"storagePath"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
	Description string    `json:"description,omitempty"`
}
