package entity

import "time"

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Media is one stored image or video attached to a bien. Both kinds share one table.
type Media struct {
	ID        string    `json:"id_image"`
	BienID    string    `json:"id_bien"`
	URL       string    `json:"url"`
	Kind      MediaKind `json:"type"`
	CreatedAt time.Time `json:"date_upload"`
}

// StoredObject is what the remote media store reports after an upload.
type StoredObject struct {
	URL        string
	ExternalID string
	Bytes      int64
}

// UploadResult pairs the persisted record with the store metadata returned to the caller.
type UploadResult struct {
	Media  *Media
	Object *StoredObject
	// Size of the request body before any transformation.
	OriginalBytes int64
}
