package http

import (
	"errors"
	"math"
	"net/http"
	"time"

	"immo-media/internal/entity"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ImageData struct {
	ID         string    `json:"id_image"`
	BienID     string    `json:"id_bien"`
	URL        string    `json:"url"`
	PublicID   string    `json:"public_id"`
	Type       string    `json:"type"`
	Bytes      int64     `json:"bytes"`
	DateUpload time.Time `json:"date_upload"`
}

type VideoData struct {
	ImageData
	SizeMB float64 `json:"taille_mb"`
}

type MediaListItem struct {
	ID         string    `json:"id_image"`
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	DateUpload time.Time `json:"date_upload"`
}

type PaymentData struct {
	ID        string `json:"id_transaction"`
	Reference string `json:"reference_campay"`
	Status    string `json:"statut"`
	Amount    int    `json:"montant"`
	Phone     string `json:"telephone"`
}

func toImageData(res *entity.UploadResult) ImageData {
	return ImageData{
		ID:         res.Media.ID,
		BienID:     res.Media.BienID,
		URL:        res.Object.URL,
		PublicID:   res.Object.ExternalID,
		Type:       string(res.Media.Kind),
		Bytes:      res.Object.Bytes,
		DateUpload: res.Media.CreatedAt,
	}
}

func toMediaList(media []*entity.Media) []MediaListItem {
	items := make([]MediaListItem, len(media))
	for i, m := range media {
		items[i] = MediaListItem{
			ID:         m.ID,
			URL:        m.URL,
			Type:       string(m.Kind),
			DateUpload: m.CreatedAt,
		}
	}
	return items
}

func sizeMB(bytes int64) float64 {
	return math.Round(float64(bytes)/(1024*1024)*100) / 100
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope. Internal errors keep their raw message.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorResponse{Detail: err.Error()})
}
