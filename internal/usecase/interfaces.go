package usecase

import (
	"context"
	"encoding/json"

	"immo-media/internal/entity"
)

// MediaStore is the remote object store holding uploaded files.
type MediaStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (*entity.StoredObject, error)
	Delete(ctx context.Context, key string) error
}

// PaymentProvider is the mobile money collection API.
type PaymentProvider interface {
	Collect(ctx context.Context, req entity.CollectRequest) (*entity.CollectResult, error)
	CheckStatus(ctx context.Context, reference string) (json.RawMessage, error)
}

// EventPublisher is satisfied by *queue.Client.
type EventPublisher interface {
	Publish(routingKey string, event map[string]interface{}) error
}
