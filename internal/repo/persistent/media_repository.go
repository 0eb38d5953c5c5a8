package persistent

import (
	"context"

	"immo-media/internal/entity"
	"immo-media/internal/model"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(ctx context.Context, media *entity.Media) error
	GetByBienID(ctx context.Context, bienID string) ([]*entity.Media, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *entity.Media) error {
	imageModel := ToImageModel(media)
	if err := r.db.WithContext(ctx).Create(imageModel).Error; err != nil {
		return translateError(err)
	}
	*media = *ToMediaEntity(imageModel)
	return nil
}

// GetByBienID returns the media of a bien oldest first. No rows is not an error.
func (r *mediaRepository) GetByBienID(ctx context.Context, bienID string) ([]*entity.Media, error) {
	var imageModels []model.ImageModel
	err := r.db.WithContext(ctx).
		Where("id_bien = ?", bienID).
		Order("date_upload ASC").
		Find(&imageModels).Error
	if err != nil {
		return nil, translateError(err)
	}

	media := make([]*entity.Media, len(imageModels))
	for i := range imageModels {
		media[i] = ToMediaEntity(&imageModels[i])
	}
	return media, nil
}
