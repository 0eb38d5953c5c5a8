package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImageModel struct {
	ID        string    `gorm:"column:id_image;type:varchar(255);primaryKey" json:"id_image"`
	BienID    string    `gorm:"column:id_bien;type:varchar(255);not null;index" json:"id_bien"`
	URL       string    `gorm:"column:url;type:varchar(500);not null" json:"url"`
	Type      string    `gorm:"column:type;type:varchar(10);not null;default:'image'" json:"type"`
	CreatedAt time.Time `gorm:"column:date_upload" json:"date_upload"`
}

func (ImageModel) TableName() string {
	return "image"
}

func (m *ImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
