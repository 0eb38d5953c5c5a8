package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionModel struct {
	ID          string    `gorm:"column:id_transaction;type:varchar(255);primaryKey" json:"id_transaction"`
	UserID      string    `gorm:"column:id_utilisateur;type:varchar(255);not null;index" json:"id_utilisateur"`
	BienID      string    `gorm:"column:id_bien;type:varchar(255);not null;index" json:"id_bien"`
	Amount      int       `gorm:"column:montant;not null" json:"montant"`
	Type        string    `gorm:"column:type_transaction;type:varchar(50);not null" json:"type_transaction"`
	Reference   string    `gorm:"column:reference_campay;type:varchar(100);not null;uniqueIndex" json:"reference_campay"`
	Status      string    `gorm:"column:statut;type:varchar(20);default:'en_attente'" json:"statut"`
	Description string    `gorm:"column:description;type:varchar(500)" json:"description"`
	CreatedAt   time.Time `gorm:"column:date_transaction" json:"date_transaction"`
}

func (TransactionModel) TableName() string {
	return "transaction"
}

func (m *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
