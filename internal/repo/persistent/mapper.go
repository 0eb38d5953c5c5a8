package persistent

import (
	"immo-media/internal/entity"
	"immo-media/internal/model"
)

func ToMediaEntity(m *model.ImageModel) *entity.Media {
	if m == nil {
		return nil
	}

	kind := entity.MediaKind(m.Type)
	if kind == "" {
		kind = entity.MediaKindImage
	}

	return &entity.Media{
		ID:        m.ID,
		BienID:    m.BienID,
		URL:       m.URL,
		Kind:      kind,
		CreatedAt: m.CreatedAt,
	}
}

func ToImageModel(e *entity.Media) *model.ImageModel {
	if e == nil {
		return nil
	}

	return &model.ImageModel{
		ID:        e.ID,
		BienID:    e.BienID,
		URL:       e.URL,
		Type:      string(e.Kind),
		CreatedAt: e.CreatedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}

	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		BienID:      m.BienID,
		Amount:      m.Amount,
		Type:        m.Type,
		Reference:   m.Reference,
		Status:      entity.TransactionStatus(m.Status),
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}

	status := string(e.Status)
	if status == "" {
		status = string(entity.StatusPending)
	}

	return &model.TransactionModel{
		ID:          e.ID,
		UserID:      e.UserID,
		BienID:      e.BienID,
		Amount:      e.Amount,
		Type:        e.Type,
		Reference:   e.Reference,
		Status:      status,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}
