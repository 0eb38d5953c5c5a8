package persistent

import (
	"context"

	"immo-media/internal/entity"
	"immo-media/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	GetByReference(ctx context.Context, reference string) (*entity.Transaction, error)
	// UpdateStatus applies status to the transaction identified by reference.
	// It reports whether the stored row actually changed.
	UpdateStatus(ctx context.Context, reference string, status entity.TransactionStatus) (*entity.Transaction, bool, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := ToTransactionModel(transaction)
	if err := r.db.WithContext(ctx).Create(transactionModel).Error; err != nil {
		return translateError(err)
	}
	*transaction = *ToTransactionEntity(transactionModel)
	return nil
}

func (r *transactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	if err := r.db.WithContext(ctx).Where("reference_campay = ?", reference).First(&transactionModel).Error; err != nil {
		return nil, translateError(err)
	}
	return ToTransactionEntity(&transactionModel), nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, reference string, status entity.TransactionStatus) (*entity.Transaction, bool, error) {
	var (
		out     *entity.Transaction
		changed bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactionModel model.TransactionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("reference_campay = ?", reference).
			First(&transactionModel).Error; err != nil {
			return err
		}

		current := ToTransactionEntity(&transactionModel)
		ok, err := current.TransitionTo(status)
		if err != nil {
			return err
		}
		if !ok {
			out = current
			return nil
		}

		if err := tx.Model(&transactionModel).Update("statut", string(status)).Error; err != nil {
			return err
		}
		current.Status = status
		out = current
		changed = true
		return nil
	})
	if err != nil {
		return nil, false, translateError(err)
	}

	return out, changed, nil
}
