package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"immo-media/internal/entity"
	"immo-media/internal/repo/persistent"
	"immo-media/pkg/logger"

	"github.com/google/uuid"
)

type InitiatePaymentInput struct {
	Amount      int
	Phone       string
	Description string
	Type        string
	BienID      string
	UserID      string
}

type PaymentOptions struct {
	DefaultUserID string
	DefaultBienID string
}

type PaymentUseCase interface {
	Initiate(ctx context.Context, in InitiatePaymentInput) (*entity.Transaction, error)
	CheckStatus(ctx context.Context, reference string) (json.RawMessage, error)
}

type paymentUseCase struct {
	transactionRepo persistent.TransactionRepository
	provider        PaymentProvider
	opts            PaymentOptions
	logger          *logger.Logger
}

func NewPaymentUseCase(
	transactionRepo persistent.TransactionRepository,
	provider PaymentProvider,
	opts PaymentOptions,
	logger *logger.Logger,
) PaymentUseCase {
	return &paymentUseCase{
		transactionRepo: transactionRepo,
		provider:        provider,
		opts:            opts,
		logger:          logger,
	}
}

// newReference returns the 16 character correlation id sent as externalReference.
func newReference() string {
	return uuid.New().String()[:16]
}

func (uc *paymentUseCase) Initiate(ctx context.Context, in InitiatePaymentInput) (*entity.Transaction, error) {
	uc.logger.Info("Initiating payment of %d XAF from %s", in.Amount, in.Phone)

	reference := newReference()
	result, err := uc.provider.Collect(ctx, entity.CollectRequest{
		Amount:      in.Amount,
		Phone:       in.Phone,
		Description: in.Description,
		Reference:   reference,
	})
	if err != nil {
		uc.logger.Error("Campay collect failed for %s: %v", reference, err)
		return nil, err
	}
	uc.logger.Info("Campay accepted collect %s with reference %s (status %s)", reference, result.Reference, result.Status)

	if result.Reference != "" {
		reference = result.Reference
	}

	transaction := &entity.Transaction{
		UserID:      valueOr(in.UserID, uc.opts.DefaultUserID),
		BienID:      valueOr(in.BienID, uc.opts.DefaultBienID),
		Amount:      in.Amount,
		Type:        in.Type,
		Reference:   reference,
		Status:      entity.StatusPending,
		Description: in.Description,
	}
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		uc.logger.Error("Failed to save transaction %s: %v", reference, err)
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	uc.logger.Info("Saved transaction %s for reference %s", transaction.ID, transaction.Reference)

	return transaction, nil
}

// CheckStatus asks the provider directly. Local state is not read or written.
func (uc *paymentUseCase) CheckStatus(ctx context.Context, reference string) (json.RawMessage, error) {
	uc.logger.Info("Checking payment status for %s", reference)
	status, err := uc.provider.CheckStatus(ctx, reference)
	if err != nil {
		uc.logger.Error("Campay status check failed for %s: %v", reference, err)
		return nil, err
	}
	return status, nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
