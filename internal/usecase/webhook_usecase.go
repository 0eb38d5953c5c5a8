package usecase

import (
	"context"
	"errors"

	"immo-media/internal/entity"
	"immo-media/internal/repo/persistent"
	"immo-media/pkg/logger"
)

type WebhookUseCase interface {
	// HandleCampay applies a provider callback to the matching transaction.
	// Business outcomes are reported, not returned as errors.
	HandleCampay(ctx context.Context, payload entity.WebhookPayload) (entity.WebhookOutcome, error)
}

type webhookUseCase struct {
	transactionRepo persistent.TransactionRepository
	events          EventPublisher
	logger          *logger.Logger
}

func NewWebhookUseCase(
	transactionRepo persistent.TransactionRepository,
	events EventPublisher,
	logger *logger.Logger,
) WebhookUseCase {
	return &webhookUseCase{
		transactionRepo: transactionRepo,
		events:          events,
		logger:          logger,
	}
}

func (uc *webhookUseCase) HandleCampay(ctx context.Context, payload entity.WebhookPayload) (entity.WebhookOutcome, error) {
	uc.logger.Info("Webhook received: reference=%s external_reference=%s status=%s amount=%v phone=%s",
		payload.Reference, payload.ExternalReference, payload.Status, payload.Amount, payload.PhoneNumber)

	status, ok := entity.LocalStatus(payload.Status)
	if !ok {
		uc.logger.Info("Ignoring webhook status %q for %s", payload.Status, payload.Reference)
		return entity.WebhookIgnored, nil
	}

	// the provider reference is stored when Campay returned one at collect
	// time, the local correlation id otherwise
	for _, reference := range candidateReferences(payload) {
		transaction, changed, err := uc.transactionRepo.UpdateStatus(ctx, reference, status)
		switch {
		case errors.Is(err, entity.ErrNotFound):
			continue
		case errors.Is(err, entity.ErrInvalidTransition):
			uc.logger.Warn("Rejected webhook for %s: %v", reference, err)
			return entity.WebhookRejected, nil
		case err != nil:
			uc.logger.Error("Failed to update transaction %s: %v", reference, err)
			return "", err
		}

		if !changed {
			uc.logger.Info("Transaction %s already %s", reference, transaction.Status)
			return entity.WebhookUnchanged, nil
		}

		uc.logger.Info("Transaction %s is now %s", reference, transaction.Status)
		publishEvent(uc.events, uc.logger, eventPaymentStatusChanged, map[string]interface{}{
			"id_transaction":   transaction.ID,
			"reference_campay": transaction.Reference,
			"statut":           string(transaction.Status),
			"montant":          transaction.Amount,
			"id_bien":          transaction.BienID,
			"id_utilisateur":   transaction.UserID,
		})
		return entity.WebhookUpdated, nil
	}

	uc.logger.Warn("No transaction matches webhook reference %s", payload.Reference)
	return entity.WebhookUnknownReference, nil
}

func candidateReferences(payload entity.WebhookPayload) []string {
	refs := make([]string, 0, 2)
	if payload.Reference != "" {
		refs = append(refs, payload.Reference)
	}
	if payload.ExternalReference != "" && payload.ExternalReference != payload.Reference {
		refs = append(refs, payload.ExternalReference)
	}
	return refs
}
