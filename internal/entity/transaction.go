package entity

import (
	"fmt"
	"time"
)

type TransactionStatus string

const (
	StatusPending    TransactionStatus = "en_attente"
	StatusSuccessful TransactionStatus = "reussi"
	StatusFailed     TransactionStatus = "echoue"
)

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusSuccessful || s == StatusFailed
}

type Transaction struct {
	ID          string            `json:"id_transaction"`
	UserID      string            `json:"id_utilisateur"`
	BienID      string            `json:"id_bien"`
	Amount      int               `json:"montant"`
	Type        string            `json:"type_transaction"`
	Reference   string            `json:"reference_campay"`
	Status      TransactionStatus `json:"statut"`
	Description string            `json:"description"`
	CreatedAt   time.Time         `json:"date_transaction"`
}

// TransitionTo reports whether moving to next changes anything.
// Repeating the current status is a no-op; a terminal status never changes.
func (t *Transaction) TransitionTo(next TransactionStatus) (bool, error) {
	if t.Status == next {
		return false, nil
	}
	if t.Status.IsTerminal() {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, next)
	}
	return true, nil
}

// CollectRequest is a mobile-money collection sent to the payment provider.
type CollectRequest struct {
	Amount      int
	Phone       string
	Description string
	Reference   string
}

type CollectResult struct {
	Reference string
	Status    string
}
