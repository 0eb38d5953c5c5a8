package entity

// WebhookPayload is the body Campay posts when a collection settles.
type WebhookPayload struct {
	Reference         string      `json:"reference"`
	ExternalReference string      `json:"external_reference"`
	Status            string      `json:"status"`
	Amount            interface{} `json:"amount"`
	Currency          string      `json:"currency"`
	Operator          string      `json:"operator"`
	PhoneNumber       string      `json:"phone_number"`
}

const (
	ProviderStatusSuccessful = "SUCCESSFUL"
	ProviderStatusFailed     = "FAILED"
)

// LocalStatus maps a provider status onto the persisted enum. Unknown values
// report false and must not touch the transaction.
func LocalStatus(providerStatus string) (TransactionStatus, bool) {
	switch providerStatus {
	case ProviderStatusSuccessful:
		return StatusSuccessful, true
	case ProviderStatusFailed:
		return StatusFailed, true
	default:
		return "", false
	}
}

type WebhookOutcome string

const (
	WebhookUpdated          WebhookOutcome = "updated"
	WebhookUnchanged        WebhookOutcome = "unchanged"
	WebhookIgnored          WebhookOutcome = "ignored"
	WebhookUnknownReference WebhookOutcome = "unknown_reference"
	WebhookRejected         WebhookOutcome = "rejected_transition"
)
