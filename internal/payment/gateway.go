package payment

import "context"

type Order struct {
	ID          string `json:"order_id"`
	AmountPaise int64  `json:"amount"`
	Currency    string `json:"currency"`
	Receipt     string `json:"receipt"`
	KeyID       string `json:"key_id"`
}

// Gateway is the external payment collaborator. CreateOrder registers a
// payable order; VerifySignature checks a client-submitted confirmation
// against the shared secret.
type Gateway interface {
	CreateOrder(ctx context.Context, amountPaise int64, currency string, receipt string) (*Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}
