package payment

import (
	"context"
	"fmt"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

// NewRazorpayGateway builds a gateway with a bounded request timeout so
// a slow gateway never hangs a booking request.
func NewRazorpayGateway(keyID, keySecret string, timeoutSec int) *RazorpayGateway {
	client := razorpay.NewClient(keyID, keySecret)
	if timeoutSec > 0 {
		// SetTimeout takes an int16
		if timeoutSec > math.MaxInt16 {
			timeoutSec = math.MaxInt16
		}
		client.SetTimeout(int16(timeoutSec))
	}

	return &RazorpayGateway{
		client:    client,
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) CreateOrder(
	ctx context.Context,
	amountPaise int64,
	currency string,
	receipt string,
) (*Order, error) {

	data := map[string]interface{}{
		"amount":   amountPaise,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay order create: missing order id in response")
	}

	return &Order{
		ID:          id,
		AmountPaise: amountPaise,
		Currency:    currency,
		Receipt:     receipt,
		KeyID:       g.keyID,
	}, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "orderID|paymentID"
// under the key secret and compares it to the submitted signature.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, g.keySecret)
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

// Compile-time check
var _ Gateway = (*RazorpayGateway)(nil)
