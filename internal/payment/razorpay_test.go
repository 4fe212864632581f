package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"testing"
)

func sign(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret123", 0)

	sig := sign("secret123", "order_abc", "pay_xyz")
	if !g.VerifySignature("order_abc", "pay_xyz", sig) {
		t.Fatalf("a correctly signed confirmation must verify")
	}

	if g.VerifySignature("order_abc", "pay_xyz", sig[:len(sig)-1]+"0") {
		t.Fatalf("a tampered signature must not verify")
	}
	if g.VerifySignature("order_other", "pay_xyz", sig) {
		t.Fatalf("a signature for another order must not verify")
	}
	if g.VerifySignature("order_abc", "pay_other", sig) {
		t.Fatalf("a signature for another payment must not verify")
	}

	wrongKey := NewRazorpayGateway("rzp_test_key", "other-secret", 0)
	if wrongKey.VerifySignature("order_abc", "pay_xyz", sig) {
		t.Fatalf("a signature under another secret must not verify")
	}
}

func TestKeyID(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", "secret123", 5)
	if g.KeyID() != "rzp_test_key" {
		t.Fatalf("KeyID = %s", g.KeyID())
	}
}

func TestNewGatewayAcceptsAnyTimeout(t *testing.T) {
	// values beyond the client's int16 timeout field are clamped, not
	// wrapped into garbage
	for _, sec := range []int{0, 10, math.MaxInt16, math.MaxInt16 + 100} {
		if g := NewRazorpayGateway("rzp_test_key", "secret123", sec); g == nil {
			t.Fatalf("gateway not constructed for timeout %d", sec)
		}
	}
}
