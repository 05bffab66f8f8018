package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"proshop/internal/config"
	"proshop/internal/models"
)

// Verifier validates a payment proof against its provider's trust mechanism
// and produces the payment result to record on the order.
//
// The two providers have deliberately different trust models: Razorpay proofs
// are checked against an HMAC signature, PayPal proofs are accepted as-is
// because the capture was already confirmed by PayPal's client SDK before
// this call is made.
type Verifier struct {
	razorpaySecret []byte
	now            func() time.Time
}

// NewVerifier creates a Verifier with credentials from the injected config.
func NewVerifier(cfg config.RazorpayConfig) *Verifier {
	return &Verifier{
		razorpaySecret: []byte(cfg.KeySecret),
		now:            time.Now,
	}
}

// Verify dispatches on the proof variant. payerEmail is the order owner's
// email, recorded on the Razorpay path where the proof carries no payer info.
func (v *Verifier) Verify(proof Proof, payerEmail string) (*models.PaymentResult, error) {
	switch {
	case proof.Razorpay != nil:
		return v.verifyRazorpay(proof.Razorpay, payerEmail)
	case proof.PayPal != nil:
		return v.acceptPayPal(proof.PayPal), nil
	default:
		return nil, models.ErrInvalidSignature
	}
}

// verifyRazorpay recomputes HMAC-SHA256(secret, orderID|paymentID) and
// compares it to the claimed signature in constant time.
func (v *Verifier) verifyRazorpay(proof *RazorpayProof, payerEmail string) (*models.PaymentResult, error) {
	mac := hmac.New(sha256.New, v.razorpaySecret)
	mac.Write([]byte(proof.OrderID + "|" + proof.PaymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(proof.Signature)) {
		return nil, models.ErrInvalidSignature
	}

	return &models.PaymentResult{
		ExternalID: proof.PaymentID,
		Status:     "completed",
		UpdateTime: v.now().Format(time.RFC3339),
		PayerEmail: payerEmail,
	}, nil
}

// acceptPayPal records the echoed capture without any server-side check.
// This trust asymmetry mirrors the upstream SDK flow and is covered by tests.
func (v *Verifier) acceptPayPal(proof *PayPalProof) *models.PaymentResult {
	return &models.PaymentResult{
		ExternalID: proof.ID,
		Status:     proof.Status,
		UpdateTime: proof.UpdateTime,
		PayerEmail: proof.PayerEmail,
	}
}
