package payment_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"proshop/internal/config"
	"proshop/internal/models"
	"proshop/internal/payment"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test_razorpay_secret"

func newTestVerifier() *payment.Verifier {
	return payment.NewVerifier(config.RazorpayConfig{KeySecret: testSecret})
}

// signRazorpay computes the signature a genuine Razorpay callback would carry.
func signRazorpay(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestParseProof_Discriminator(t *testing.T) {
	// A razorpay_payment_id selects the Razorpay path.
	proof := payment.ParseProof(payment.ProofRequest{
		RazorpayOrderID:   "order_abc",
		RazorpayPaymentID: "pay_123",
		RazorpaySignature: "sig",
	})
	assert.NotNil(t, proof.Razorpay)
	assert.Nil(t, proof.PayPal)
	assert.Equal(t, "pay_123", proof.Razorpay.PaymentID)

	// Anything else is treated as a PayPal capture echo.
	req := payment.ProofRequest{
		ID:         "CAPTURE-1",
		Status:     "COMPLETED",
		UpdateTime: "2024-01-02T03:04:05Z",
	}
	req.Payer.EmailAddress = "buyer@example.com"
	proof = payment.ParseProof(req)
	assert.Nil(t, proof.Razorpay)
	assert.NotNil(t, proof.PayPal)
	assert.Equal(t, "buyer@example.com", proof.PayPal.PayerEmail)
}

func TestVerify_RazorpayValidSignature(t *testing.T) {
	verifier := newTestVerifier()

	proof := payment.Proof{Razorpay: &payment.RazorpayProof{
		OrderID:   "order_abc",
		PaymentID: "pay_123",
		Signature: signRazorpay("order_abc", "pay_123"),
	}}

	result, err := verifier.Verify(proof, "owner@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "pay_123", result.ExternalID)
	assert.Equal(t, "completed", result.Status)
	assert.Equal(t, "owner@example.com", result.PayerEmail)
	assert.NotEmpty(t, result.UpdateTime)
}

func TestVerify_RazorpayTamperedSignature(t *testing.T) {
	verifier := newTestVerifier()

	valid := signRazorpay("order_abc", "pay_123")

	// Flip one bit of the hex signature.
	tampered := []byte(valid)
	tampered[0] ^= 0x01

	proof := payment.Proof{Razorpay: &payment.RazorpayProof{
		OrderID:   "order_abc",
		PaymentID: "pay_123",
		Signature: string(tampered),
	}}

	result, err := verifier.Verify(proof, "owner@example.com")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, models.ErrInvalidSignature)
}

func TestVerify_RazorpayWrongPaymentID(t *testing.T) {
	verifier := newTestVerifier()

	// Signature over a different payment ID must not verify.
	proof := payment.Proof{Razorpay: &payment.RazorpayProof{
		OrderID:   "order_abc",
		PaymentID: "pay_456",
		Signature: signRazorpay("order_abc", "pay_123"),
	}}

	_, err := verifier.Verify(proof, "owner@example.com")
	assert.ErrorIs(t, err, models.ErrInvalidSignature)
}

func TestVerify_PayPalAcceptedWithoutCheck(t *testing.T) {
	verifier := newTestVerifier()

	// A fabricated PayPal proof is accepted as-is. The capture is trusted to
	// the upstream SDK flow; this asserts the known trust asymmetry.
	proof := payment.Proof{PayPal: &payment.PayPalProof{
		ID:         "FORGED-CAPTURE",
		Status:     "COMPLETED",
		UpdateTime: "2024-06-07T08:09:10Z",
		PayerEmail: "anyone@example.com",
	}}

	result, err := verifier.Verify(proof, "owner@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "FORGED-CAPTURE", result.ExternalID)
	assert.Equal(t, "COMPLETED", result.Status)
	assert.Equal(t, "anyone@example.com", result.PayerEmail)
}
