package payment

// ProofRequest is the raw `PUT /orders/:id/pay` body. Both provider shapes
// arrive on the same endpoint; the union below is built from it exactly once
// at the API boundary.
type ProofRequest struct {
	// Razorpay checkout callback fields.
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`

	// PayPal capture details echoed by the client SDK.
	ID         string `json:"id"`
	Status     string `json:"status"`
	UpdateTime string `json:"update_time"`
	Payer      struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
}

// RazorpayProof is a cryptographically verifiable payment claim.
type RazorpayProof struct {
	OrderID   string
	PaymentID string
	Signature string
}

// PayPalProof is a capture result echoed by the PayPal client SDK. It carries
// no signature; the capture was confirmed upstream by PayPal's own script.
type PayPalProof struct {
	ID         string
	Status     string
	UpdateTime string
	PayerEmail string
}

// Proof is a tagged union over the two provider proof shapes. Exactly one of
// the two fields is non-nil.
type Proof struct {
	Razorpay *RazorpayProof
	PayPal   *PayPalProof
}

// ParseProof classifies a request body into a provider proof. The presence of
// a Razorpay payment ID selects the Razorpay path; anything else is treated
// as a PayPal capture echo. This precedence decides which trust model applies
// to the request and must not change.
func ParseProof(req ProofRequest) Proof {
	if req.RazorpayPaymentID != "" {
		return Proof{Razorpay: &RazorpayProof{
			OrderID:   req.RazorpayOrderID,
			PaymentID: req.RazorpayPaymentID,
			Signature: req.RazorpaySignature,
		}}
	}
	return Proof{PayPal: &PayPalProof{
		ID:         req.ID,
		Status:     req.Status,
		UpdateTime: req.UpdateTime,
		PayerEmail: req.Payer.EmailAddress,
	}}
}
