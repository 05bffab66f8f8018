package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"proshop/internal/config"
	"proshop/internal/models"
)

// Currency is the fixed currency code used for gateway orders.
const Currency = "INR"

// GatewayClient creates provider-side payment orders that the storefront
// presents back during Razorpay checkout.
type GatewayClient interface {
	CreateOrder(ctx context.Context, amount int64, receipt string) (*models.GatewayOrder, error)
}

type razorpayClientImpl struct {
	httpClient *http.Client
	baseAPIURL string
	keyID      string
	keySecret  string
}

// NewRazorpayClient creates a GatewayClient backed by the Razorpay Orders API.
func NewRazorpayClient(cfg config.RazorpayConfig) GatewayClient {
	return &razorpayClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseAPIURL: cfg.BaseAPIURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
	}
}

// CreateOrder posts a payment order with the amount in paise. Any transport
// or provider failure is reported as a gateway error.
func (c *razorpayClientImpl) CreateOrder(ctx context.Context, amount int64, receipt string) (*models.GatewayOrder, error) {
	payload := map[string]interface{}{
		"amount":   amount,
		"currency": Currency,
		"receipt":  receipt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal gateway order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseAPIURL+"/v1/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("create gateway order request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status=%d body=%s", models.ErrGateway, resp.StatusCode, string(b))
	}

	var result models.GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", models.ErrGateway, err)
	}
	return &result, nil
}
