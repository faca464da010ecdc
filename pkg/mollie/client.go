package mollie

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no API key is set. Handlers map it to a
// clear 500 instead of the process refusing to start.
var ErrNotConfigured = errors.New("mollie API key is not configured")

// Payment statuses as reported by the processor
const (
	StatusOpen     = "open"
	StatusPaid     = "paid"
	StatusCanceled = "canceled"
	StatusFailed   = "failed"
	StatusExpired  = "expired"
)

type Amount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"`
}

// Metadata is attached to a payment at creation and read back verbatim at
// reconciliation. It must carry enough to reconstruct a booking without a
// second round trip.
type Metadata struct {
	ResourceID   string `json:"resourceId"`
	ResourceName string `json:"resourceName"`
	Type         string `json:"type"`
	Location     string `json:"location"`
	StartISO     string `json:"startIso"`
	EndISO       string `json:"endIso"`
	UserID       string `json:"userId"`
	UserEmail    string `json:"userEmail"`
	RequestID    string `json:"requestId,omitempty"`
}

type Payment struct {
	ID          string   `json:"id"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	Amount      Amount   `json:"amount"`
	Metadata    Metadata `json:"metadata"`
	Links       Links    `json:"_links"`
}

type Links struct {
	Checkout *Link `json:"checkout,omitempty"`
}

type Link struct {
	Href string `json:"href"`
}

// CheckoutURL returns the redirect target for the hosted checkout page.
func (p *Payment) CheckoutURL() string {
	if p.Links.Checkout == nil {
		return ""
	}
	return p.Links.Checkout.Href
}

type CreatePaymentRequest struct {
	Amount      Amount   `json:"amount"`
	Description string   `json:"description"`
	RedirectURL string   `json:"redirectUrl"`
	Metadata    Metadata `json:"metadata"`
}

// APIError preserves the processor's HTTP status so handlers can pass
// 4xx responses through.
type APIError struct {
	StatusCode int    `json:"status"`
	Title      string `json:"title"`
	Detail     string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mollie: %d %s: %s", e.StatusCode, e.Title, e.Detail)
}

type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	log     *zap.Logger
}

func NewClient(apiKey, baseURL string, log *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 15 * time.Second},
		log:     log.With(zap.String("client", "mollie")),
	}
}

// CreatePayment creates a payment session with the hosted checkout. Each
// call creates a new, distinct session; it is not safe to retry blindly.
func (c *Client) CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*Payment, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq, "create payment")
}

// GetPayment fetches the authoritative payment status. Never trust a
// client-supplied status instead of this.
func (c *Client) GetPayment(ctx context.Context, id string) (*Payment, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("build payment lookup: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	return c.do(httpReq, "get payment")
}

func (c *Client) do(req *http.Request, operation string) (*Payment, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("Mollie request failed",
			zap.Error(err),
			zap.String("operation", operation),
		)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Title = resp.Status
		}
		apiErr.StatusCode = resp.StatusCode
		c.log.Error("Mollie API error",
			zap.Int("status", apiErr.StatusCode),
			zap.String("title", apiErr.Title),
			zap.String("operation", operation),
		)
		return nil, apiErr
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", operation, err)
	}

	return &payment, nil
}
