package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tixora/internal/shared/config"
)

// InitiateRequest is the opaque request handed to the payment gateway
type InitiateRequest struct {
	EventID     string      `json:"event_id"`
	Amount      float64     `json:"amount"`
	Currency    string      `json:"currency"`
	ReturnURL   string      `json:"return_url,omitempty"`
	BookingData BookingData `json:"booking_data"`
}

// BookingData mirrors the engine's submission payload on the wire
type BookingData struct {
	Category      string         `json:"category"`
	Quantity      int            `json:"quantity"`
	TicketDetails []TicketDetail `json:"ticket_details"`
}

type TicketDetail struct {
	Name     string  `json:"name"`
	Mobile   string  `json:"mobile"`
	Email    string  `json:"email"`
	IsOwner  bool    `json:"is_owner"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// CheckoutSession is the gateway's hosted-page handle. The engine stores
// the reference but does not interpret it; ticket creation happens
// server-side after the gateway reports payment.
type CheckoutSession struct {
	Reference   string    `json:"reference"`
	RedirectURL string    `json:"redirect_url"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Client interface {
	Initiate(ctx context.Context, req *InitiateRequest) (*CheckoutSession, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(cfg config.GatewayConfig) Client {
	return &httpClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *httpClient) Initiate(ctx context.Context, req *InitiateRequest) (*CheckoutSession, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout-sessions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("gateway returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var session CheckoutSession
	if err := json.Unmarshal(respBody, &session); err != nil {
		return nil, fmt.Errorf("failed to decode gateway response: %w", err)
	}

	if session.Reference == "" {
		return nil, fmt.Errorf("gateway response missing session reference")
	}

	return &session, nil
}
