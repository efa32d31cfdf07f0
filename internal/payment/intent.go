package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
)

// Intent is what the processor hands back for a new payment intent. Only
// the client secret matters to the frontend; nothing here is persisted.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// IntentCreator is the outbound port for the payment processor.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error)
}

// Client talks to the payment processor over HTTP. Calls run through a
// circuit breaker so a processor outage fails fast instead of tying up
// request handlers.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*Intent]
}

func NewClient(baseURL, secretKey string) *Client {
	settings := gobreaker.Settings{
		Name:    "payment-intents",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}

	return &Client{
		baseURL:    baseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		breaker:    gobreaker.NewCircuitBreaker[*Intent](settings),
	}
}

type intentRequest struct {
	Amount         int64  `json:"amount"` // smallest currency unit
	Currency       string `json:"currency"`
	IdempotencyKey string `json:"idempotency_key"`
}

func (c *Client) CreateIntent(ctx context.Context, amount float64, currency string) (*Intent, error) {
	return c.breaker.Execute(func() (*Intent, error) {
		return c.createIntent(ctx, amount, currency)
	})
}

func (c *Client) createIntent(ctx context.Context, amount float64, currency string) (*Intent, error) {
	body, err := json.Marshal(intentRequest{
		// Round, don't truncate: 19.99 is not exactly representable and
		// would otherwise go over the wire as 1998 cents.
		Amount:         int64(math.Round(amount * 100)),
		Currency:       currency,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode intent request: %w", err)
	}

	url := c.baseURL + "/v1/payment_intents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment intent request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment processor returned status %d", resp.StatusCode)
	}

	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("failed to decode intent response: %w", err)
	}
	if intent.ClientSecret == "" {
		return nil, fmt.Errorf("payment processor returned no client secret")
	}

	return &intent, nil
}
