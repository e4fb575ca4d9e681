// Package luis implements the recognizer port against a hosted
// language-understanding endpoint.
package luis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/aretw0/parley/pkg/ports"
)

// Client calls a hosted NLU prediction endpoint. A non-2xx response or
// transport failure surfaces as an error and aborts the turn.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a recognizer against the given prediction endpoint.
func NewClient(endpoint, apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type predictionRequest struct {
	Query string `json:"query"`
}

// predictionResponse mirrors the hosted model's prediction shape: a top
// intent plus entity lists keyed by entity name.
type predictionResponse struct {
	TopIntent string              `json:"top_intent"`
	Score     float64             `json:"score"`
	Entities  map[string][]string `json:"entities"`
}

// Recognize sends the utterance for prediction and maps the response onto
// the typed result.
func (c *Client) Recognize(ctx context.Context, utterance string) (ports.RecognizerResult, error) {
	body, err := json.Marshal(predictionRequest{Query: utterance})
	if err != nil {
		return ports.RecognizerResult{}, fmt.Errorf("encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return ports.RecognizerResult{}, fmt.Errorf("build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.RecognizerResult{}, fmt.Errorf("prediction request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ports.RecognizerResult{}, fmt.Errorf("prediction request: unexpected status %d", resp.StatusCode)
	}

	var prediction predictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return ports.RecognizerResult{}, fmt.Errorf("decode prediction response: %w", err)
	}

	result := ports.RecognizerResult{
		TopIntent: mapIntent(prediction.TopIntent),
		Score:     prediction.Score,
		Entities: ports.Entities{
			Description:  first(prediction.Entities["description"]),
			Bug:          first(prediction.Entities["bug_category"]),
			PhoneNumber:  first(prediction.Entities["phone_number"]),
			CallbackTime: first(prediction.Entities["callback_time"]),
		},
	}
	return result, nil
}

// mapIntent folds unknown intent labels into None so the router's dispatch
// set stays closed.
func mapIntent(label string) ports.Intent {
	switch ports.Intent(label) {
	case ports.IntentGreeting, ports.IntentNewBugReport, ports.IntentQueryBugType:
		return ports.Intent(label)
	default:
		return ports.IntentNone
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
