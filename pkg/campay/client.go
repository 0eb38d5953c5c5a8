// Package campay talks to the Campay mobile money collection API.
package campay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"immo-media/internal/entity"
	"immo-media/pkg/config"
)

// ErrProvider wraps any non-2xx answer from Campay.
var ErrProvider = errors.New("campay error")

const maxResponseBytes = 1 << 20

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.CampayBaseURL, "/"),
		token:      cfg.CampayAccessToken,
		httpClient: &http.Client{Timeout: cfg.CampayTimeout},
	}
}

type collectRequest struct {
	Amount            int    `json:"amount"`
	From              string `json:"from"`
	Description       string `json:"description"`
	ExternalReference string `json:"externalReference"`
}

type collectResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Operator  string `json:"operator"`
}

// Collect asks Campay to debit the phone number. The returned reference is the
// provider's when it sends one, the caller's correlation reference otherwise.
func (c *Client) Collect(ctx context.Context, req entity.CollectRequest) (*entity.CollectResult, error) {
	body, err := json.Marshal(collectRequest{
		Amount:            req.Amount,
		From:              req.Phone,
		Description:       req.Description,
		ExternalReference: req.Reference,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal collect request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/collect/", body)
	if err != nil {
		return nil, err
	}

	var resp collectResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode collect response: %w", err)
		}
	}

	result := &entity.CollectResult{
		Reference: resp.Reference,
		Status:    resp.Status,
	}
	if result.Reference == "" {
		result.Reference = req.Reference
	}
	return result, nil
}

// CheckStatus returns Campay's transaction payload untouched.
func (c *Client) CheckStatus(ctx context.Context, reference string) (json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodGet, "/transaction/"+reference+"/", nil)
	if err != nil {
		return nil, err
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("campay returned invalid json for %s", reference)
	}
	return json.RawMessage(raw), nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build campay request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("campay %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read campay response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s %s returned %d after %s: %s",
			ErrProvider, method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond), providerMessage(raw))
	}
	return raw, nil
}

// providerMessage pulls the human readable part out of a Campay error body.
func providerMessage(raw []byte) string {
	var payload struct {
		Message   string `json:"message"`
		Detail    string `json:"detail"`
		ErrorCode string `json:"error_code"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Message != "" && payload.ErrorCode != "":
			return payload.ErrorCode + " " + payload.Message
		case payload.Message != "":
			return payload.Message
		case payload.Detail != "":
			return payload.Detail
		}
	}
	return strings.TrimSpace(string(raw))
}
