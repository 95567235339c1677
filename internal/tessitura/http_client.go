package tessitura

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPClient talks to a real box-office web API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient creates a box-office client for the given base URL.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// SubmitContribution posts the contribution once. No retries: a failure is
// reported to the caller, who surfaces it to the buyer as a recoverable error.
func (c *HTTPClient) SubmitContribution(ctx context.Context, contribution Contribution) (*ContributionResult, error) {
	body, err := json.Marshal(contribution)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contribution: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/contributions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build contribution request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("box office request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("box office returned status %d", resp.StatusCode)
	}

	var result ContributionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode box office response: %w", err)
	}
	if result.ContributionID == "" {
		return nil, fmt.Errorf("box office response missing contribution id")
	}
	return &result, nil
}
