// Package spell corrects note text through an external spelling service.
// The adapter is stateless and best-effort; it is not part of the auth or
// ownership core.
package spell

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Checker interface {
	// Correct returns text with each flagged word replaced by the first
	// suggestion for it.
	Correct(ctx context.Context, text string) (string, error)
}

// Noop leaves text untouched. Used when spell checking is disabled.
type Noop struct{}

func (Noop) Correct(_ context.Context, text string) (string, error) {
	return text, nil
}

// correction mirrors one entry of the speller API response.
type correction struct {
	Word        string   `json:"word"`
	Suggestions []string `json:"s"`
}

// HTTPChecker calls the Yandex speller JSON API.
type HTTPChecker struct {
	client   *http.Client
	endpoint string
}

func NewHTTPChecker(endpoint string) *HTTPChecker {
	return &HTTPChecker{
		client:   &http.Client{Timeout: 5 * time.Second},
		endpoint: endpoint,
	}
}

func (c *HTTPChecker) Correct(ctx context.Context, text string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.endpoint+"?text="+url.QueryEscape(text), nil)
	if err != nil {
		return "", fmt.Errorf("build speller request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call speller: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("speller returned status %d", resp.StatusCode)
	}

	var corrections []correction
	if err := json.NewDecoder(resp.Body).Decode(&corrections); err != nil {
		return "", fmt.Errorf("decode speller response: %w", err)
	}

	for _, corr := range corrections {
		if len(corr.Suggestions) > 0 {
			text = strings.ReplaceAll(text, corr.Word, corr.Suggestions[0])
		}
	}
	return text, nil
}

// NewChecker returns the HTTP checker when enabled, Noop otherwise.
func NewChecker(enabled bool, endpoint string) Checker {
	if !enabled {
		return Noop{}
	}
	return NewHTTPChecker(endpoint)
}
