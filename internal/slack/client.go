// Package slack provides a minimal Slack Web API client covering the two
// calls the dispatcher needs: profile status updates and presence changes.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Config holds the configuration for Slack Web API access.
type Config struct {
	// BaseURL is the Slack Web API base URL.
	BaseURL string

	// Token is the account's OAuth token.
	Token string

	// Timeout for API requests.
	Timeout time.Duration
}

// DefaultConfig returns the default configuration for a token, reading the
// base URL override from the environment.
func DefaultConfig(token string) Config {
	return Config{
		BaseURL: getEnv("SLACK_API_URL", "https://slack.com/api"),
		Token:   token,
		Timeout: 30 * time.Second,
	}
}

// getEnv returns an environment variable value or a default if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Client is a client for the Slack Web API.
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new Slack Web API client.
func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// apiResponse is the envelope every Slack Web API call returns.
type apiResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// SetProfile sets the user's status text, emoji and expiration.
// expiresAt is epoch seconds; 0 means no expiration.
func (c *Client) SetProfile(ctx context.Context, text, emoji string, expiresAt int64) error {
	payload := map[string]any{
		"profile": map[string]any{
			"status_text":       text,
			"status_emoji":      emoji,
			"status_expiration": expiresAt,
		},
	}
	return c.callMethod(ctx, "users.profile.set", payload)
}

// SetPresence sets the user's presence to "auto" or "away".
func (c *Client) SetPresence(ctx context.Context, presence string) error {
	payload := map[string]any{
		"presence": presence,
	}
	return c.callMethod(ctx, "users.setPresence", payload)
}

// callMethod posts a JSON payload to a Slack Web API method and checks the
// ok/error envelope.
func (c *Client) callMethod(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	url := c.config.BaseURL + "/" + method
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.config.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, raw)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("%s failed: %s", method, apiResp.Error)
	}
	return nil
}
