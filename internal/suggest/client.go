// Package suggest is the boundary to an external text-generation API used
// to draft condition remarks for staff. The core never calls it; the API
// layer does, and falls back to manual entry when it is unconfigured or
// failing.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"studio-inventory-backend/config"
	"studio-inventory-backend/internal/model"
)

// Request carries the context a suggestion is generated from.
type Request struct {
	EquipmentName string
	UnitLabel     string
	Status        model.Status
	Hint          string
}

// apiRequest is the wire format sent to the generation endpoint.
type apiRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
}

// apiResponse models the generation endpoint's response envelope.
type apiResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Text string `json:"text"`
	} `json:"data"`
}

// Client calls the remark-suggestion endpoint.
type Client struct {
	cfg    config.SuggestConfig
	client *http.Client
}

// NewClient builds a client from configuration. An invalid proxy URL is
// logged and ignored rather than failing startup.
func NewClient(cfg config.SuggestConfig) *Client {
	var transport http.RoundTripper = &http.Transport{}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Suggestion client will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// Enabled reports whether a suggestion endpoint is configured.
func (c *Client) Enabled() bool {
	return c.cfg.URL != ""
}

// Suggest asks the endpoint for a one-line remark describing the unit's
// condition and returns the generated text.
func (c *Client) Suggest(ctx context.Context, r Request) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("suggestion endpoint is not configured")
	}

	body, err := json.Marshal(apiRequest{
		Model:  c.cfg.Model,
		Prompt: buildPrompt(r),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode suggestion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	for k, v := range c.cfg.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("suggestion endpoint returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return "", fmt.Errorf("failed to decode suggestion response: %w", err)
	}
	if envelope.Code != 0 {
		return "", fmt.Errorf("suggestion endpoint returned code %d: %s", envelope.Code, envelope.Message)
	}
	return envelope.Data.Text, nil
}

func buildPrompt(r Request) string {
	unit := r.UnitLabel
	if unit == "" {
		unit = "an unlabeled unit"
	}
	prompt := fmt.Sprintf("Write a one-line inventory remark for %s of %q reported as %s.", unit, r.EquipmentName, r.Status)
	if r.Hint != "" {
		prompt += " Details: " + r.Hint
	}
	return prompt
}
