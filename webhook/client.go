// Package webhook delivers notification documents to a chat webhook endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-hclog"
)

// Client posts JSON documents to a webhook URL. It performs exactly one
// attempt per call; retry policy, if any, belongs to the caller's host.
type Client struct {
	httpClient *http.Client
	logger     hclog.Logger
}

// New creates a webhook Client.
func New(logger hclog.Logger) *Client {
	return &Client{
		httpClient: cleanhttp.DefaultClient(),
		logger:     logger,
	}
}

// Send POSTs the message as JSON to the given URL. A transport failure or a
// non-2xx response is an error; the response body is logged either way when
// available.
func (c *Client) Send(ctx context.Context, url string, message interface{}) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	c.logger.Info("notification sent", "status", resp.StatusCode, "response", string(body))
	return nil
}
