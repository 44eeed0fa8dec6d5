// Package labclient posts encoded VCA orders to the external order-entry
// service.
package labclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Client is a thin submitter. Retry and backoff belong to the order-entry
// side of the wire; a failed submit is reported to the caller as-is.
type Client struct {
	endpoint string
	http     *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled reports whether an order-entry endpoint is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.endpoint != ""
}

// Submit sends the encoded order text. With no endpoint configured the
// submission is skipped and logged, for dry-run installs.
func (c *Client) Submit(ctx context.Context, job string, encoded string) error {
	if !c.Enabled() {
		log.WithField("job", job).Info("Lab endpoint not configured, skipping submission")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("submit order %s: %w", job, err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("X-Job-Reference", job)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("submit order %s: %w", job, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("submit order %s: unexpected status %s", job, resp.Status)
	}

	log.WithFields(log.Fields{"job": job, "status": resp.StatusCode}).Info("Order submitted")
	return nil
}
