// Package remote is the persistence boundary: one fire-and-forget POST of the
// full record set to the save endpoint. No retry, no idempotency guarantee.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tdnguyen/sales-ledger/internal/common"
	"github.com/tdnguyen/sales-ledger/internal/entity"
)

// Client posts record sets to the remote save endpoint.
type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// saveResponse is the endpoint's JSON envelope.
type saveResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Save sends the full record slice as a JSON array. Failures split into two
// kinds the caller reports differently: common.ErrRequestFailed when the
// request produced no decodable response, and common.ErrSaveRejected when the
// server answered with a non-success status. The local store is unaffected
// either way.
func (c *Client) Save(ctx context.Context, records []entity.Record) error {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode records: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bs))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("save.request",
		"req_id", reqID,
		"url", c.url,
		"records", len(records),
		"content_length", len(bs),
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("save.send_error", "req_id", reqID, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return fmt.Errorf("%w: %v", common.ErrRequestFailed, err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("save.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.logger.Info("save.response",
		"req_id", reqID,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	var sr saveResponse
	if err := json.Unmarshal(raw, &sr); err != nil {
		return fmt.Errorf("%w: undecodable response (http %d)", common.ErrRequestFailed, resp.StatusCode)
	}
	if sr.Status != "success" {
		msg := sr.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return fmt.Errorf("%w: %s", common.ErrSaveRejected, msg)
	}
	return nil
}
