// Package evaluator implements the HTTP client for the remote evaluator
// service. The service's scoring algorithm is a black box to this client;
// only the wire contract matters here.
package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ashureev/cooked/internal/domain"
)

// ChatRequest is the payload for POST /chat.
type ChatRequest struct {
	SessionID string         `json:"session_id"`
	Mode      string         `json:"mode"`
	UserText  string         `json:"user_text"`
	Metrics   domain.Metrics `json:"metrics"`
}

// Client calls the remote evaluator over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the evaluator at baseURL. The timeout bounds the
// whole request; the original system had none, which left failed turns
// hanging indefinitely.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Submit posts one attempt and decodes the verdict. Network errors, non-2xx
// statuses and non-JSON bodies are all returned as errors; the caller treats
// every error from here as a transport failure for the turn. Absent response
// fields keep their zero values, which are the safe display defaults.
func (c *Client) Submit(ctx context.Context, req ChatRequest) (*domain.Verdict, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post chat: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("evaluator returned status %d", resp.StatusCode)
	}

	var verdict domain.Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		return nil, fmt.Errorf("decode verdict: %w", err)
	}

	// Normalize absent sequences so downstream display code never sees nil.
	if verdict.Tags == nil {
		verdict.Tags = []string{}
	}
	if verdict.Reasons == nil {
		verdict.Reasons = []string{}
	}
	return &verdict, nil
}
