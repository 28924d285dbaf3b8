// internal/adapters/anthropic/client.go
package anthropic

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

	"golang.org/x/time/rate"

	"otasuke/internal/adapters/observability"
	"otasuke/internal/domain"
)

const (
	apiVersion = "2023-06-01"
	// Provider identifier for the hosted web search tool.
	webSearchToolType = "web_search_20250305"
)

type Client struct {
	base  string
	hc    *http.Client
	key   string
	model string
	rl    *rate.Limiter
}

// New builds a Messages API client. Generation plus tool-assisted search can
// take many seconds, so the HTTP timeout is deliberately generous.
func New(base, key, model string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		hc:    &http.Client{Timeout: 120 * time.Second},
		key:   key,
		model: model,
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

var (
	ErrUnauthorized = errors.New("anthropic: unauthorized")
	ErrRateLimited  = errors.New("anthropic: rate limited")
	ErrBadRequest   = errors.New("anthropic: malformed request")
)

// ---- wire types ----

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
	Tools     []tool    `json:"tools,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type tool struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type messageResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

// CreateMessage performs one generation call and returns the ordered content
// blocks. Failures are not retried; the caller surfaces them as provider
// errors.
func (c *Client) CreateMessage(ctx context.Context, req domain.ModelRequest) ([]domain.ContentBlock, error) {
	// client-side rate limiting
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	payload := messageRequest{
		Model:     c.model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  []message{{Role: "user", Content: req.User}},
	}
	if req.WebSearch {
		payload.Tools = []tool{{Type: webSearchToolType, Name: "web_search"}}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("x-api-key", c.key)
	httpReq.Header.Set("anthropic-version", apiVersion)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(httpReq)
	if err != nil {
		observability.ObserveExternal("anthropic", "messages", 0, time.Since(start))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("anthropic", "messages", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		var mr messageResponse
		if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
			return nil, err
		}
		out := make([]domain.ContentBlock, 0, len(mr.Content))
		for _, b := range mr.Content {
			out = append(out, domain.ContentBlock{Type: b.Type, Text: b.Text})
		}
		return out, nil

	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized

	case http.StatusTooManyRequests:
		return nil, ErrRateLimited

	case http.StatusBadRequest:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: %s", ErrBadRequest, strings.TrimSpace(string(b)))

	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
