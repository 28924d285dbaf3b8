package anthropic_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"otasuke/internal/adapters/anthropic"
	"otasuke/internal/domain"
)

func TestClient_CreateMessage_ContentBlocks(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "test-key" {
			w.WriteHeader(401)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(200)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "server_tool_use", "text": ""},
				{"type": "text", "text": "調べました。"},
				{"type": "text", "text": `{"ok":true}`},
			},
		})
	}))
	defer ts.Close()

	cl, err := anthropic.New(ts.URL, "test-key", "test-model", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	blocks, err := cl.CreateMessage(ctx, domain.ModelRequest{
		System:    "sys",
		User:      "user",
		MaxTokens: 2000,
		WebSearch: true,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if blocks[1].Type != "text" || blocks[1].Text != "調べました。" {
		t.Fatalf("unexpected block: %+v", blocks[1])
	}

	// web search tool must be declared on the wire
	tools, ok := gotBody["tools"].([]any)
	if !ok || len(tools) != 1 {
		t.Fatalf("expected one declared tool, got %v", gotBody["tools"])
	}
	if gotBody["max_tokens"].(float64) != 2000 {
		t.Fatalf("unexpected max_tokens: %v", gotBody["max_tokens"])
	}
}

func TestClient_CreateMessage_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(401)
	}))
	defer ts.Close()

	cl, err := anthropic.New(ts.URL, "wrong-key", "test-model", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err = cl.CreateMessage(context.Background(), domain.ModelRequest{User: "hi", MaxTokens: 10})
	if !errors.Is(err, anthropic.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestClient_CreateMessage_NoRetryOn500(t *testing.T) {
	var hits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(500)
	}))
	defer ts.Close()

	cl, err := anthropic.New(ts.URL, "test-key", "test-model", 100)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err = cl.CreateMessage(context.Background(), domain.ModelRequest{User: "hi", MaxTokens: 10})
	if err == nil {
		t.Fatalf("expected error for 500")
	}
	if hits != 1 {
		t.Fatalf("expected exactly one call, got %d", hits)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := anthropic.New("https://api.anthropic.com", "", "m", 1); err == nil {
		t.Fatalf("expected error for empty key")
	}
}
