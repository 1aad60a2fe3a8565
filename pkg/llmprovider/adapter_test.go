package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wellness-assistant/pkg/deepseek"
	"wellness-assistant/pkg/gemini"
)

type mockGemini struct {
	lastReq *gemini.Request
}

func (m *mockGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.lastReq = req
	return &gemini.Response{Text: "gemini says hi", Usage: gemini.Usage{InputTokens: 3, OutputTokens: 4, TotalTokens: 7}}, nil
}

func (m *mockGemini) Model() string { return "gemini-mock" }

type mockDeepSeek struct {
	lastReq *deepseek.Request
	err     error
}

func (m *mockDeepSeek) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &deepseek.Response{
		Choices: []deepseek.Choice{{Message: deepseek.Message{Role: "assistant", Content: "deepseek says hi"}}},
		Usage:   deepseek.Usage{PromptTokens: 2, CompletionTokens: 2, TotalTokens: 4},
	}, nil
}

func (m *mockDeepSeek) Model() string { return "deepseek-mock" }

func conversation() *Request {
	return &Request{
		SystemInstruction: "be kind",
		Messages: []Message{
			{Role: RoleUser, Text: "hi"},
			{Role: RoleAssistant, Text: "hello"},
			{Role: RoleUser, Text: "tip?"},
		},
	}
}

func TestGeminiAdapter(t *testing.T) {
	client := &mockGemini{}
	adapter := NewGeminiAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), conversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "gemini says hi" || resp.ProviderName != "gemini" || resp.ModelName != "gemini-mock" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if client.lastReq.Messages[1].Role != "model" {
		t.Errorf("assistant role must map to model, got %s", client.lastReq.Messages[1].Role)
	}
	if client.lastReq.SystemInstruction != "be kind" {
		t.Errorf("system instruction not forwarded")
	}
}

func TestDeepSeekAdapter(t *testing.T) {
	client := &mockDeepSeek{}
	adapter := NewDeepSeekAdapter(client)

	resp, err := adapter.GenerateContent(context.Background(), conversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "deepseek says hi" || resp.ModelName != "deepseek-mock" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if len(client.lastReq.Messages) != 4 || client.lastReq.Messages[0].Role != "system" {
		t.Errorf("system instruction must be the first message: %+v", client.lastReq.Messages)
	}

	client.err = errors.New("upstream down")
	if _, err := adapter.GenerateContent(context.Background(), conversation()); err == nil || !strings.Contains(err.Error(), "deepseek") {
		t.Errorf("expected wrapped deepseek error, got %v", err)
	}
}

func TestAnthropicAdapter(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/messages") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("X-Api-Key") != "anthropic-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if msgs, ok := body["messages"].([]interface{}); !ok || len(msgs) != 3 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [{"type": "text", "text": "Put 10% aside first."}],
			"stop_reason": "end_turn",
			"stop_sequence": null,
			"usage": {"input_tokens": 20, "output_tokens": 8}
		}`))
	}))
	defer ts.Close()

	adapter, err := NewAnthropicAdapter(AnthropicConfig{APIKey: "anthropic-key", Model: "claude-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := adapter.GenerateContent(context.Background(), conversation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "Put 10% aside first." {
		t.Errorf("unexpected text: %q", resp.Text)
	}
	if resp.Usage.TotalTokens != 28 {
		t.Errorf("expected 28 total tokens, got %d", resp.Usage.TotalTokens)
	}

	if _, err := NewAnthropicAdapter(AnthropicConfig{}); err == nil {
		t.Error("expected error for missing API key")
	}
}
