package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	delay      time.Duration
	text       string

	mu        sync.Mutex
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return &Response{
		Text:         m.text,
		ProviderName: m.name,
		ModelName:    m.model,
		Usage:        Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

func (m *mockProvider) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func userRequest(text string) *Request {
	return &Request{Messages: []Message{{Role: RoleUser, Text: text}}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", text: "Hello from primary"}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", text: "Hello from secondary"}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, logger)

	resp, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.calls() != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.calls())
	}
	if secondary.calls() != 0 {
		t.Errorf("Expected secondary provider not to be called, got: %d", secondary.calls())
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info / 0 warn logs, got %d / %d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", text: "Hello from secondary"}
	logger := &mockLogger{}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, logger)

	resp, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if primary.calls() != 1 {
		t.Errorf("Expected exactly one attempt on primary, got: %d", primary.calls())
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 warn log message, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", text: "unused"}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if secondary.calls() != 0 {
		t.Errorf("Expected secondary provider not to be called, got: %d", secondary.calls())
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", shouldFail: true}

	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}

	var provErr *ProviderError
	if !errors.As(err, &provErr) || provErr.Provider != "secondary" {
		t.Errorf("Expected last ProviderError from secondary, got: %v", err)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{}, &mockLogger{})

	if manager.Available() {
		t.Error("Expected manager without providers to be unavailable")
	}
	if _, err := manager.GenerateContent(context.Background(), userRequest("Hello")); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	manager := NewManager([]Provider{&mockProvider{name: "p"}}, &Config{}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", delay: 500 * time.Millisecond, text: "late"}
	next := &mockProvider{name: "next", text: "unused"}

	manager := NewManager([]Provider{slow, next}, &Config{
		FallbackEnabled: true,
		MaxTotalTimeout: 50 * time.Millisecond,
	}, &mockLogger{})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if time.Since(start) > 400*time.Millisecond {
		t.Errorf("Expected the chain to stop at the global timeout, took %v", time.Since(start))
	}
	if next.calls() != 0 {
		t.Errorf("Expected next provider to be skipped after timeout, got %d calls", next.calls())
	}
}

func TestGenerateContent_CacheHit(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", text: "cached reply"}

	manager := NewManager([]Provider{primary}, &Config{CacheSize: 8, CacheTTL: time.Minute}, &mockLogger{})

	first, err := manager.GenerateContent(context.Background(), userRequest("same prompt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := manager.GenerateContent(context.Background(), userRequest("same prompt"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if primary.calls() != 1 {
		t.Errorf("Expected one upstream call, got %d", primary.calls())
	}
	if first.Cached || !second.Cached {
		t.Errorf("Expected only the second reply to be cached, got first=%v second=%v", first.Cached, second.Cached)
	}
	if second.Text != "cached reply" {
		t.Errorf("unexpected cached text: %q", second.Text)
	}

	if _, err := manager.GenerateContent(context.Background(), userRequest("different prompt")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if primary.calls() != 2 {
		t.Errorf("Expected a miss for a different prompt, got %d calls", primary.calls())
	}
}

func TestGenerateContent_PacingRespectsContext(t *testing.T) {
	primary := &mockProvider{name: "primary", text: "ok"}

	// 1 request/minute with burst 1: the second call must wait ~60s.
	manager := NewManager([]Provider{primary}, &Config{RequestsPerMinute: 1}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), userRequest("one")); err != nil {
		t.Fatalf("first call should pass: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := manager.GenerateContent(ctx, userRequest("two")); err == nil {
		t.Fatal("Expected pacing to fail once the context deadline cannot be met")
	}
	if primary.calls() != 1 {
		t.Errorf("Expected the paced call not to reach the provider, got %d calls", primary.calls())
	}
}

func TestCacheKey(t *testing.T) {
	a := &Request{SystemInstruction: "sys", Messages: []Message{{Role: RoleUser, Text: "hi"}}}
	b := &Request{SystemInstruction: "sys", Messages: []Message{{Role: RoleUser, Text: "hi"}}}
	c := &Request{SystemInstruction: "sys", Messages: []Message{{Role: RoleUser, Text: "hi"}}, Temperature: 0.9}

	if cacheKey(a) != cacheKey(b) {
		t.Error("identical requests must share a key")
	}
	if cacheKey(a) == cacheKey(c) {
		t.Error("temperature must change the key")
	}
}
