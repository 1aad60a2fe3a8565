package usecase

import (
	"context"
	"errors"
	"io"
	"sync"

	"wellness-assistant/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock assistant recording the last request
type mockAssistant struct {
	mu        sync.Mutex
	available bool
	resp      *llmprovider.Response
	err       error
	requests  []*llmprovider.Request
}

func (m *mockAssistant) Available() bool { return m.available }

func (m *mockAssistant) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	return m.resp, m.err
}

func (m *mockAssistant) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Mock transcriber returning a fixed transcript
type mockTranscriber struct {
	text     string
	err      error
	gotName  string
	gotBytes []byte
}

func (m *mockTranscriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	m.gotName = filename
	b, err := io.ReadAll(audio)
	if err != nil {
		return "", err
	}
	m.gotBytes = b
	return m.text, m.err
}

var errUpstream = errors.New("boom")

// fixedPicker always picks the first element.
type fixedPicker struct{}

func (fixedPicker) IntN(n int) int { return 0 }

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
