package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"wellness-assistant/internal/responder"
	"wellness-assistant/internal/wellness"
	"wellness-assistant/pkg/llmprovider"
)

func newTestUseCase(a Assistant, tr *mockTranscriber) *implUseCase {
	r := responder.New(responder.WithPicker(fixedPicker{}))
	if tr == nil {
		return New(&mockLogger{}, r, a, nil)
	}
	return New(&mockLogger{}, r, a, tr)
}

func TestChat(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	tests := []struct {
		name  string
		input wellness.ChatInput
		want  responder.Category
	}{
		{"Blocked", wellness.ChatInput{Text: "this is shit"}, responder.CategoryBlocked},
		{"Check In", wellness.ChatInput{Text: "time for a check-in"}, responder.CategoryCheckIn},
		{"Budget Alert", wellness.ChatInput{Text: "hi", Budget: ptrFloat(3000), DaysToPayday: ptrInt(5)}, responder.CategoryBudgetAlert},
		{"Fallback", wellness.ChatInput{Text: "hello"}, responder.CategoryFallbackGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Chat(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Category != tt.want {
				t.Errorf("expected category %s, got %s", tt.want, out.Category)
			}
			if out.Message == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestFixedPoolEndpoints(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	pools := responder.Pools()
	ctx := context.Background()

	checkIn, _ := uc.CheckIn(ctx)
	if checkIn.Message != pools.CheckInQuestions[0] || checkIn.Category != responder.CategoryCheckIn {
		t.Errorf("unexpected check-in output: %+v", checkIn)
	}

	challenge, _ := uc.Challenge(ctx)
	if challenge.Message != pools.ChallengeSuggestions[0] {
		t.Errorf("unexpected challenge: %q", challenge.Message)
	}

	swap, _ := uc.HealthSwap(ctx)
	if !strings.HasPrefix(swap.Message, "Skipping that ") {
		t.Errorf("unexpected swap: %q", swap.Message)
	}

	tip, _ := uc.WellnessTip(ctx, wellness.WellnessTipInput{Context: responder.ContextStress})
	if tip.Message != responder.TipStress {
		t.Errorf("expected stress tip, got %q", tip.Message)
	}
}

func TestFundsAlert(t *testing.T) {
	uc := newTestUseCase(nil, nil)

	t.Run("Below Threshold", func(t *testing.T) {
		out, err := uc.FundsAlert(context.Background(), wellness.FundsAlertInput{Budget: 3000, Days: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.BelowThreshold {
			t.Error("expected BelowThreshold")
		}
		if out.PerDay != 500 {
			t.Errorf("expected per-day 500, got %v", out.PerDay)
		}
		if !strings.Contains(out.Message, "3000") {
			t.Errorf("expected budget in message, got %q", out.Message)
		}
	})

	t.Run("Above Threshold Still Renders", func(t *testing.T) {
		out, _ := uc.FundsAlert(context.Background(), wellness.FundsAlertInput{Budget: 9000, Days: 3})
		if out.BelowThreshold {
			t.Error("expected BelowThreshold=false")
		}
		if out.Message == "" {
			t.Error("expected a rendered alert")
		}
	})

	t.Run("Zero Days", func(t *testing.T) {
		out, _ := uc.FundsAlert(context.Background(), wellness.FundsAlertInput{Budget: 1000, Days: 0})
		if out.PerDay != 0 {
			t.Errorf("expected per-day 0, got %v", out.PerDay)
		}
	})
}

func TestAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Text", func(t *testing.T) {
		uc := newTestUseCase(&mockAssistant{available: true}, nil)
		_, err := uc.Ask(ctx, wellness.AskInput{Text: "   "})
		if !errors.Is(err, wellness.ErrEmptyText) {
			t.Errorf("expected ErrEmptyText, got %v", err)
		}
	})

	t.Run("Blocked Text Never Reaches Provider", func(t *testing.T) {
		a := &mockAssistant{available: true}
		uc := newTestUseCase(a, nil)
		out, err := uc.Ask(ctx, wellness.AskInput{Text: "damn, how do I fix my budget?"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Blocked || out.Message != responder.BlockedMessage {
			t.Errorf("expected blocked redirect, got %+v", out)
		}
		if a.calls() != 0 {
			t.Errorf("expected no provider calls, got %d", a.calls())
		}
	})

	t.Run("Unavailable", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.Ask(ctx, wellness.AskInput{Text: "how do I save?"})
		if !errors.Is(err, wellness.ErrAssistantUnavailable) {
			t.Errorf("expected ErrAssistantUnavailable, got %v", err)
		}

		uc = newTestUseCase(&mockAssistant{available: false}, nil)
		_, err = uc.Ask(ctx, wellness.AskInput{Text: "how do I save?"})
		if !errors.Is(err, wellness.ErrAssistantUnavailable) {
			t.Errorf("expected ErrAssistantUnavailable, got %v", err)
		}
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		uc := newTestUseCase(&mockAssistant{available: true, err: errUpstream}, nil)
		_, err := uc.Ask(ctx, wellness.AskInput{Text: "how do I save?"})
		if !errors.Is(err, wellness.ErrUpstreamFailed) {
			t.Errorf("expected ErrUpstreamFailed, got %v", err)
		}
	})

	t.Run("Empty Reply", func(t *testing.T) {
		uc := newTestUseCase(&mockAssistant{available: true, resp: &llmprovider.Response{Text: "  "}}, nil)
		_, err := uc.Ask(ctx, wellness.AskInput{Text: "how do I save?"})
		if !errors.Is(err, wellness.ErrEmptyReply) {
			t.Errorf("expected ErrEmptyReply, got %v", err)
		}
	})

	t.Run("Success With Context", func(t *testing.T) {
		a := &mockAssistant{
			available: true,
			resp:      &llmprovider.Response{Text: " Try a no-spend day. ", ProviderName: "gemini", ModelName: "gemini-test"},
		}
		uc := newTestUseCase(a, nil)
		out, err := uc.Ask(ctx, wellness.AskInput{
			Text:         "how do I save?",
			Mood:         "stressed",
			Budget:       ptrFloat(3000),
			DaysToPayday: ptrInt(6),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "Try a no-spend day." || out.Provider != "gemini" || out.Model != "gemini-test" {
			t.Errorf("unexpected output: %+v", out)
		}

		req := a.requests[0]
		if len(req.Messages) != 1 || req.Messages[0].Role != llmprovider.RoleUser {
			t.Fatalf("unexpected messages: %+v", req.Messages)
		}
		for _, want := range []string{"Current mood: stressed", "Remaining budget: ₦3000", "Days to payday: 6", "Daily allowance: ₦500"} {
			if !strings.Contains(req.SystemInstruction, want) {
				t.Errorf("system instruction missing %q", want)
			}
		}
	})
}

func TestBuildSystemInstruction_NoContext(t *testing.T) {
	got := buildSystemInstruction("", "", nil, nil)
	if got != coachSystemPrompt {
		t.Errorf("expected bare persona prompt, got %q", got)
	}
}

func TestTranscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil Content", func(t *testing.T) {
		uc := newTestUseCase(nil, &mockTranscriber{})
		_, err := uc.Transcribe(ctx, wellness.TranscribeInput{Filename: "a.mp3"})
		if !errors.Is(err, wellness.ErrEmptyAudio) {
			t.Errorf("expected ErrEmptyAudio, got %v", err)
		}
	})

	t.Run("Unavailable", func(t *testing.T) {
		uc := newTestUseCase(nil, nil)
		_, err := uc.Transcribe(ctx, wellness.TranscribeInput{Filename: "a.mp3", Content: strings.NewReader("x")})
		if !errors.Is(err, wellness.ErrTranscriberUnavailable) {
			t.Errorf("expected ErrTranscriberUnavailable, got %v", err)
		}
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		uc := newTestUseCase(nil, &mockTranscriber{err: errUpstream})
		_, err := uc.Transcribe(ctx, wellness.TranscribeInput{Filename: "a.mp3", Content: strings.NewReader("x")})
		if !errors.Is(err, wellness.ErrUpstreamFailed) {
			t.Errorf("expected ErrUpstreamFailed, got %v", err)
		}
	})

	t.Run("Success With Reply", func(t *testing.T) {
		tr := &mockTranscriber{text: "time for a check-in"}
		uc := newTestUseCase(nil, tr)
		out, err := uc.Transcribe(ctx, wellness.TranscribeInput{Filename: "note.m4a", Content: strings.NewReader("audio"), Reply: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Text != "time for a check-in" {
			t.Errorf("unexpected transcript %q", out.Text)
		}
		if out.Reply == nil || out.Reply.Category != responder.CategoryCheckIn {
			t.Errorf("expected check-in reply, got %+v", out.Reply)
		}
		if tr.gotName != "note.m4a" || string(tr.gotBytes) != "audio" {
			t.Errorf("transcriber got %q/%q", tr.gotName, tr.gotBytes)
		}
	})

	t.Run("Success Without Reply", func(t *testing.T) {
		uc := newTestUseCase(nil, &mockTranscriber{text: "hello"})
		out, _ := uc.Transcribe(ctx, wellness.TranscribeInput{Filename: "a.wav", Content: strings.NewReader("x")})
		if out.Reply != nil {
			t.Error("expected no reply")
		}
	})
}

func TestCapabilities(t *testing.T) {
	ctx := context.Background()

	got := newTestUseCase(nil, nil).Capabilities(ctx)
	if got.Assistant || got.Transcription {
		t.Errorf("expected nothing wired, got %+v", got)
	}

	got = newTestUseCase(&mockAssistant{available: false}, &mockTranscriber{}).Capabilities(ctx)
	if got.Assistant || !got.Transcription {
		t.Errorf("expected transcription only, got %+v", got)
	}

	got = newTestUseCase(&mockAssistant{available: true}, nil).Capabilities(ctx)
	if !got.Assistant || got.Transcription {
		t.Errorf("expected assistant only, got %+v", got)
	}
}
