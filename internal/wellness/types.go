package wellness

import (
	"io"

	"wellness-assistant/internal/responder"
)

// --- UseCase Inputs ---

type ChatInput struct {
	Text           string
	Username       string
	Mood           string
	Budget         *float64
	DaysToPayday   *int
	Habits         []string
	PastChallenges []map[string]any
}

type FundsAlertInput struct {
	Budget float64
	Days   int
}

type WellnessTipInput struct {
	Context string
}

type AskInput struct {
	Text         string
	Username     string
	Mood         string
	Budget       *float64
	DaysToPayday *int
}

type TranscribeInput struct {
	Filename string
	Content  io.Reader
	// Reply also runs the transcript through the keyword responder.
	Reply bool
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Category responder.Category
	Message  string
}

type MessageOutput struct {
	Category responder.Category
	Message  string
}

type FundsAlertOutput struct {
	Message        string
	PerDay         float64
	BelowThreshold bool
}

type AskOutput struct {
	Message  string
	Provider string
	Model    string
	Blocked  bool
	Cached   bool
}

type TranscribeOutput struct {
	Text  string
	Reply *ChatOutput
}

type Capabilities struct {
	Assistant     bool
	Transcription bool
}
