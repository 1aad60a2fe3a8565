package whisper

import "time"

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "whisper-1"
	DefaultTimeout = 120 * time.Second

	transcriptionsPath = "/audio/transcriptions"
)
