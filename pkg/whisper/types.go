package whisper

import (
	"net/http"
	"time"
)

// Config holds transcription client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls an OpenAI-compatible audio transcription endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// TranscriptionResponse is the JSON body returned by the endpoint.
type TranscriptionResponse struct {
	Text string `json:"text"`
}

// ErrorResponse is the error body returned on non-200 status.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
