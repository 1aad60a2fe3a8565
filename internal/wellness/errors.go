package wellness

import "errors"

var (
	ErrEmptyText              = errors.New("text is required")
	ErrEmptyAudio             = errors.New("audio file is required")
	ErrAssistantUnavailable   = errors.New("assistant is not configured")
	ErrTranscriberUnavailable = errors.New("transcription is not configured")
	ErrUpstreamFailed         = errors.New("upstream service failed")
	ErrEmptyReply             = errors.New("assistant returned an empty reply")
)
