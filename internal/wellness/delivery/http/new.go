package http

import (
	"github.com/gin-gonic/gin"

	"wellness-assistant/internal/wellness"
	"wellness-assistant/pkg/log"
)

// DefaultMaxUploadBytes caps /transcribe uploads when no limit is configured.
const DefaultMaxUploadBytes int64 = 25 << 20

// Handler is the public interface for the wellness HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	StartCheckIn(c *gin.Context)
	GetChallenge(c *gin.Context)
	FundsAlert(c *gin.Context)
	WellnessTip(c *gin.Context)
	HealthSwap(c *gin.Context)
	Ask(c *gin.Context)
	Transcribe(c *gin.Context)
}

type handler struct {
	l              log.Logger
	uc             wellness.UseCase
	maxUploadBytes int64
}

// New creates a new HTTP handler for the wellness domain.
func New(l log.Logger, uc wellness.UseCase, maxUploadBytes int64) Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &handler{
		l:              l,
		uc:             uc,
		maxUploadBytes: maxUploadBytes,
	}
}
