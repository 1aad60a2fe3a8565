package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"wellness-assistant/internal/wellness"
	"wellness-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "wellness-assistant"

	statusHealthy  = "healthy"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusAlive    = "alive"
)

// StatusReporter tells the health routes which optional collaborators are wired.
type StatusReporter interface {
	Capabilities(ctx context.Context) wellness.Capabilities
}

type collaboratorsResp struct {
	Assistant     bool `json:"assistant"`
	Transcription bool `json:"transcription"`
}

type healthResp struct {
	Status        string             `json:"status"`
	Service       string             `json:"service"`
	Version       string             `json:"version"`
	Environment   string             `json:"environment,omitempty"`
	Collaborators *collaboratorsResp `json:"collaborators,omitempty"`
}

func (srv HTTPServer) healthPayload(ctx context.Context, status string) healthResp {
	resp := healthResp{
		Status:      status,
		Service:     ServiceName,
		Version:     HealthVersion,
		Environment: srv.environment,
	}
	if srv.status != nil {
		caps := srv.status.Capabilities(ctx)
		resp.Collaborators = &collaboratorsResp{Assistant: caps.Assistant, Transcription: caps.Transcription}
	}
	return resp
}

// healthCheck reports service identity and which relays (/ask, /transcribe) are wired.
// @Summary Health Check
// @Description Service identity plus whether the assistant and transcription relays are configured
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.healthPayload(c.Request.Context(), statusHealthy))
}

// readyCheck always answers 200: the keyword routes need no collaborator.
// A missing relay only downgrades the status to "degraded".
// @Summary Readiness Check
// @Description Ready, or degraded when a relay collaborator is not configured
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := srv.healthPayload(c.Request.Context(), statusReady)
	if cs := resp.Collaborators; cs != nil && (!cs.Assistant || !cs.Transcription) {
		resp.Status = statusDegraded
	}
	response.OK(c, resp)
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{"status": statusAlive})
}
