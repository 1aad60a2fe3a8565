package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the assistant endpoints. Paths match the legacy service so existing clients keep working.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
	rg.POST("/start-checkin", h.StartCheckIn)
	rg.POST("/get-challenge", h.GetChallenge)
	rg.POST("/funds-alert", h.FundsAlert)
	rg.POST("/wellness-tip", h.WellnessTip)
	rg.POST("/health-swap", h.HealthSwap)
	rg.POST("/ask", h.Ask)
	rg.POST("/transcribe", h.Transcribe)
}
