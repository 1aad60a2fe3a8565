package http

import (
	"github.com/gin-gonic/gin"

	"wellness-assistant/internal/responder"
	"wellness-assistant/internal/wellness"
	"wellness-assistant/pkg/response"
)

// Chat godoc
// @Summary     Reply to a chat message
// @Description Classifies the message with the keyword rules and returns a canned reply.
// @Tags        Wellness
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional user context"
// @Success     200  {object} response.MsgResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Chat", err)
		return
	}

	response.Msg(c, output.Message, output.Category.String(), nil)
}

// StartCheckIn godoc
// @Summary     Start a check-in
// @Description Returns a random check-in question.
// @Tags        Wellness
// @Produce     json
// @Success     200 {object} response.MsgResp
// @Router      /start-checkin [POST]
func (h *handler) StartCheckIn(c *gin.Context) {
	output, err := h.uc.CheckIn(c.Request.Context())
	if err != nil {
		h.fail(c, "uc.CheckIn", err)
		return
	}
	response.Msg(c, output.Message, output.Category.String(), nil)
}

// GetChallenge godoc
// @Summary     Suggest a challenge
// @Description Returns a random savings challenge.
// @Tags        Wellness
// @Produce     json
// @Success     200 {object} response.MsgResp
// @Router      /get-challenge [POST]
func (h *handler) GetChallenge(c *gin.Context) {
	output, err := h.uc.Challenge(c.Request.Context())
	if err != nil {
		h.fail(c, "uc.Challenge", err)
		return
	}
	response.Msg(c, output.Message, output.Category.String(), nil)
}

// FundsAlert godoc
// @Summary     Render a low-funds alert
// @Description Always renders an alert for the given budget, with the daily allowance until payday.
// @Tags        Wellness
// @Produce     json
// @Param       budget query number  true "Remaining budget"
// @Param       days   query integer true "Days to payday"
// @Success     200 {object} fundsAlertResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /funds-alert [POST]
func (h *handler) FundsAlert(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFundsAlertReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.FundsAlert(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.FundsAlert", err)
		return
	}

	response.Msg(c, output.Message, responder.CategoryBudgetAlert.String(), newFundsAlertExtra(output))
}

// WellnessTip godoc
// @Summary     Get a wellness tip
// @Description Returns the tip for a known context label, or a generic tip.
// @Tags        Wellness
// @Produce     json
// @Param       context query string false "stress, budget relief, detox or mental health"
// @Success     200 {object} response.MsgResp
// @Router      /wellness-tip [POST]
func (h *handler) WellnessTip(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWellnessTipReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.WellnessTip(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.WellnessTip", err)
		return
	}
	response.Msg(c, output.Message, output.Category.String(), nil)
}

// HealthSwap godoc
// @Summary     Suggest a health swap
// @Description Returns a random spend-to-swap example.
// @Tags        Wellness
// @Produce     json
// @Success     200 {object} response.MsgResp
// @Router      /health-swap [POST]
func (h *handler) HealthSwap(c *gin.Context) {
	output, err := h.uc.HealthSwap(c.Request.Context())
	if err != nil {
		h.fail(c, "uc.HealthSwap", err)
		return
	}
	response.Msg(c, output.Message, output.Category.String(), nil)
}

// Ask godoc
// @Summary     Ask the assistant
// @Description Relays a free-form question to the configured LLM providers. Blocked text is answered locally.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question and optional user context"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Failure     503 {object} response.Resp "Assistant not configured"
// @Router      /ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.fail(c, "uc.Ask", err)
		return
	}

	response.Msg(c, output.Message, askCategory(output), newAskExtra(output))
}

// Transcribe godoc
// @Summary     Transcribe a voice note
// @Description Relays an audio upload to the transcription service. With reply=true the transcript is also answered.
// @Tags        Assistant
// @Accept      multipart/form-data
// @Produce     json
// @Param       file  formData file    true  "Audio file"
// @Param       reply query    boolean false "Also answer the transcript"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     413 {object} response.Resp "Upload too large"
// @Failure     502 {object} response.Resp "Upstream failure"
// @Failure     503 {object} response.Resp "Transcription not configured"
// @Router      /transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	req, file, err := h.processTranscribeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	output, err := h.uc.Transcribe(ctx, wellness.TranscribeInput{
		Filename: file.Name,
		Content:  file,
		Reply:    req.Reply,
	})
	if err != nil {
		h.fail(c, "uc.Transcribe", err)
		return
	}

	response.Msg(c, output.Text, "", newTranscribeExtra(output))
}
