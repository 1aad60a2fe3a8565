package http

import (
	"github.com/gin-gonic/gin"

	"wellness-assistant/internal/responder"
	"wellness-assistant/internal/wellness"
	"wellness-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Text           *string          `json:"text"            binding:"required"`
	Username       string           `json:"username"`
	Mood           string           `json:"mood"`
	Budget         *float64         `json:"budget"`
	DaysToPayday   *int             `json:"days_to_payday"`
	Habits         []string         `json:"habits"`
	PastChallenges []map[string]any `json:"past_challenges"`
}

func (r chatReq) toInput() wellness.ChatInput {
	return wellness.ChatInput{
		Text:           *r.Text,
		Username:       r.Username,
		Mood:           r.Mood,
		Budget:         r.Budget,
		DaysToPayday:   r.DaysToPayday,
		Habits:         r.Habits,
		PastChallenges: r.PastChallenges,
	}
}

// ---

type fundsAlertReq struct {
	Budget *float64 `form:"budget" binding:"required"`
	Days   *int     `form:"days"   binding:"required"`
}

func (r fundsAlertReq) toInput() wellness.FundsAlertInput {
	return wellness.FundsAlertInput{Budget: *r.Budget, Days: *r.Days}
}

// ---

type wellnessTipReq struct {
	Context string `form:"context"`
}

func (r wellnessTipReq) toInput() wellness.WellnessTipInput {
	return wellness.WellnessTipInput{Context: r.Context}
}

// ---

type askReq struct {
	Text         string   `json:"text"           binding:"required"`
	Username     string   `json:"username"`
	Mood         string   `json:"mood"`
	Budget       *float64 `json:"budget"`
	DaysToPayday *int     `json:"days_to_payday"`
}

func (r askReq) toInput() wellness.AskInput {
	return wellness.AskInput{
		Text:         r.Text,
		Username:     r.Username,
		Mood:         r.Mood,
		Budget:       r.Budget,
		DaysToPayday: r.DaysToPayday,
	}
}

// ---

type transcribeReq struct {
	Reply bool `form:"reply"`
}

// --- Response DTOs ---
// Each reply is sent through response.Msg; these types describe the extra keys for the docs.

type fundsAlertResp struct {
	Msg            string  `json:"msg"`
	Category       string  `json:"category"`
	PerDay         float64 `json:"per_day"`
	BelowThreshold bool    `json:"below_threshold"`
}

func newFundsAlertExtra(out wellness.FundsAlertOutput) gin.H {
	return gin.H{
		"per_day":         out.PerDay,
		"below_threshold": out.BelowThreshold,
	}
}

type askResp struct {
	Msg      string `json:"msg"`
	Category string `json:"category,omitempty"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	Cached   bool   `json:"cached"`
}

func newAskExtra(out wellness.AskOutput) gin.H {
	extra := gin.H{"cached": out.Cached}
	if out.Provider != "" {
		extra["provider"] = out.Provider
	}
	if out.Model != "" {
		extra["model"] = out.Model
	}
	return extra
}

func askCategory(out wellness.AskOutput) string {
	if out.Blocked {
		return responder.CategoryBlocked.String()
	}
	return ""
}

type transcribeResp struct {
	Msg   string            `json:"msg"`
	Reply *response.MsgResp `json:"reply,omitempty"`
}

func newTranscribeExtra(out wellness.TranscribeOutput) gin.H {
	if out.Reply == nil {
		return nil
	}
	return gin.H{
		"reply": response.MsgResp{Msg: out.Reply.Message, Category: out.Reply.Category.String()},
	}
}
