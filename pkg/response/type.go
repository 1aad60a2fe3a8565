package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500
)

// Resp is the standard JSON response body for system routes and errors.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// MsgResp is the envelope for assistant replies.
type MsgResp struct {
	Msg      string `json:"msg"`
	Category string `json:"category,omitempty"`
}
