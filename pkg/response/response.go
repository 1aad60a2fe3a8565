package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "wellness-assistant/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in Resp.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Msg sends 200 JSON using the assistant reply envelope.
// Keys in extra are merged alongside "msg" and "category".
func Msg(c *gin.Context, msg, category string, extra gin.H) {
	if len(extra) == 0 {
		c.JSON(http.StatusOK, MsgResp{Msg: msg, Category: category})
		return
	}

	body := gin.H{"msg": msg}
	if category != "" {
		body["category"] = category
	}
	for k, v := range extra {
		if k == "msg" || k == "category" {
			continue
		}
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Error sends an error response. The status comes from a wrapped *errors.HTTPError, else 400.
func Error(c *gin.Context, err error) {
	code := pkgErrors.StatusCode(err)
	c.JSON(code, Resp{
		ErrorCode: code,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error without leaking err.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
