package http

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"wellness-assistant/internal/wellness"
	pkgErrors "wellness-assistant/pkg/errors"
	"wellness-assistant/pkg/response"
)

var errUploadTooLarge = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "upload too large")

// uploadedFile is a multipart file part with its client-supplied name.
type uploadedFile struct {
	multipart.File
	Name string
}

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors return nil.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, wellness.ErrEmptyText), errors.Is(err, wellness.ErrEmptyAudio):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, wellness.ErrAssistantUnavailable), errors.Is(err, wellness.ErrTranscriberUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, wellness.ErrUpstreamFailed), errors.Is(err, wellness.ErrEmptyReply):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "upstream service failed")
	default:
		return nil
	}
}

// fail logs a use-case error and writes the mapped response.
func (h *handler) fail(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	httpErr := h.mapError(err)
	if httpErr == nil {
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.InternalError(c, err)
		return
	}
	h.l.Warnf(ctx, "%s: %v", op, err)
	response.Error(c, httpErr)
}
