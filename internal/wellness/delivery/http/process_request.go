package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "wellness-assistant/pkg/errors"
)

// processChatReq binds the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processFundsAlertReq binds the budget and days query parameters. Both are required.
func (h *handler) processFundsAlertReq(c *gin.Context) (fundsAlertReq, error) {
	var req fundsAlertReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processWellnessTipReq binds the optional context query parameter.
func (h *handler) processWellnessTipReq(c *gin.Context) (wellnessTipReq, error) {
	var req wellnessTipReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processAskReq binds the ask request body.
func (h *handler) processAskReq(c *gin.Context) (askReq, error) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return req, nil
}

// processTranscribeReq caps the body size and returns the uploaded file part.
// The caller closes the returned file.
func (h *handler) processTranscribeReq(c *gin.Context) (transcribeReq, *uploadedFile, error) {
	var req transcribeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, nil, pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if c.Request.ContentLength > h.maxUploadBytes {
		return req, nil, errUploadTooLarge
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, nil, errUploadTooLarge
		}
		return req, nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if header.Size == 0 {
		file.Close()
		return req, nil, pkgErrors.NewHTTPError(http.StatusBadRequest, "file is empty")
	}

	return req, &uploadedFile{File: file, Name: header.Filename}, nil
}
