package handlers

import (
	"net/http"
	"strings"

	"github.com/truenorthmaterials/intake/internal/api/dto/common"
	"github.com/truenorthmaterials/intake/internal/api/dto/v1/submission"
	"github.com/truenorthmaterials/intake/internal/forms"
	"github.com/truenorthmaterials/intake/internal/utils"

	"github.com/gin-gonic/gin"
)

// FormsHandler exposes the form intake pipeline over HTTP.
type FormsHandler struct {
	pipeline *forms.Pipeline
}

// NewFormsHandler creates a new forms handler.
func NewFormsHandler(pipeline *forms.Pipeline) *FormsHandler {
	return &FormsHandler{pipeline: pipeline}
}

// Submit handles a form submission. Accepts either a JSON body
// ({formType, fields}) or a regular urlencoded/multipart form post.
func (h *FormsHandler) Submit(c *gin.Context) {
	req, ok := h.parseRequest(c)
	if !ok {
		return
	}

	outcome := h.pipeline.Submit(c.Request.Context(), req)

	c.JSON(statusFor(outcome), submission.SubmissionResponse{
		Success: outcome.Success,
		Message: outcome.Message,
		Errors:  outcome.Errors,
	})
}

func (h *FormsHandler) parseRequest(c *gin.Context) (forms.Request, bool) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var body submission.SubmissionRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeBadRequest, "Invalid request body")
			return forms.Request{}, false
		}
		return forms.Request{FormType: body.FormType, Fields: body.Fields}, true
	}

	// Flatten a form post to a field map; repeated keys keep the first value.
	if err := c.Request.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeBadRequest, "Invalid request body")
		return forms.Request{}, false
	}

	fields := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	return forms.Request{FormType: fields["formType"], Fields: fields}, true
}

func statusFor(outcome forms.Outcome) int {
	switch {
	case outcome.Success:
		return http.StatusOK
	case outcome.Message == forms.MsgInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
