package utils

import (
	"net/http"

	"github.com/truenorthmaterials/intake/internal/api/dto/common"
	"github.com/truenorthmaterials/intake/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}

// HandleAPIError logs the error and sends a consistent error response.
// Error details are only exposed outside release mode.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	if err != nil {
		logging.GetLogger().Error("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, message, err)
	}

	var details interface{}
	if gin.Mode() != gin.ReleaseMode && err != nil {
		details = err.Error()
	}

	c.JSON(status, common.NewErrorResponse(code, message, details))
}
