package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/truenorthmaterials/intake/internal/api/dto/common"
	"github.com/truenorthmaterials/intake/internal/logging"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a 500 response and logs the stack trace.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logging.GetLogger().Error("Panic recovered: %s %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.GetString("RequestID"),
					err,
					debug.Stack(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					common.NewErrorResponse(common.ErrCodeInternalServer, "Internal server error", nil))
			}
		}()

		c.Next()
	}
}
