package middleware

import (
	"time"

	"github.com/truenorthmaterials/intake/internal/logging"
	"github.com/truenorthmaterials/intake/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request through the shared logger.
func RequestLogger() gin.HandlerFunc {
	logger := logging.GetLogger()

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("%3d | %13v | %15s | %-7s %s",
			c.Writer.Status(),
			time.Since(start),
			utils.GetRealIP(c),
			method,
			path,
		)
	}
}
