package handlers

import (
	"github.com/truenorthmaterials/intake/internal/utils"
	"github.com/truenorthmaterials/intake/internal/version"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness. The service keeps no persistent
// state, so there is nothing further to probe.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, gin.H{
		"status": "ok",
		"build":  version.GetBuildInfo(),
	})
}
