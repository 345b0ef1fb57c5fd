package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academics/internal/app/models/dto"
	"github.com/yigit/academics/internal/pkg/logger"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness endpoint
type HealthController struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db, timeout: 2 * time.Second}
}

// HealthStatus is the payload of the health endpoint
type HealthStatus struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"up"`
}

// Check reports service and database status
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{result=controllers.HealthStatus} "Service healthy"
// @Failure 503 {object} dto.APIResponse{result=controllers.HealthStatus} "Database unreachable"
// @Router /health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), c.timeout)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check failed to reach the database")
		ctx.JSON(http.StatusServiceUnavailable, dto.APIResponse{
			Message: "Service unavailable.",
			Result:  HealthStatus{Status: "degraded", Database: "down"},
			Errors:  err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewResponse("Service is healthy.", HealthStatus{Status: "ok", Database: "up"}))
}
