package handler

import (
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	appshop "github.com/petshop/backend/internal/application/shop"
)

// MetricsHandler serves the token-scoped business metrics endpoint.
// Unlike the Prometheus scrape endpoint this one sits behind the token
// gate, so every caller only sees counters over its own data.
type MetricsHandler struct {
	BaseHandler
	metricsService *appshop.MetricsService
	started        time.Time
}

// NewMetricsHandler creates a new MetricsHandler
func NewMetricsHandler(metricsService *appshop.MetricsService) *MetricsHandler {
	return &MetricsHandler{
		metricsService: metricsService,
		started:        time.Now(),
	}
}

// Metrics godoc
// @ID           businessMetrics
// @Summary      Business metrics for the calling token
// @Description  Counters over the caller's visible customers, baskets and items, plus process stats
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Envelope
// @Failure      401 {object} dto.Envelope
// @Security     BearerAuth
// @Router       /v1/metrics [get]
func (h *MetricsHandler) Metrics(c *gin.Context) {
	business, err := h.metricsService.Snapshot(c.Request.Context(), access(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{
		"business": business,
		"system": gin.H{
			"uptime":     time.Since(h.started).Round(time.Second).String(),
			"goroutines": runtime.NumGoroutine(),
			"go_version": runtime.Version(),
		},
	})
}
