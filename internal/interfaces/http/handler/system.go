package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing dependency is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler serves health and liveness endpoints
type SystemHandler struct {
	BaseHandler
	db      Pinger
	started time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{
		db:      db,
		started: time.Now(),
	}
}

// Health godoc
// @ID           health
// @Summary      Service health including database connectivity
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]any
// @Failure      503 {object} map[string]any
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	status := http.StatusOK
	database := "up"

	if h.db == nil {
		database = "unknown"
	} else if err := h.db.Ping(); err != nil {
		status = http.StatusServiceUnavailable
		database = "down"
	}

	c.JSON(status, gin.H{
		"status":   statusWord(status),
		"database": database,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
	})
}

func statusWord(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
