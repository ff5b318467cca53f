package handler

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"gorm.io/gorm"
)

type HealthCheckHandler struct {
	db *gorm.DB
}

// NewHealthCheckHandler accepts a nil db, in which case the database
// component check is skipped.
func NewHealthCheckHandler(db *gorm.DB) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components []ComponentStatus `json:"components,omitempty"`
}

type ComponentStatus struct {
	Name    string        `json:"name"`
	Status  string        `json:"status"`
	IsCore  bool          `json:"is_core"`
	Latency time.Duration `json:"latency,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func (h *HealthCheckHandler) AdvancedHealthCheck(ctx context.Context, c *app.RequestContext) {
	status := HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	}

	if h.db != nil {
		status.Components = append(status.Components, h.checkDatabase(ctx))
	}

	if hasCriticalErrors(status.Components) {
		status.Status = "degraded"
		c.JSON(503, status)
		return
	}

	c.JSON(200, status)
}

func (h *HealthCheckHandler) checkDatabase(ctx context.Context) ComponentStatus {
	component := ComponentStatus{
		Name:   "mysql",
		Status: "ok",
		IsCore: true,
	}

	start := time.Now()
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	component.Latency = time.Since(start)

	if err != nil {
		component.Status = "critical"
		component.Error = err.Error()
	}
	return component
}

func hasCriticalErrors(components []ComponentStatus) bool {
	for _, comp := range components {
		if (comp.IsCore && comp.Status != "ok") || comp.Status == "critical" {
			return true
		}
	}
	return false
}
