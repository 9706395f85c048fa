package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wallet-tracker-api/pkg/database"
)

type HealthController struct {
	db        *database.Database
	startTime time.Time
}

func NewHealthController(db *database.Database) *HealthController {
	return &HealthController{
		db:        db,
		startTime: time.Now(),
	}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Uptime    string    `json:"uptime"`
	Version   string    `json:"version"`
}

type ReadinessResponse struct {
	Ready  bool                   `json:"ready"`
	Checks map[string]CheckResult `json:"checks"`
}

type CheckResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (hc *HealthController) Health(c *gin.Context) {
	dbStatus := "connected"
	if err := hc.db.Ping(); err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Database:  dbStatus,
		Uptime:    time.Since(hc.startTime).String(),
		Version:   "1.0.0",
	})
}

func (hc *HealthController) Readiness(c *gin.Context) {
	checks := make(map[string]CheckResult)
	ready := true

	if err := hc.db.Ping(); err != nil {
		checks["database"] = CheckResult{Status: "fail", Message: err.Error()}
		ready = false
	} else {
		checks["database"] = CheckResult{Status: "pass"}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, ReadinessResponse{Ready: ready, Checks: checks})
}

func (hc *HealthController) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
		"time":   time.Now(),
	})
}
