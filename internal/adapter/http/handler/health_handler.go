package handler

import (
	"context"
	"net/http"
	"time"

	"qa-banking-sandbox/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a handler that pings every dependency and reports
// per-dependency status. Any failure turns the overall status to 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		deps := make(map[string]string, len(checkers))
		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				deps[checker.Name()] = "unhealthy"
				status = http.StatusServiceUnavailable
				continue
			}
			deps[checker.Name()] = "healthy"
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "unhealthy"
		}

		c.JSON(status, gin.H{
			"status":       overall,
			"dependencies": deps,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
