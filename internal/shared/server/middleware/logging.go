package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"sitestudio-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		projectID, _ := c.Get("projectId")
		structureID, _ := c.Get("structureId")
		businessType, _ := c.Get("businessType")

		telemetry.Info("request.complete", map[string]any{
			"request_id":    RequestIDFromContext(c),
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        c.Writer.Status(),
			"duration_ms":   float64(latency.Microseconds()) / 1000.0,
			"operator_id":   OperatorIDFromContext(c),
			"tenant_id":     TenantIDFromContext(c),
			"project_id":    projectID,
			"structure_id":  structureID,
			"business_type": businessType,
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
		})
	}
}
