package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"sitestudio-backend/internal/shared/server/respond"
	"sitestudio-backend/internal/shared/telemetry"
)

// Recovery turns panics in handlers into a 500 error envelope and logs the stack
// with the request and operator that triggered it.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			fields := map[string]any{
				"request_id":  RequestIDFromContext(c),
				"operator_id": OperatorIDFromContext(c),
				"error":       rec,
				"stack":       string(debug.Stack()),
				"path":        c.Request.URL.Path,
				"method":      c.Request.Method,
			}
			if structureID := c.GetString("structureId"); structureID != "" {
				fields["structure_id"] = structureID
			}
			telemetry.Error("panic", fields)
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error", nil)
		}()
		c.Next()
	}
}
