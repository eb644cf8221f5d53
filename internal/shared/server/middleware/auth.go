package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sitestudio-backend/internal/shared/auth"
	"sitestudio-backend/internal/shared/server/respond"
)

const (
	operatorIDKey    = "operatorId"
	operatorEmailKey = "operatorEmail"
	tenantIDKey      = "tenantId"
)

// Auth validates operator JWTs and stores identity in context. Outside
// production the X-Operator-Id header is accepted in place of a token.
func Auth(env string) gin.HandlerFunc {
	allowHeader := env != "production"
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader != "" {
			if !strings.HasPrefix(authHeader, "Bearer ") {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
			claims, err := auth.VerifyJWT(token)
			if err != nil {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}
			c.Set(operatorIDKey, claims.Sub)
			if claims.Email != "" {
				c.Set(operatorEmailKey, claims.Email)
			}
			if claims.Tenant != "" {
				c.Set(tenantIDKey, claims.Tenant)
			}
			c.Next()
			return
		}

		operatorID := strings.TrimSpace(c.GetHeader("X-Operator-Id"))
		if !allowHeader || operatorID == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "Missing identity", nil)
			return
		}
		c.Set(operatorIDKey, operatorID)
		c.Next()
	}
}

// OperatorIDFromContext fetches the operator ID set by the auth middleware.
func OperatorIDFromContext(c *gin.Context) string {
	return contextString(c, operatorIDKey)
}

// OperatorEmailFromContext fetches the operator email set by the auth middleware.
func OperatorEmailFromContext(c *gin.Context) string {
	return contextString(c, operatorEmailKey)
}

// TenantIDFromContext fetches the tenant carried by the operator token, if any.
func TenantIDFromContext(c *gin.Context) string {
	return contextString(c, tenantIDKey)
}

func contextString(c *gin.Context, key string) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(key)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
