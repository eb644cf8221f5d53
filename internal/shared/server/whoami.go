package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitestudio-backend/internal/shared/server/middleware"
	"sitestudio-backend/internal/shared/server/respond"
)

// registerWhoAmIRoutes attaches the /whoami endpoint.
func registerWhoAmIRoutes(rg *gin.RouterGroup) {
	rg.GET("/whoami", whoAmIHandler)
}

func whoAmIHandler(c *gin.Context) {
	operatorID := middleware.OperatorIDFromContext(c)
	if operatorID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
		return
	}

	response := gin.H{
		"operatorId": operatorID,
	}
	if email := middleware.OperatorEmailFromContext(c); email != "" {
		response["email"] = email
	}
	if tenant := middleware.TenantIDFromContext(c); tenant != "" {
		response["tenantId"] = tenant
	}

	respond.JSON(c, http.StatusOK, response)
}
