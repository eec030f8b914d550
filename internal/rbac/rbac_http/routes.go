package rbac_http

import (
	"go-workforce/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to already carry the gateway identity middleware.
func RegisterRoutes(r *gin.RouterGroup, handler *rbac.Handler) {
	group := r.Group("/rbac")
	{
		group.POST("/enforce", handler.Enforce)
		group.GET("/permissions/me", handler.MyPermissions)
	}
}
