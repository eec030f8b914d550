package shift

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	shifts := r.Group("/shifts")
	{
		shifts.GET("", middleware.RBACAuthorize(rbacService, "shift", "read"), handler.GetAll)
		shifts.GET("/:id", middleware.RBACAuthorize(rbacService, "shift", "read"), handler.GetByID)
		shifts.POST("", middleware.RBACAuthorize(rbacService, "shift", "manage"), handler.Create)
		shifts.PUT("/:id", middleware.RBACAuthorize(rbacService, "shift", "manage"), handler.Update)
		shifts.DELETE("/:id", middleware.RBACAuthorize(rbacService, "shift", "manage"), handler.Delete)
	}
}
