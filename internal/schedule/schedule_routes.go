package schedule

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	idempotent := middleware.Idempotency(rdb)

	schedules := r.Group("/employee-shifts")
	{
		schedules.GET("", middleware.RBACAuthorize(rbacService, "schedule", "read"), handler.GetAll)
		schedules.GET("/:id", middleware.RBACAuthorize(rbacService, "schedule", "read"), handler.GetByID)
		schedules.POST("", middleware.RBACAuthorize(rbacService, "schedule", "create"), idempotent, handler.Assign)
		schedules.POST("/bulk", middleware.RBACAuthorize(rbacService, "schedule", "create"), idempotent, handler.BulkAssign)
		schedules.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "schedule", "update"), handler.UpdateStatus)
		schedules.DELETE("/:id", middleware.RBACAuthorize(rbacService, "schedule", "delete"), handler.Delete)
	}
}
