package attendance

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	idempotent := middleware.Idempotency(rdb)

	attendances := r.Group("/attendances")
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetAll)
		attendances.GET("/:id", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetByID)
		attendances.POST("", middleware.RBACAuthorize(rbacService, "attendance", "create"), idempotent, h.Create)
		attendances.POST("/bulk-status", middleware.RBACAuthorize(rbacService, "attendance", "approve"), idempotent, h.BulkUpdateStatus)
		attendances.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "attendance", "approve"), h.UpdateStatus)
		attendances.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "attendance", "approve"), h.Approve)
		attendances.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "attendance", "approve"), h.Reject)
		attendances.DELETE("/:id", middleware.RBACAuthorize(rbacService, "attendance", "delete"), h.Delete)
	}
}
