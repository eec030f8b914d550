package payroll

import (
	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	idempotent := middleware.Idempotency(rdb)

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetAll)
		payrolls.GET("/stats", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetStats)
		payrolls.GET("/:id", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetByID)
		payrolls.GET("/:id/breakdown", middleware.RBACAuthorize(rbacService, "payroll", "read"), handler.GetBreakdown)
		payrolls.POST("", middleware.RBACAuthorize(rbacService, "payroll", "create"), idempotent, handler.Create)
		payrolls.POST("/generate", middleware.RBACAuthorize(rbacService, "payroll", "create"), idempotent, handler.Generate)
		payrolls.PUT("/:id/recalculate", middleware.RBACAuthorize(rbacService, "payroll", "create"), handler.Recalculate)
		// The generic endpoints can reach paid, so they need the strongest permission.
		payrolls.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "payroll", "pay"), handler.UpdateStatus)
		payrolls.POST("/bulk-status", middleware.RBACAuthorize(rbacService, "payroll", "pay"), idempotent, handler.BulkUpdateStatus)
		payrolls.POST("/:id/finalize", middleware.RBACAuthorize(rbacService, "payroll", "finalize"), handler.Finalize)
		payrolls.POST("/:id/mark-paid", middleware.RBACAuthorize(rbacService, "payroll", "pay"), handler.MarkPaid)
		payrolls.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payroll", "delete"), handler.Delete)
	}
}
