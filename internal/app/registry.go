package app

import (
	"go-workforce/internal/attendance"
	"go-workforce/internal/config"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/middleware"
	"go-workforce/internal/payroll"
	"go-workforce/internal/rbac"
	"go-workforce/internal/rbac/infra"
	"go-workforce/internal/rbac/rbac_http"
	"go-workforce/internal/schedule"
	"go-workforce/internal/shared/counter"
	"go-workforce/internal/shift"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(router *gin.Engine, cfg *config.Config, in *Infra) error {
	logger := zap.L()

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(in.GormDB)
	counterRepo := counter.NewRepository(in.GormDB)
	outboxRepo := kafka.NewOutboxRepository(in.DB)
	payrollRepo := payroll.NewRepository(in.GormDB)
	scheduleRepo := schedule.NewRepository(in.GormDB)
	shiftRepo := shift.NewRepository(in.GormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(cfg.RBAC.ModelPath, cfg.RBAC.PolicyPath)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	attendanceService := attendance.NewService(in.DB, attendanceRepo, outboxRepo, in.Audit, cfg.Attendance.WorkflowMode, logger)
	statsCache := payroll.NewStatsCache(in.Redis, cfg.Payroll.StatsCacheTTL, logger)
	payrollService := payroll.NewService(
		in.DB,
		payrollRepo,
		attendanceRepo,
		outboxRepo,
		counterRepo,
		statsCache,
		in.Audit,
		payroll.Options{StandardMonthlyHours: cfg.Payroll.StandardMonthlyHours},
		logger,
	)
	scheduleService := schedule.NewService(in.DB, scheduleRepo, shiftRepo, counterRepo, in.Audit, logger)
	shiftService := shift.NewService(in.DB, shiftRepo, counterRepo, in.Audit, logger)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	rbacHandler := rbac.NewHandler(rbacService)
	scheduleHandler := schedule.NewHandler(scheduleService, logger)
	shiftHandler := shift.NewHandler(shiftService, logger)

	limit := rate.Limit(cfg.App.RateLimitRPS)
	router.Use(
		middleware.ContextLogger(logger),
		middleware.Locale(),
		middleware.RateLimitByIP(limit*2, cfg.App.RateLimitBurst*2),
	)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.GatewayIdentity(),
		middleware.RateLimitByActor(limit, cfg.App.RateLimitBurst),
	)
	{
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, in.Redis)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, in.Redis)
		schedule.RegisterRoutes(api, scheduleHandler, rbacService, in.Redis)
		shift.RegisterRoutes(api, shiftHandler, rbacService)
		rbac_http.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
