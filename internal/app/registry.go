package app

import (
	"database/sql"

	"go-mrf/internal/config"
	"go-mrf/internal/dashboard"
	"go-mrf/internal/manager"
	"go-mrf/internal/messaging/kafka"
	"go-mrf/internal/middleware"
	"go-mrf/internal/requisition"
	"go-mrf/internal/rolegate"
	"go-mrf/internal/rolemember"
	"go-mrf/internal/shared/counter"
	"go-mrf/internal/workflow"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	gate *rolegate.Gate,
	roleMembers rolemember.Service,
	cfg *config.Config,
) {
	// --- Repositories ---
	requisitionRepo := requisition.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	managerRepo := manager.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	engine := workflow.NewEngine(gate)
	requisitionService := requisition.NewService(db, requisitionRepo, counterRepo, outboxRepo, gate, engine)
	managerService := manager.NewService(db, managerRepo, rdb)
	dashboardService := dashboard.NewService(requisitionRepo, managerService, gate, rdb)

	// --- Handlers ---
	requisitionHandler := requisition.NewHandler(requisitionService)
	managerHandler := manager.NewHandler(managerService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	roleMemberHandler := rolemember.NewHandler(roleMembers)

	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(50, 100))
	{
		requisition.RegisterRoutes(api, requisitionHandler, cfg.JWTSecret, rdb)
		manager.RegisterRoutes(api, managerHandler, cfg.JWTSecret, gate)
		dashboard.RegisterRoutes(api, dashboardHandler, cfg.JWTSecret)
		rolemember.RegisterRoutes(api, roleMemberHandler, cfg.JWTSecret, gate)
	}
}
