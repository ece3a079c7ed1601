package app

import (
	"context"

	"go-mrf/internal/config"
	"go-mrf/internal/rolemember"
	"go-mrf/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(ctx context.Context, router *gin.Engine, cfg *config.Config) error {
	logger := zap.L().Named("app.api")

	gormDB, err := connection.Postgres(ctx, cfg.Database, connection.DefaultPolicy)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.Redis(ctx, cfg.RedisAddr, connection.DefaultPolicy)
	if err != nil {
		return err
	}

	gate, membership, err := buildGate(cfg)
	if err != nil {
		return err
	}

	roleMembers := rolemember.NewService(rolemember.NewRepository(gormDB), gate, membership)
	if err := roleMembers.Reload(ctx); err != nil {
		logger.Warn("role_members not loaded, using configured roles only", zap.Error(err))
	}
	go rolemember.KeepFresh(ctx, roleMembers, cfg.RoleReload)

	registerModules(router, sqlDB, gormDB, redisClient, gate, roleMembers, cfg)

	logger.Info("api modules registered")
	return nil
}
