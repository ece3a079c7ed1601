package main

import (
	"context"
	"time"

	"go-mrf/internal/app"
	"go-mrf/internal/bootstrap"
	"go-mrf/internal/config"
	"go-mrf/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	bootstrap.Run("api", func(ctx context.Context, cfg *config.Config) error {
		apperror.Init()
		if cfg.Env == config.EnvProduction {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.Default()

		if err := app.BuildApp(ctx, r, cfg); err != nil {
			return err
		}

		return bootstrap.Serve(ctx, r, bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}, bootstrap.NewZapAuditLogger(zap.L()))
	})
}
