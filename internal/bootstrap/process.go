package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-mrf/internal/config"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// NewLogger returns the JSON production logger for config.EnvProduction and
// the console development logger otherwise.
func NewLogger(env string) (*zap.Logger, error) {
	if env == config.EnvProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Run is the shared main of every binary: it loads .env, reads config,
// installs the global logger and calls run with a ctx that is cancelled on
// SIGINT or SIGTERM. A run error is fatal.
func Run(component string, run func(ctx context.Context, cfg *config.Config) error) {
	_ = godotenv.Load()

	cfg, cfgErr := config.FromEnv()
	env := config.EnvDevelopment
	if cfgErr == nil {
		env = cfg.Env
	}

	logger, err := NewLogger(env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	logger = logger.With(zap.String("component", component))
	zap.ReplaceGlobals(logger)

	if cfgErr != nil {
		logger.Fatal("load config failed", zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Fatal(component+" exited with error", zap.Error(err))
	}
	logger.Info(component + " stopped")
}
