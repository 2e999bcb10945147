package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/randcut/pkg/http"
	"github.com/lintang-b-s/randcut/pkg/http/usecases"
	"github.com/lintang-b-s/randcut/pkg/logger"
	"github.com/lintang-b-s/randcut/pkg/util"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "enable the process-wide token bucket rate limiter")
)

func main() {
	flag.Parse()

	cfg, err := util.LoadCutConfig()
	if err != nil {
		panic(err)
	}

	logger, err := logger.NewWithConfig(logger.Config{
		Debug:   cfg.Debug,
		Logfile: cfg.LogFile,
		MaxSize: cfg.LogMaxSizeMB,
		MaxAge:  cfg.LogMaxAgeDays,
	})
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cutService := usecases.NewCutService(logger, cfg.Trials, cfg.Workers, cfg.SamplerRuns)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)
	if _, err := api.Use(ctx, logger, *useRateLimit, cutService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("randcut server stopping", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
