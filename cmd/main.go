package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/ian-shakespeare/tapster/config"
	"github.com/ian-shakespeare/tapster/logger"
	"github.com/ian-shakespeare/tapster/routes"
	"github.com/ian-shakespeare/tapster/utils"
)

func main() {
	logger.Init()
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	ctx := context.Background()
	objects, err := utils.NewMediaStorage(ctx, cfg.S3URL, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey)
	if err != nil {
		logger.Fatal("failed to initialize object storage", zap.Error(err))
	}
	if err := objects.EnsureBucket(ctx); err != nil {
		logger.Fatal("failed to ensure media bucket", zap.Error(err))
	}

	r := routes.SetupRouter(cfg, db, objects)

	logger.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
