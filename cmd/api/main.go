package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/twentymincoach/api/internal/config"
	"github.com/twentymincoach/api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}
	logger, err := config.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗しました: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var client *mongo.Client
	if cfg.MongoURI != "" {
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
		client, err = mongo.Connect(connectCtx, clientOptions)
		cancel()
		if err != nil {
			logger.Fatal("MongoDB 接続に失敗しました", zap.Error(err))
		}
	}

	app, err := server.New(ctx, cfg, logger, client)
	if err != nil {
		logger.Fatal("サーバーの初期化に失敗しました", zap.Error(err))
	}
	if err := app.Run(ctx); err != nil {
		logger.Fatal("サーバーが異常終了しました", zap.Error(err))
	}
	logger.Info("サーバーを停止しました")
}
