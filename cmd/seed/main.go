package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	mongodoc "github.com/twentymincoach/api/internal/infrastructure/mongo"
	"github.com/twentymincoach/api/internal/seed"
)

type seedOptions struct {
	envName         string
	dropCollections bool
}

func main() {
	opts := parseFlags()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("ロガーの初期化に失敗しました: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := loadEnvFiles(opts.envName); err != nil {
		logger.Fatal("環境変数の読み込みに失敗しました", zap.Error(err))
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "twentymincoach")
	collection := envOrDefault("COACH_COLLECTION", "coaches")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logger.Fatal("MongoDB 接続に失敗しました", zap.Error(err))
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	repo := mongodoc.NewCoachRepository(client.Database(dbName), collection)

	if opts.dropCollections {
		if err := repo.Drop(ctx); err != nil {
			logger.Fatal("コレクション削除に失敗しました", zap.Error(err))
		}
		logger.Info("既存コレクションを削除しました", zap.String("collection", collection))
	}

	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Fatal("インデックス作成に失敗しました", zap.Error(err))
	}

	coaches := seed.Coaches()
	now := time.Now().UTC()
	for _, coach := range coaches {
		coach.CreatedAt = now
		coach.UpdatedAt = now
		if err := repo.Save(ctx, coach); err != nil {
			logger.Fatal("コーチデータの投入に失敗しました", zap.String("id", coach.ID), zap.Error(err))
		}
	}

	logger.Info("Seed 完了",
		zap.Int("coaches", len(coaches)),
		zap.String("db", dbName),
		zap.String("env", opts.envName),
	)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.envName, "env", "local", "env/ 内の env ファイル名 (例: local, staging)")
	flag.BoolVar(&opts.dropCollections, "drop", false, "既存コレクションを削除してから投入する")
	flag.Parse()
	return opts
}

// loadEnvFiles は env/<name>.env があれば読み込む。既に設定済みの環境変数は上書きしない。
func loadEnvFiles(envName string) error {
	name := strings.TrimSpace(envName)
	if name == "" {
		return nil
	}
	path := filepath.Join("env", name+".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
