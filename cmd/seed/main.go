package main

import (
	"context"
	"log"

	"campomarket/internal/app/config"
	"campomarket/internal/app/kvstore"
	"campomarket/internal/app/redis"
	"campomarket/internal/app/repository"
)

// Утилита пересоздает стартовый каталог: удаляет ключ товаров и
// заново инициализирует репозиторий, который засеет дефолтный набор
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var kv kvstore.Store
	switch cfg.Storage.Backend {
	case "redis":
		redisClient, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		kv = kvstore.NewRedisStore(redisClient.Unwrap())
	default:
		kv, err = kvstore.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			log.Fatalf("Failed to init file store: %v", err)
		}
	}

	productsKey := kvstore.Key(cfg.Storage.Namespace, kvstore.KeyProducts)
	if err := kv.Delete(ctx, productsKey); err != nil {
		log.Fatalf("Failed to reset products key: %v", err)
	}

	if _, err := repository.New(kv, cfg.Storage.Namespace); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Println("Default catalog seeded successfully")
}
