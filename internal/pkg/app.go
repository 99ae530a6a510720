package pkg

import (
	"context"
	"fmt"

	"campomarket/internal/app/config"
	"campomarket/internal/app/handler"
	"campomarket/internal/app/kvstore"
	"campomarket/internal/app/middleware"
	"campomarket/internal/app/redis"
	"campomarket/internal/app/repository"
	"campomarket/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.APIHandler
	Auth    *middleware.AuthMiddleware
}

// NewApp собирает приложение: конфиг, хранилище, репозиторий, redis, minio,
// обработчики и маршрутизатор
func NewApp(ctx context.Context) (*Application, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	// Redis нужен для blacklist'а токенов и для redis-бэкенда хранилища.
	// При файловом бэкенде без REDIS_HOST приложение работает без него.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" || cfg.Storage.Backend == "redis" {
		redisClient, err = redis.New(ctx, cfg.Redis)
		if err != nil {
			if cfg.Storage.Backend == "redis" {
				return nil, fmt.Errorf("cannot connect to redis: %w", err)
			}
			logrus.Warn("redis unavailable, JWT blacklist disabled: ", err)
			redisClient = nil
		}
	}

	// Выбор бэкенда хранилища коллекций
	var kv kvstore.Store
	switch cfg.Storage.Backend {
	case "redis":
		kv = kvstore.NewRedisStore(redisClient.Unwrap())
	default:
		kv, err = kvstore.NewFileStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("cannot init file store: %w", err)
		}
	}

	repo, err := repository.New(kv, cfg.Storage.Namespace)
	if err != nil {
		return nil, fmt.Errorf("cannot init repository: %w", err)
	}

	// MinIO для изображений товаров (опционально)
	var minioClient *storage.MinIOClient
	if cfg.MinIO.Endpoint != "" {
		minioClient, err = storage.NewMinIOClient(
			cfg.MinIO.Endpoint,
			cfg.MinIO.AccessKey,
			cfg.MinIO.SecretKey,
			cfg.MinIO.Bucket,
			cfg.MinIO.UseSSL,
		)
		if err != nil {
			logrus.Warn("minio unavailable, image upload disabled: ", err)
			minioClient = nil
		}
	} else {
		logrus.Warn("MINIO_ENDPOINT not set, image upload disabled")
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	return &Application{
		Config:  cfg,
		Router:  gin.Default(),
		Handler: apiHandler,
		Auth:    authMiddleware,
	}, nil
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.Handler.RegisterAPIRoutes(a.Router, a.Auth)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
