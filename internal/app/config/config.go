package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	Storage     StorageConfig
	JWT         JWTConfig
	Redis       RedisConfig
	MinIO       MinIOConfig
}

// StorageConfig описывает бэкенд хранилища коллекций
type StorageConfig struct {
	Backend   string // file | redis
	Namespace string // префикс ключей (<ns>_users, <ns>_products, ...)
	DataDir   string // каталог данных для файлового бэкенда
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

const (
	envStorageBackend = "STORAGE_BACKEND"
	envJWTSecret      = "JWT_SECRET"

	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinIOEndpoint  = "MINIO_ENDPOINT"
	envMinIOAccessKey = "MINIO_ACCESS_KEY"
	envMinIOSecretKey = "MINIO_SECRET_KEY"
	envMinIOBucket    = "MINIO_BUCKET"
	envMinIOUseSSL    = "MINIO_USE_SSL"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	viper.SetDefault("ServiceHost", "0.0.0.0")
	viper.SetDefault("ServicePort", 8080)
	viper.SetDefault("Storage.Backend", "file")
	viper.SetDefault("Storage.Namespace", "campomarket")
	viper.SetDefault("Storage.DataDir", "data")

	err = viper.ReadInConfig()
	if err != nil {
		// Без config.toml работаем на дефолтах
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	if backend := os.Getenv(envStorageBackend); backend != "" {
		cfg.Storage.Backend = backend
	}
	if cfg.Storage.Backend != "file" && cfg.Storage.Backend != "redis" {
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}

	// инициализация JWT конфигурации
	jwtSecret := os.Getenv(envJWTSecret)
	if jwtSecret == "" {
		jwtSecret = "test"
	}
	cfg.JWT = JWTConfig{
		Token:         jwtSecret,
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}

	// инициализация Redis конфигурации из env (нужна для blacklist токенов
	// и для redis-бэкенда хранилища)
	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port = 6379
	if portStr := os.Getenv(envRedisPort); portStr != "" {
		cfg.Redis.Port, err = strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("redis port must be int value: %w", err)
		}
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// инициализация MinIO конфигурации из env (опционально)
	cfg.MinIO.Endpoint = os.Getenv(envMinIOEndpoint)
	cfg.MinIO.AccessKey = os.Getenv(envMinIOAccessKey)
	cfg.MinIO.SecretKey = os.Getenv(envMinIOSecretKey)
	cfg.MinIO.Bucket = os.Getenv(envMinIOBucket)
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "campomarket-images"
	}
	cfg.MinIO.UseSSL = os.Getenv(envMinIOUseSSL) == "true"

	log.Info("config parsed")

	return cfg, nil
}
