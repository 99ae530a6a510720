package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	// Пустое значение равнозначно отсутствию переменной, t.Setenv
	// восстановит исходное окружение после теста
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServicePort)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "campomarket", cfg.Storage.Namespace)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.NotEmpty(t, cfg.JWT.Token)
}

func TestNewConfig_JWTSecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "supersecret")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "supersecret", cfg.JWT.Token)
}

func TestNewConfig_BadRedisPort(t *testing.T) {
	t.Setenv("REDIS_PORT", "not-a-port")

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestNewConfig_UnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")

	_, err := NewConfig()
	assert.Error(t, err)
}
