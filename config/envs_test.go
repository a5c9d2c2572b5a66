package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"SOLVER_ALGORITHM", "SOLVER_DELAY_MS", "REST_PORT", "DB_HOST", "JWT_SECRET"} {
			t.Setenv(key, "")
		}
		t.Setenv("SOLVER_ALGORITHM", "bfs")

		cfg := initConfig()
		assert.Equal(t, "bfs", cfg.Algorithm)
		assert.Equal(t, 100, cfg.DelayMS)
		assert.Equal(t, 8080, cfg.RESTPort)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SOLVER_ALGORITHM", "a-star")
		t.Setenv("SOLVER_DELAY_MS", "25")
		t.Setenv("SOLVER_SEED", "42")
		t.Setenv("REDIS_DB", "3")

		cfg := initConfig()
		assert.Equal(t, "a-star", cfg.Algorithm)
		assert.Equal(t, 25, cfg.DelayMS)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.Equal(t, 3, cfg.RedisDB)
	})
}

func TestValidateServer(t *testing.T) {
	cfg := Config{RESTPort: 8080, RedisAddr: "localhost:6379", JWTIssuer: "maze-solver"}
	err := cfg.ValidateServer()
	assert.ErrorIs(t, err, ErrMissingServerConfig)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.DBHost, cfg.DBName, cfg.JWTSecret = "mongo", "mazes", "secret"
	assert.NoError(t, cfg.ValidateServer())
}

func TestMongoURI(t *testing.T) {
	cfg := Config{DBHost: "mongo", DBPort: 27017}
	assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI())

	cfg.DBUser, cfg.DBPassword = "root", "pw"
	assert.Equal(t, "mongodb://root:pw@mongo:27017", cfg.MongoURI())
}
