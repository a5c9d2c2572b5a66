package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var ErrMissingServerConfig = errors.New("server configuration incomplete")

// Config holds the application's configuration values.
type Config struct {
	Algorithm         string // Default solving algorithm
	DelayMS           int    // Pause between animation frames, in milliseconds
	Direction         string // Animation playback direction (top-down, bottom-up)
	RolePolicy        string // What to do with files lacking an entrance or exit (normalize, strict)
	Seed              int64  // Seed for stochastic algorithms and generators
	HostIP            string // Host IP for the server
	RESTPort          int    // Port for the REST API
	GinMode           string // Mode for the Gin framework (e.g., release, debug, test)
	RedisAddr         string // Address of the Redis server holding rankings
	RedisPassword     string // Password for Redis
	RedisDB           int    // Redis logical database
	RankingTTLSeconds int    // Lifetime of a maze's ranking; 0 keeps it forever
	DBHost            string // Hostname or IP address for the database
	DBPort            int    // Port number for the database
	DBUser            string // Username for the database
	DBPassword        string // Password for the database
	DBName            string // Name of the database
	JWTSecret         string // Secret key for JWT signing
	JWTIssuer         string // Issuer claim for JWTs
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		Algorithm:         getEnvWithDefault("SOLVER_ALGORITHM", "bfs"),
		DelayMS:           getEnvAsIntWithDefault("SOLVER_DELAY_MS", 100),
		Direction:         getEnvWithDefault("SOLVER_DIRECTION", "top-down"),
		RolePolicy:        getEnvWithDefault("SOLVER_ROLE_POLICY", "normalize"),
		Seed:              int64(getEnvAsIntWithDefault("SOLVER_SEED", 1)),
		HostIP:            getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:          getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:           getEnvWithDefault("GIN_MODE", "release"),
		RedisAddr:         getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:           getEnvAsIntWithDefault("REDIS_DB", 0),
		RankingTTLSeconds: getEnvAsIntWithDefault("RANKING_TTL_SECONDS", 0),
		DBHost:            getEnvWithDefault("DB_HOST", ""),
		DBPort:            getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:            getEnvWithDefault("DB_USER", ""),
		DBPassword:        getEnvWithDefault("DB_PASS", ""),
		DBName:            getEnvWithDefault("DB_NAME", ""),
		JWTSecret:         getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:         getEnvWithDefault("JWT_ISSUER", "maze-solver"),
	}
}

// ValidateServer reports the settings the HTTP server needs but that are
// not set. The command line solver runs without any of them.
func (c Config) ValidateServer() error {
	var missing []string
	if c.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if c.DBName == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.JWTIssuer == "" {
		missing = append(missing, "JWT_ISSUER")
	}
	if c.RESTPort <= 0 {
		missing = append(missing, "REST_PORT")
	}
	if c.RedisAddr == "" {
		missing = append(missing, "REDIS_ADDR")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingServerConfig, strings.Join(missing, ", "))
	}
	return nil
}

// MongoURI builds the connection string of the maze database.
func (c Config) MongoURI() string {
	if c.DBUser == "" {
		return fmt.Sprintf("mongodb://%s:%d", c.DBHost, c.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%d", c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer, or the default if not set.
// It logs a fatal error if the value cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
