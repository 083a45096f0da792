package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	AppConfig Config
	envLoaded bool
)

type RedisConfig struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address"`
	Password string `json:"-"`
	DB       int    `json:"db"`
}

type Config struct {
	Environment    string      `json:"environment"`
	ServerPort     string      `json:"server_port"`
	JWTSecret      string      `json:"-"`
	SentryDSN      string      `json:"-"`
	RateLimitLogin int         `json:"rate_limit_login"`
	CORSOrigins    string      `json:"cors_origins"`
	Redis          RedisConfig `json:"redis"`
}

func init() {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()
	envLoaded = true
}

func LoadConfig() error {
	AppConfig = Config{
		Environment:    getEnv("ENVIRONMENT", "development"),
		ServerPort:     getEnv("SERVER_PORT", "5000"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		SentryDSN:      getEnv("SENTRY_DSN", ""),
		RateLimitLogin: getEnvAsInt("RATE_LIMIT_LOGIN", 10),
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Address:  getEnv("REDIS_ADDRESS", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
	}

	// Validate required configurations
	if AppConfig.JWTSecret == "" {
		if AppConfig.Environment == "production" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		AppConfig.JWTSecret = "marketpro-dev-secret"
	}
	if AppConfig.Redis.Enabled && AppConfig.Redis.Address == "" {
		return fmt.Errorf("REDIS_ADDRESS is required when redis is enabled")
	}

	logConfig()
	return nil
}

// Helper functions
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if !envLoaded && fallback == "" {
		log.Printf("Environment variable %s not found and no fallback provided", key)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	switch getEnv(key, "") {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return fallback
}

func logConfig() {
	log.Println("Loaded configuration:")
	log.Printf("Environment: %s", AppConfig.Environment)
	log.Printf("Server Port: %s", AppConfig.ServerPort)
	log.Printf("Redis: enabled=%t addr=%s", AppConfig.Redis.Enabled, AppConfig.Redis.Address)
	log.Printf("Sentry: configured=%t", AppConfig.SentryDSN != "")
}
