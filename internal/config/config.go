package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/monapdx/Escort-Template/pkg/logger"
)

// DefaultAdminKey is the insecure placeholder used when ADMIN_KEY is unset.
// Startup warns loudly when it is still in effect.
const DefaultAdminKey = "changeme123"

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Admin     AdminConfig
	Store     StoreConfig
	Uploads   UploadsConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AdminConfig struct {
	Key string
}

type StoreConfig struct {
	DataFile string
}

type UploadsConfig struct {
	Dir      string
	MaxBytes int64
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type RateLimitConfig struct {
	Enabled       bool
	UseRedis      bool
	RPS           float64
	Burst         int
	WindowSeconds int
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3001")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_ENVIRONMENT", "development")
	viper.SetDefault("ADMIN_KEY", DefaultAdminKey)
	viper.SetDefault("DATA_FILE", "data/content.json")
	viper.SetDefault("UPLOADS_DIR", "public/uploads")
	viper.SetDefault("MAX_UPLOAD_MB", 10)
	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 1)

	cfg := &Config{
		Server: ServerConfig{
			Port:         viper.GetString("PORT"),
			Host:         viper.GetString("SERVER_HOST"),
			Environment:  viper.GetString("SERVER_ENVIRONMENT"),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Admin: AdminConfig{
			Key: viper.GetString("ADMIN_KEY"),
		},
		Store: StoreConfig{
			DataFile: viper.GetString("DATA_FILE"),
		},
		Uploads: UploadsConfig{
			Dir:      viper.GetString("UPLOADS_DIR"),
			MaxBytes: viper.GetInt64("MAX_UPLOAD_MB") << 20,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
		},
		RateLimit: RateLimitConfig{
			Enabled:       viper.GetBool("RATE_LIMIT_ENABLED"),
			UseRedis:      viper.GetBool("RATE_LIMIT_USE_REDIS"),
			RPS:           viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         viper.GetInt("RATE_LIMIT_BURST"),
			WindowSeconds: viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
	}

	if cfg.Admin.Key == "" || cfg.Admin.Key == DefaultAdminKey {
		logger.Warn("ADMIN_KEY is unset or still the placeholder; set a strong value before exposing this service")
	}

	return cfg, nil
}
