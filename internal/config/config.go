// internal/config/config.go
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Session SessionConfig
	Cache   CacheConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
}

// SessionConfig controls where the signed-in identity is mirrored. When
// redis is disabled the session store falls back to process memory.
type SessionConfig struct {
	RedisEnabled  bool
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type CacheConfig struct {
	Enabled          bool
	RedisURL         string
	RedisHost        string
	RedisPort        string
	RedisPassword    string
	RedisDB          int
	ReportTTLSeconds int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("AUTH_JWT_SECRET", "stockflow-dev-secret")
		viper.SetDefault("AUTH_TOKEN_TTL_HOURS", 24)
		viper.SetDefault("SESSION_REDIS_ENABLED", false)
		viper.SetDefault("SESSION_REDIS_URL", "")
		viper.SetDefault("SESSION_REDIS_HOST", "127.0.0.1")
		viper.SetDefault("SESSION_REDIS_PORT", "6379")
		viper.SetDefault("SESSION_REDIS_PASSWORD", "")
		viper.SetDefault("SESSION_REDIS_DB", 0)
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_REPORT_TTL_SECONDS", 60)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Auth: AuthConfig{
				JWTSecret:     viper.GetString("AUTH_JWT_SECRET"),
				TokenTTLHours: viper.GetInt("AUTH_TOKEN_TTL_HOURS"),
			},
			Session: SessionConfig{
				RedisEnabled:  viper.GetBool("SESSION_REDIS_ENABLED"),
				RedisURL:      viper.GetString("SESSION_REDIS_URL"),
				RedisHost:     viper.GetString("SESSION_REDIS_HOST"),
				RedisPort:     viper.GetString("SESSION_REDIS_PORT"),
				RedisPassword: viper.GetString("SESSION_REDIS_PASSWORD"),
				RedisDB:       viper.GetInt("SESSION_REDIS_DB"),
			},
			Cache: CacheConfig{
				Enabled:          viper.GetBool("CACHE_ENABLED"),
				RedisURL:         viper.GetString("REDIS_URL"),
				RedisHost:        viper.GetString("REDIS_HOST"),
				RedisPort:        viper.GetString("REDIS_PORT"),
				RedisPassword:    viper.GetString("REDIS_PASSWORD"),
				RedisDB:          viper.GetInt("REDIS_DB"),
				ReportTTLSeconds: viper.GetInt("CACHE_REPORT_TTL_SECONDS"),
			},
		}
	})

	return instance
}
