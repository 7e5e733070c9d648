package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Facebook FacebookConfig
	OAuth    OAuthConfig
	Session  SessionConfig
	CORS     CORSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration. Driver selects the
// storage backend: memory (default), sqlite or postgres.
type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
}

// URL returns the postgres connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration. An empty URL disables Redis
// and keeps wizard sessions in process memory.
type RedisConfig struct {
	URL      string
	Password string
}

// FacebookConfig holds the Graph API credentials
type FacebookConfig struct {
	GraphURL    string
	AppID       string
	AppSecret   string
	RedirectURI string
	PageID      string
	PageToken   string
	Timeout     time.Duration
}

// OAuthConfig holds the anti-forgery state token settings
type OAuthConfig struct {
	StateSecret string
	StateExpiry time.Duration
}

// SessionConfig holds wizard session storage settings
type SessionConfig struct {
	EncryptionKey string
	TTL           time.Duration
}

// CORSConfig holds the allowed front end origins
type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "memory"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "cleanfee.db"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvAsInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "postgres"),
			DBName:     getEnv("DB_NAME", "cleanfee"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Facebook: FacebookConfig{
			GraphURL:    getEnv("FACEBOOK_GRAPH_URL", "https://graph.facebook.com/v18.0"),
			AppID:       getEnv("FACEBOOK_APP_ID", ""),
			AppSecret:   getEnv("FACEBOOK_APP_SECRET", ""),
			RedirectURI: getEnv("FACEBOOK_REDIRECT_URI", ""),
			PageID:      getEnv("FACEBOOK_PAGE_ID", ""),
			PageToken:   getEnv("FACEBOOK_ACCESS_TOKEN", ""),
			Timeout:     getEnvAsDuration("FACEBOOK_TIMEOUT", 20*time.Second),
		},
		OAuth: OAuthConfig{
			StateSecret: getEnv("OAUTH_STATE_SECRET", "change-this-in-production"),
			StateExpiry: getEnvAsDuration("OAUTH_STATE_EXPIRY", 10*time.Minute),
		},
		Session: SessionConfig{
			EncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
			TTL:           getEnvAsDuration("SESSION_TTL", 7*24*time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost",
				"http://localhost:8501",
				"http://127.0.0.1:8501",
			}),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
