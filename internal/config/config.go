package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the server
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Uploads  UploadsConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	// URL is the Postgres connection string. It is only ever sourced
	// from configuration; an empty value starts the server in degraded
	// mode rather than crashing (store routes fail per request).
	URL string
	// ConnectTimeout bounds initial server selection
	ConnectTimeout time.Duration
	// IdleTimeout closes idle pooled connections
	IdleTimeout time.Duration
}

type AuthConfig struct {
	// AdminPasswordHash is the bcrypt hash of the shared admin secret.
	// Never store the plain credential in code or config files.
	AdminPasswordHash string
	JWTSecret         string
	TokenTTL          time.Duration
}

type UploadsConfig struct {
	// Dir is the public directory receipt files are stored under
	Dir string
	// PublicPath is the URL prefix receipts are served from
	PublicPath string
}

// Load reads configuration from an optional config.yaml, a .env file,
// and the environment. Environment variables win, with dots replaced
// by underscores (database.url -> DATABASE_URL).
func Load() *Config {
	// .env is a developer convenience; absence is not an error
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 5000)
	v.SetDefault("database.url", "")
	v.SetDefault("database.connect_timeout", 5*time.Second)
	v.SetDefault("database.idle_timeout", 45*time.Second)
	v.SetDefault("auth.admin_password_hash", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("uploads.dir", "public/uploads")
	v.SetDefault("uploads.public_path", "/uploads")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("Warning: could not read config file: %v", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetInt("server.port"),
		},
		Database: DatabaseConfig{
			URL:            v.GetString("database.url"),
			ConnectTimeout: v.GetDuration("database.connect_timeout"),
			IdleTimeout:    v.GetDuration("database.idle_timeout"),
		},
		Auth: AuthConfig{
			AdminPasswordHash: v.GetString("auth.admin_password_hash"),
			JWTSecret:         v.GetString("auth.jwt_secret"),
			TokenTTL:          v.GetDuration("auth.token_ttl"),
		},
		Uploads: UploadsConfig{
			Dir:        v.GetString("uploads.dir"),
			PublicPath: v.GetString("uploads.public_path"),
		},
	}

	if cfg.Database.URL == "" {
		log.Println("Warning: DATABASE_URL is not set; starting in degraded mode, store-backed routes will fail")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Println("Warning: AUTH_JWT_SECRET is not set; admin login and all mutation routes are disabled")
	}

	return cfg
}
