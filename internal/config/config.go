package config

import (
	"os"
	"strings"

	"chatto/internal/moderation"
)

// Config holds application configuration
type Config struct {
	// サーバー設定
	ServerPort string
	Env        string

	// CORS設定
	AllowedOrigins []string

	// 静的ファイル配信
	StaticDir string

	// モデレーション設定
	ForbiddenWords []string
}

// Load loads configuration from environment variables
func Load() Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000,http://127.0.0.1:3000"
	}

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}

	cfg := Config{
		ServerPort:     serverPort,
		Env:            env,
		AllowedOrigins: splitAndTrim(allowedOrigins),
		StaticDir:      staticDir,
		ForbiddenWords: moderation.DefaultForbiddenWords,
	}

	if forbiddenWords := os.Getenv("FORBIDDEN_WORDS"); forbiddenWords != "" {
		cfg.ForbiddenWords = splitAndTrim(forbiddenWords)
	}

	return cfg
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
