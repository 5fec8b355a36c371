package lib

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"saes/study-app/core"
)

type Config struct {
	App    AppConfig
	Models core.ModelTable
	Gemini GeminiConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins []string
	SessionTTL         time.Duration
	RequestTimeout     time.Duration
}

type GeminiConfig struct {
	BaseURL string
	// CredentialKeys are read on every request, never at load time.
	CredentialKeys []string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "study-app.log"),
			CorsAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			SessionTTL:         getEnvAsDuration("SESSION_TTL", time.Hour),
			RequestTimeout:     getEnvAsDuration("REQUEST_TIMEOUT", 0),
		},
		Models: core.ModelTable{
			ChatSearch:    getEnv("MODEL_CHAT_SEARCH", ""),
			ChatReasoning: getEnv("MODEL_CHAT_REASONING", ""),
			Vision:        getEnv("MODEL_VISION", ""),
			Image:         getEnv("MODEL_IMAGE", ""),
		},
		Gemini: GeminiConfig{
			BaseURL:        getEnv("GEMINI_BASE_URL", ""),
			CredentialKeys: []string{"API_KEY", "GEMINI_API_KEY"},
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	var list []string
	for _, item := range strings.Split(getEnv(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return fallback
	}
	return list
}
