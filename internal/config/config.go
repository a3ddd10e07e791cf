package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	JWTSecret          string
}

type StoreConfig struct {
	// Driver selects the backing store: "postgres" or "sheets".
	Driver string

	Connection string // postgres DSN

	SpreadsheetID   string
	CredentialsFile string
	CredentialsJSON string // base64 encoded service account key
	CacheTTL        time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			JWTSecret:          getEnv("JWT_SECRET", "default_secret"),
		},
		Store: StoreConfig{
			Driver:          getEnv("STORE_DRIVER", "postgres"),
			Connection:      getEnv("DB_CONNECTION_STRING", ""),
			SpreadsheetID:   getEnv("SHEETS_SPREADSHEET_ID", ""),
			CredentialsFile: getEnv("SHEETS_CREDENTIALS_FILE", ""),
			CredentialsJSON: getEnv("SHEETS_CREDENTIALS_JSON", ""),
			CacheTTL:        time.Duration(getEnvAsInt("SHEETS_CACHE_TTL_SECONDS", 5)) * time.Second,
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
