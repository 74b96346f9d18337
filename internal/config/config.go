package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ledger   LedgerConfig
	Tracing  TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	EventsTopic        string
}

type DatabaseConfig struct {
	Driver     string // "sqlite" or "postgres"
	Connection string
}

type LedgerConfig struct {
	CurrencyLabel  string
	InvoicePrefix  string
	InvoiceDueDays int
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
			EventsTopic:        getEnv("LEDGER_EVENTS_TOPIC", "LEDGER_EVENTS"),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "sqlite"),
			Connection: getEnv("DB_CONNECTION_STRING", "file:gpstrack?mode=memory&cache=shared"),
		},
		Ledger: LedgerConfig{
			CurrencyLabel:  getEnv("CURRENCY_LABEL", "DH"),
			InvoicePrefix:  getEnv("INVOICE_PREFIX", "FACT"),
			InvoiceDueDays: getEnvAsInt("INVOICE_DUE_DAYS", 30),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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
