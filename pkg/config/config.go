package config

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type Config struct {
	AppName           string
	AppVersion        string
	ServerPort        string
	CompletionsAPIURL string
	CompletionsAPIKey string
	CompletionsModel  string
	RequestTimeout    time.Duration
	ExtractionTimeout time.Duration
}

func getEnv(key, defaultValue string, printEnv bool) string {
	logger := log.Default()
	value := os.Getenv(key)
	if printEnv {
		logger.Info("Env", "key", key, "value", value)
	}
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration, printEnv bool) time.Duration {
	raw := getEnv(key, "", printEnv)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Default().Warn("Invalid duration, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return d
}

func LoadConfig(printEnv bool) (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{
		AppName:           "Memory Extraction & Personality Engine",
		AppVersion:        "1.0.0",
		ServerPort:        getEnv("SERVER_PORT", "8000", printEnv),
		CompletionsAPIURL: getEnv("COMPLETIONS_API_URL", "https://api.openai.com/v1", printEnv),
		CompletionsAPIKey: getEnv("COMPLETIONS_API_KEY", "", printEnv),
		CompletionsModel:  getEnv("COMPLETIONS_MODEL", "gpt-4.1-mini", printEnv),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 30*time.Second, printEnv),
		ExtractionTimeout: getEnvDuration("EXTRACTION_TIMEOUT", 60*time.Second, printEnv),
	}

	return conf, nil
}
