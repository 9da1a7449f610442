package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingDatabaseURL is returned when DATABASE_URL is not set.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL must be set. Did you forget to provision a database?")

// Config holds application configuration
type Config struct {
	DatabaseURL string
	Transport   string // pooled, serverless or sqlite
	InsecureTLS bool   // skip server certificate verification
	DBLogLevel  string // silent, error, warn, info

	SQLDir        string
	Subject       string
	ExpectedTotal int
}

// LoadConfig loads .env (if present) and reads configuration from the environment.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Transport:   getEnv("DB_TRANSPORT", "pooled"),
		InsecureTLS: getEnvBool("DB_TLS_INSECURE", true),
		DBLogLevel:  getEnv("DB_LOG_LEVEL", "warn"),

		SQLDir:        getEnv("SQL_DIR", "."),
		Subject:       getEnv("LOAD_SUBJECT", "생명과학"),
		ExpectedTotal: getEnvInt("LOAD_EXPECTED_TOTAL", 447),
	}

	// Validate critical configuration
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.InsecureTLS && cfg.Transport != "sqlite" {
		log.Println("Warning: database certificate verification is disabled (DB_TLS_INSECURE).")
	}

	return cfg, nil
}

// getEnv returns the trimmed value of key, or defaultValue when it is blank.
func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt reads key as an integer. Blank or malformed values give defaultValue.
func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
