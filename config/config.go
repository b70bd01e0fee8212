// Package config loads and validates application configuration from
// environment variables, with support for required variables, default
// values, and collective error reporting.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DatabaseConfig holds settings for the PostgreSQL connection pool.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	PoolSize int
}

// AuthConfig holds authentication-related configuration. The signing
// secret and token lifetime are injected into the token issuer at
// construction time; nothing reads them from the environment afterwards.
type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
	// GamesWriteProtected gates mutating /games verbs behind authentication.
	GamesWriteProtected bool
}

// AppConfig is the top-level configuration structure.
type AppConfig struct {
	Database *DatabaseConfig
	Auth     *AuthConfig
	Server   *ServerConfig
	// MigrationsPath points at the SQL migration files.
	MigrationsPath string
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvBool(key string, defaultValue bool, errs *[]string) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueBool, err := strconv.ParseBool(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected boolean, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueBool
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size between 5 and 100. Out-of-range
// values are clamped, not rejected.
func clampPoolSize(size int, varName string) int {
	if size < 5 {
		log.Warn().Int("value", size).Str("var", varName).Msg("pool size below minimum, clamping to 5")
		return 5
	}
	if size > 100 {
		log.Warn().Int("value", size).Str("var", varName).Msg("pool size above maximum, clamping to 100")
		return 100
	}
	return size
}

// LoadConfig reads and validates all environment variables, collecting
// every problem before reporting so a misconfigured deployment fails with
// one complete message.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs), "DB_POOL_SIZE")

	database := &DatabaseConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		PoolSize: poolSize,
	}

	// Tokens expire hard after 24 hours; there is no refresh flow.
	jwtSecret := getRequiredEnv("JWT_SECRET", &errs)
	tokenDuration := getOptionalEnvDuration("JWT_TOKEN_DURATION", 24*time.Hour, &errs)

	auth := &AuthConfig{
		JWTSecret:     jwtSecret,
		TokenDuration: tokenDuration,
	}

	server := &ServerConfig{
		Port:                getOptionalEnv("PORT", "8080"),
		GamesWriteProtected: getOptionalEnvBool("GAMES_WRITE_PROTECTED", true, &errs),
	}

	migrationsPath := getOptionalEnv("MIGRATIONS_PATH", "./migrations")

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		Database:       database,
		Auth:           auth,
		Server:         server,
		MigrationsPath: migrationsPath,
	}, nil
}
