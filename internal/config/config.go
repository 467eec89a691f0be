package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port int    `json:"port"`
	Host string `json:"host"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`
	DBPath     string `json:"db_path"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// CORS configuration
	CORSOrigin string `json:"cors_origin"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, DBDriver: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBSSLMode: %s, DBPath: %s, LogLevel: %s, CORSOrigin: %s}",
		c.Port, c.Host, c.DBDriver, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBSSLMode, c.DBPath, c.LogLevel, c.CORSOrigin)
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any value is malformed or the database driver is unknown
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "5000"))
	if err != nil {
		return nil, err
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	switch driver {
	case "mysql", "postgres", "postgresql", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s (supported: mysql, postgres, sqlite)", driver)
	}

	config := &Config{
		Port:       port,
		Host:       GetEnvWithDefault("APP_HOST", "0.0.0.0"),
		DBDriver:   driver,
		DBHost:     GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     GetEnvWithDefault("DB_PORT", defaultDBPort(driver)),
		DBName:     GetEnvWithDefault("DB_NAME", "pizzeria"),
		DBUser:     GetEnvWithDefault("DB_USER", "root"),
		DBPassword: GetEnvWithDefault("DB_PASSWORD", ""),
		DBSSLMode:  GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:     GetEnvWithDefault("DB_PATH", "pizzeria.sqlite"),
		LogLevel:   GetEnvWithDefault("LOG_LEVEL", "info"),
		CORSOrigin: GetEnvWithDefault("CORS_ORIGIN", "*"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// defaultDBPort returns the conventional port for each supported driver
func defaultDBPort(driver string) string {
	switch driver {
	case "postgres", "postgresql":
		return "5432"
	default:
		return "3306"
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Warnf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
