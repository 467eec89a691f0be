package config

import (
	"os"
	"strings"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			// Setup: set environment variable if provided
			if tt.envValue != "" {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key) // cleanup after test
			} else {
				os.Unsetenv(tt.key) // ensure it's not set
			}

			// Execute
			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			// Assert
			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	// Helper function to set multiple env vars
	setTestEnv := func() {
		os.Setenv("APP_PORT", "9000")
		os.Setenv("APP_HOST", "127.0.0.1")
		os.Setenv("DB_DRIVER", "mysql")
		os.Setenv("DB_HOST", "db.internal")
		os.Setenv("DB_NAME", "pizzeria_test")
		os.Setenv("LOG_LEVEL", "debug")
		os.Setenv("CORS_ORIGIN", "http://localhost:5173")
	}

	// Helper function to cleanup env vars
	cleanupTestEnv := func() {
		vars := []string{
			"APP_PORT", "APP_HOST", "DB_DRIVER", "DB_HOST", "DB_PORT",
			"DB_NAME", "DB_USER", "DB_PASSWORD", "LOG_LEVEL", "CORS_ORIGIN",
		}
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		setTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		// Should not return error
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		// Verify all values
		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "127.0.0.1" {
			t.Errorf("Host = %s, expected 127.0.0.1", config.Host)
		}
		if config.DBDriver != "mysql" {
			t.Errorf("DBDriver = %s, expected mysql", config.DBDriver)
		}
		if config.DBHost != "db.internal" {
			t.Errorf("DBHost = %s, expected db.internal", config.DBHost)
		}
		if config.DBPort != "3306" {
			t.Errorf("DBPort = %s, expected mysql default 3306", config.DBPort)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.CORSOrigin != "http://localhost:5173" {
			t.Errorf("CORSOrigin = %s, expected http://localhost:5173", config.CORSOrigin)
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("APP_PORT", "not_a_number")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should fail with unsupported database driver", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DB_DRIVER", "oracle")
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when DB_DRIVER is unsupported")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()
		defer cleanupTestEnv()

		config, err := LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		// Check defaults
		if config.Port != 5000 {
			t.Errorf("Port = %d, expected default 5000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected default 0.0.0.0", config.Host)
		}
		if config.DBDriver != "sqlite" {
			t.Errorf("DBDriver = %s, expected default sqlite", config.DBDriver)
		}
		if config.DBPath != "pizzeria.sqlite" {
			t.Errorf("DBPath = %s, expected default pizzeria.sqlite", config.DBPath)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %s, expected default info", config.LogLevel)
		}
	})

	t.Run("String should mask the database password", func(t *testing.T) {
		cleanupTestEnv()
		os.Setenv("DB_PASSWORD", "hunter2")
		defer cleanupTestEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		str := config.String()
		if strings.Contains(str, "hunter2") {
			t.Error("Config.String() must not contain the raw password")
		}
		if !strings.Contains(str, "[REDACTED]") {
			t.Error("Config.String() should mask the password as [REDACTED]")
		}
	})
}

// Benchmark tests (optional but good practice)
func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
