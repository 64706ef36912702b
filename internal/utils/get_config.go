package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application configuration
	AppPort string `yaml:"APP_PORT"`
	LogMode string `yaml:"LOG_MODE"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`
	SQLitePath string `yaml:"SQLITE_PATH"`

	// HTTP middleware configuration
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`
	RateLimitMax     int    `yaml:"RATE_LIMIT_MAX"`
}

var defaults = Config{
	AppPort:          "8080",
	LogMode:          "dev",
	DBDriver:         "postgres",
	DBUser:           "postgres",
	DBName:           "recipes",
	DBPort:           "5432",
	DBHost:           "localhost",
	DBSSLMode:        "disable",
	SQLitePath:       "recipes.db",
	CORSAllowOrigins: "*",
	RateLimitMax:     10,
}

var config = defaults

// LoadConfig reads config.yaml (or the file named by CONFIG_PATH) on top of
// the defaults, then applies environment overrides for every key.
func LoadConfig() {
	config = defaults

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
	}

	applyEnvOverrides()
}

// LoadConfigFromBytes replaces the active configuration with defaults plus
// the given YAML document. Environment overrides are not applied.
func LoadConfigFromBytes(raw []byte) error {
	cfg := defaults
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return err
	}
	config = cfg
	return nil
}

func applyEnvOverrides() {
	for _, key := range []string{
		"APP_PORT", "LOG_MODE",
		"DB_DRIVER", "DB_USER", "DB_NAME", "DB_PASSWORD", "DB_PORT", "DB_HOST", "DB_SSLMODE", "SQLITE_PATH",
		"CORS_ALLOW_ORIGINS", "RATE_LIMIT_MAX",
	} {
		if v, ok := os.LookupEnv(key); ok {
			setConfig(key, v)
		}
	}
}

func setConfig(key, value string) {
	switch key {
	case "APP_PORT":
		config.AppPort = value
	case "LOG_MODE":
		config.LogMode = value
	case "DB_DRIVER":
		config.DBDriver = value
	case "DB_USER":
		config.DBUser = value
	case "DB_NAME":
		config.DBName = value
	case "DB_PASSWORD":
		config.DBPassword = value
	case "DB_PORT":
		config.DBPort = value
	case "DB_HOST":
		config.DBHost = value
	case "DB_SSLMODE":
		config.DBSSLMode = value
	case "SQLITE_PATH":
		config.SQLitePath = value
	case "CORS_ALLOW_ORIGINS":
		config.CORSAllowOrigins = value
	case "RATE_LIMIT_MAX":
		if n, err := strconv.Atoi(value); err == nil {
			config.RateLimitMax = n
		}
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "LOG_MODE":
		return config.LogMode
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "SQLITE_PATH":
		return config.SQLitePath
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	default:
		return ""
	}
}

func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return fallback
	}
	return n
}
