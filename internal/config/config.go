package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// StorageConfig selects and parameterizes the key-value backend.
type StorageConfig struct {
	// Driver is one of "file", "memory", "postgres".
	Driver string `mapstructure:"driver"`
	// Path is the data file location for the file driver.
	Path string `mapstructure:"path"`
}

// DBConfig holds PostgreSQL connection settings for the postgres driver.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the
// INVOICEFLOW_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("INVOICEFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Storage defaults
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.path", "data/invoiceflow.json")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "invoiceflow")
	v.SetDefault("db.password", "invoiceflow_secret")
	v.SetDefault("db.name", "invoiceflow_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "INVOICEFLOW_SERVER_PORT",
		"server.read_timeout":  "INVOICEFLOW_SERVER_READ_TIMEOUT",
		"server.write_timeout": "INVOICEFLOW_SERVER_WRITE_TIMEOUT",
		"server.environment":   "INVOICEFLOW_SERVER_ENVIRONMENT",
		"storage.driver":       "INVOICEFLOW_STORAGE_DRIVER",
		"storage.path":         "INVOICEFLOW_STORAGE_PATH",
		"db.host":              "INVOICEFLOW_DB_HOST",
		"db.port":              "INVOICEFLOW_DB_PORT",
		"db.user":              "INVOICEFLOW_DB_USER",
		"db.password":          "INVOICEFLOW_DB_PASSWORD",
		"db.name":              "INVOICEFLOW_DB_NAME",
		"db.sslmode":           "INVOICEFLOW_DB_SSLMODE",
		"db.max_open":          "INVOICEFLOW_DB_MAX_OPEN",
		"db.max_idle":          "INVOICEFLOW_DB_MAX_IDLE",
		"log.level":            "INVOICEFLOW_LOG_LEVEL",
		"log.format":           "INVOICEFLOW_LOG_FORMAT",
		"cors.allowed_origins": "INVOICEFLOW_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if
	// INVOICEFLOW_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVOICEFLOW_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Storage = StorageConfig{
		Driver: v.GetString("storage.driver"),
		Path:   v.GetString("storage.path"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
