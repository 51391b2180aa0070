package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CRM collaborator configuration
	CrmWebhookURL        string `mapstructure:"CRM_WEBHOOK_URL"`
	CrmMappingFile       string `mapstructure:"CRM_MAPPING_FILE"`
	CrmRequestTimeoutSec int    `mapstructure:"CRM_REQUEST_TIMEOUT_SEC"`

	// Assignment engine configuration
	ScheduleTimezone           string `mapstructure:"SCHEDULE_TIMEZONE"`
	UpdateWorkers              int    `mapstructure:"UPDATE_WORKERS"`
	EnableExperimentalRuleKinds bool  `mapstructure:"ENABLE_EXPERIMENTAL_RULE_KINDS"`

	// Scheduler configuration
	SchedulerEnabled         bool `mapstructure:"SCHEDULER_ENABLED"`
	SchedulerIntervalMinutes int  `mapstructure:"SCHEDULER_INTERVAL_MINUTES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "duty_assignment")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CRM defaults
	viper.SetDefault("CRM_WEBHOOK_URL", "")
	viper.SetDefault("CRM_MAPPING_FILE", "config/crm.yaml")
	viper.SetDefault("CRM_REQUEST_TIMEOUT_SEC", 30)

	// Engine defaults. The schedule gate runs in a single configured timezone,
	// not the caller's local time; the original deployment used Moscow.
	viper.SetDefault("SCHEDULE_TIMEZONE", "Europe/Moscow")
	viper.SetDefault("UPDATE_WORKERS", 4)
	viper.SetDefault("ENABLE_EXPERIMENTAL_RULE_KINDS", false)

	// Scheduler defaults
	viper.SetDefault("SCHEDULER_ENABLED", true)
	viper.SetDefault("SCHEDULER_INTERVAL_MINUTES", 5)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := time.LoadLocation(config.ScheduleTimezone); err != nil {
		return fmt.Errorf("invalid SCHEDULE_TIMEZONE %q: %w", config.ScheduleTimezone, err)
	}

	if config.UpdateWorkers < 1 {
		return fmt.Errorf("UPDATE_WORKERS must be at least 1")
	}

	return nil
}

// Location returns the timezone the schedule gate operates in. Config
// validation guarantees the name parses.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.ScheduleTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
