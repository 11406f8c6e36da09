package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Data   DataConfig   `mapstructure:"data"`
	Logger LoggerConfig `mapstructure:"logger"`
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

// DataConfig holds the flat-file data directory layout
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	Filename string `mapstructure:"filename"`
}

// Load loads configuration from the environment and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors)
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()
	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	// App defaults
	viper.SetDefault("app.name", "TaskTorch")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.debug", false)

	// Data defaults
	viper.SetDefault("data.dir", "data")

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output", "stderr")
	viper.SetDefault("logger.filename", "")
}

func bindEnvVars() {
	// App
	viper.BindEnv("app.name", "APP_NAME")
	viper.BindEnv("app.version", "APP_VERSION")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("app.debug", "APP_DEBUG")

	// Data
	viper.BindEnv("data.dir", "DATA_DIR")

	// Logger
	viper.BindEnv("logger.level", "LOG_LEVEL")
	viper.BindEnv("logger.format", "LOG_FORMAT")
	viper.BindEnv("logger.output", "LOG_OUTPUT")
	viper.BindEnv("logger.filename", "LOG_FILENAME")
}

func validateConfig(cfg *Config) error {
	if cfg.Data.Dir == "" {
		return fmt.Errorf("data directory is required")
	}
	return nil
}

// TasksFile returns the path of the task store file
func (cfg *DataConfig) TasksFile() string {
	return filepath.Join(cfg.Dir, "tasks.csv")
}

// CoursesFile returns the path of the course store file
func (cfg *DataConfig) CoursesFile() string {
	return filepath.Join(cfg.Dir, "classes.csv")
}

// UsersFile returns the path of the user store file
func (cfg *DataConfig) UsersFile() string {
	return filepath.Join(cfg.Dir, "users.csv")
}

// SettingsFile returns the path of the settings file
func (cfg *DataConfig) SettingsFile() string {
	return filepath.Join(cfg.Dir, "settings.txt")
}

// CredentialsFile returns the external-calendar credentials path
func (cfg *DataConfig) CredentialsFile() string {
	return filepath.Join(cfg.Dir, "credentials.json")
}

// TokensDir returns the external-calendar token directory
func (cfg *DataConfig) TokensDir() string {
	return filepath.Join(cfg.Dir, "tokens")
}

// IsDevelopment returns true if the environment is development
func (cfg *AppConfig) IsDevelopment() bool {
	return cfg.Environment == "development"
}
