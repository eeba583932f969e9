package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string `mapstructure:"env"`            // current application environment (local, dev, production)
	QuestionsPath string `mapstructure:"questions_path"` // path to a JSON question set, empty for the embedded one
	Theme         Theme  `mapstructure:"theme"`          // presentation defaults
	Log           Log    `mapstructure:"log"`            // logging configuration section
	UI            UI     `mapstructure:"ui"`             // terminal UI configuration section
}

// Theme contains the initial presentation mode.
type Theme struct {
	Dark bool `mapstructure:"dark"` // start in dark mode
}

// Log contains logging parameters.
type Log struct {
	Path  string `mapstructure:"path"`  // log file, empty disables logging
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// UI contains terminal UI parameters.
type UI struct {
	Title string `mapstructure:"title"` // header text
}

// Load reads configuration from an optional .env file, config files and environment variables.
// Environment variables are prefixed with QUIZ_, e.g. QUIZ_LOG_LEVEL.
func Load() (*Config, error) {
	// Load .env file if it exists.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("questions_path", "")
	v.SetDefault("theme.dark", true)
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.title", "Kalvium")

	// Configure environment variable handling and key mapping.
	v.SetEnvPrefix("quiz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	_ = v.BindEnv("env", "QUIZ_ENV", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
