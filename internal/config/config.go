package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".simsync"
	envPrefix  = "SIMSYNC_"

	DefaultBaseURL           = "http://localhost:8000"
	DefaultRequestTimeout    = 10 * time.Second
	DefaultRoundInterval     = 250 * time.Millisecond
	DefaultDiagnosticEvery   = 50
	DefaultContainerCapacity = 75
	DefaultTruckCapacity     = 1000
)

type Config struct {
	API     APIConfig     `mapstructure:"api" envPrefix:"API_"`
	Sync    SyncConfig    `mapstructure:"sync" envPrefix:"SYNC_"`
	Display DisplayConfig `mapstructure:"display" envPrefix:"DISPLAY_"`
}

type APIConfig struct {
	BaseURL        string        `mapstructure:"base_url" env:"BASE_URL"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" env:"REQUEST_TIMEOUT"`
}

type SyncConfig struct {
	ClockAgentID    int           `mapstructure:"clock_agent_id" env:"CLOCK_AGENT_ID"`
	RoundInterval   time.Duration `mapstructure:"round_interval" env:"ROUND_INTERVAL"`
	DiagnosticEvery int           `mapstructure:"diagnostic_every" env:"DIAGNOSTIC_EVERY"`
	SkipReset       bool          `mapstructure:"skip_reset" env:"SKIP_RESET"`
}

type DisplayConfig struct {
	ContainerCapacity int `mapstructure:"container_capacity" env:"CONTAINER_CAPACITY"`
	TruckCapacity     int `mapstructure:"truck_capacity" env:"TRUCK_CAPACITY"`
}

// ValidationError names the offending key in its file form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Message)
}

func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: DefaultRequestTimeout,
		},
		Sync: SyncConfig{
			RoundInterval:   DefaultRoundInterval,
			DiagnosticEvery: DefaultDiagnosticEvery,
		},
		Display: DisplayConfig{
			ContainerCapacity: DefaultContainerCapacity,
			TruckCapacity:     DefaultTruckCapacity,
		},
	}
}

// DefaultPath is $HOME/.simsync/config.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configName+"."+configType), nil
}

// Load resolves defaults, then the TOML file at path (DefaultPath when empty),
// then SIMSYNC_* environment variables. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType(configType)
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		v.SetConfigName(configName)
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config file: %w", err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("api.base_url", cfg.API.BaseURL)
	v.SetDefault("api.request_timeout", cfg.API.RequestTimeout)
	v.SetDefault("sync.clock_agent_id", cfg.Sync.ClockAgentID)
	v.SetDefault("sync.round_interval", cfg.Sync.RoundInterval)
	v.SetDefault("sync.diagnostic_every", cfg.Sync.DiagnosticEvery)
	v.SetDefault("sync.skip_reset", cfg.Sync.SkipReset)
	v.SetDefault("display.container_capacity", cfg.Display.ContainerCapacity)
	v.SetDefault("display.truck_capacity", cfg.Display.TruckCapacity)
}

func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return &ValidationError{Field: "api.base_url", Message: "must not be empty"}
	}
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil {
		return &ValidationError{Field: "api.base_url", Message: err.Error()}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "api.base_url", Message: "scheme must be http or https"}
	}
	if parsed.Host == "" {
		return &ValidationError{Field: "api.base_url", Message: "host is required"}
	}
	if c.API.RequestTimeout <= 0 {
		return &ValidationError{Field: "api.request_timeout", Message: "must be positive"}
	}
	if c.Sync.ClockAgentID < 0 {
		return &ValidationError{Field: "sync.clock_agent_id", Message: "must not be negative"}
	}
	if c.Sync.RoundInterval <= 0 {
		return &ValidationError{Field: "sync.round_interval", Message: "must be positive"}
	}
	if c.Sync.DiagnosticEvery < 0 {
		return &ValidationError{Field: "sync.diagnostic_every", Message: "must not be negative"}
	}
	if c.Display.ContainerCapacity <= 0 {
		return &ValidationError{Field: "display.container_capacity", Message: "must be positive"}
	}
	if c.Display.TruckCapacity <= 0 {
		return &ValidationError{Field: "display.truck_capacity", Message: "must be positive"}
	}

	return nil
}
