package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	DefaultRemoteURL      = "https://jsonplaceholder.typicode.com/posts"
	DefaultPageLimit      = 5
	DefaultTimeout        = 10 * time.Second
	DefaultServerCategory = "Server"
	DefaultPullInterval   = 30 * time.Second
	DefaultPushInterval   = 30 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogMaxSizeMB   = 10
	DefaultLogMaxFiles    = 5
)

// Environment variables that override file values.
const (
	EnvRemoteURL = "QUOTESYNC_REMOTE_URL"
	EnvLogLevel  = "QUOTESYNC_LOG_LEVEL"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config represents <data dir>/config.yaml.
type Config struct {
	Store  string       `yaml:"store"`
	Remote RemoteConfig `yaml:"remote"`
	Sync   SyncConfig   `yaml:"sync"`
	Log    LogConfig    `yaml:"log"`
}

// RemoteConfig describes the remote quote endpoint.
type RemoteConfig struct {
	ReadURL        string        `yaml:"read_url"`
	WriteURL       string        `yaml:"write_url"`
	PageLimit      int           `yaml:"page_limit"`
	Timeout        time.Duration `yaml:"timeout"`
	ServerCategory string        `yaml:"server_category"`
}

// SyncConfig holds the pull and push schedules used by `quotesync watch`.
type SyncConfig struct {
	PullInterval time.Duration `yaml:"pull_interval"`
	PushInterval time.Duration `yaml:"push_interval"`
}

// LogConfig controls the structured logger. An empty File means
// <data dir>/quotesync.log.
type LogConfig struct {
	Level     string `yaml:"level"`
	File      string `yaml:"file,omitempty"`
	MaxSizeMB int    `yaml:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Store: "file",
		Remote: RemoteConfig{
			ReadURL:        DefaultRemoteURL,
			WriteURL:       DefaultRemoteURL,
			PageLimit:      DefaultPageLimit,
			Timeout:        DefaultTimeout,
			ServerCategory: DefaultServerCategory,
		},
		Sync: SyncConfig{
			PullInterval: DefaultPullInterval,
			PushInterval: DefaultPushInterval,
		},
		Log: LogConfig{
			Level:     DefaultLogLevel,
			MaxSizeMB: DefaultLogMaxSizeMB,
			MaxFiles:  DefaultLogMaxFiles,
		},
	}
}

// Parse parses config.yaml bytes. Fields absent from data keep their defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parsing config: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads path, applies environment overrides and validates the result.
// A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	} else {
		cfg, err = Parse(data)
		if err != nil {
			return Config{}, err
		}
	}

	ApplyEnv(&cfg, os.Getenv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write saves cfg to path.
func Write(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays environment overrides read through getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvRemoteURL)); v != "" {
		cfg.Remote.ReadURL = v
		cfg.Remote.WriteURL = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Store {
	case "file", "sqlite":
	default:
		return fmt.Errorf("%w: store must be \"file\" or \"sqlite\", got %q", ErrInvalidConfig, c.Store)
	}
	if err := validateURL("remote.read_url", c.Remote.ReadURL); err != nil {
		return err
	}
	if err := validateURL("remote.write_url", c.Remote.WriteURL); err != nil {
		return err
	}
	if c.Remote.PageLimit <= 0 {
		return fmt.Errorf("%w: remote.page_limit must be positive", ErrInvalidConfig)
	}
	if c.Remote.Timeout <= 0 {
		return fmt.Errorf("%w: remote.timeout must be positive", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Remote.ServerCategory) == "" {
		return fmt.Errorf("%w: remote.server_category must not be empty", ErrInvalidConfig)
	}
	if c.Sync.PullInterval <= 0 {
		return fmt.Errorf("%w: sync.pull_interval must be positive", ErrInvalidConfig)
	}
	if c.Sync.PushInterval <= 0 {
		return fmt.Errorf("%w: sync.push_interval must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be debug, info, warn or error, got %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

func validateURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an http(s) URL, got %q", ErrInvalidConfig, field, raw)
	}
	return nil
}
