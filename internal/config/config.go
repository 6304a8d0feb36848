package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// FileName is looked up in the working directory when no path is given.
const FileName = "sandshell.toml"

const (
	EnvUser     = "SANDSHELL_USER"
	EnvHost     = "SANDSHELL_HOST"
	EnvTimeout  = "SANDSHELL_TIMEOUT"
	EnvLogLevel = "SANDSHELL_LOG_LEVEL"
	EnvLogFile  = "SANDSHELL_LOG_FILE"
)

type Config struct {
	Prompt  PromptConfig
	Session SessionConfig
	Log     LogConfig
}

type PromptConfig struct {
	User string
	Host string
}

type SessionConfig struct {
	// Timeout is how long a session lives before it is reset. Zero disables it.
	Timeout time.Duration
}

type LogConfig struct {
	Level string
	File  string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Prompt:  PromptConfig{User: "user", Host: "ubuntu"},
		Session: SessionConfig{Timeout: 5 * time.Minute},
		Log:     LogConfig{Level: "warn"},
	}
}

// fileConfig mirrors the TOML layout. Pointers tell unset from zero.
type fileConfig struct {
	Prompt struct {
		User *string `toml:"user"`
		Host *string `toml:"host"`
	} `toml:"prompt"`
	Session struct {
		Timeout *string `toml:"timeout"`
	} `toml:"session"`
	Log struct {
		Level *string `toml:"level"`
		File  *string `toml:"file"`
	} `toml:"log"`
}

// Load builds a Config with priority defaults < file < env.
// An explicit path must exist; the default file is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := mergeFile(cfg, path, data); err != nil {
			return nil, err
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func mergeFile(cfg *Config, path string, data []byte) error {
	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("invalid TOML in %s: %w", path, err)
	}

	if file.Prompt.User != nil {
		cfg.Prompt.User = *file.Prompt.User
	}
	if file.Prompt.Host != nil {
		cfg.Prompt.Host = *file.Prompt.Host
	}
	if file.Session.Timeout != nil {
		d, err := time.ParseDuration(*file.Session.Timeout)
		if err != nil {
			return fmt.Errorf("invalid session.timeout in %s: %w", path, err)
		}
		cfg.Session.Timeout = d
	}
	if file.Log.Level != nil {
		cfg.Log.Level = *file.Log.Level
	}
	if file.Log.File != nil {
		cfg.Log.File = *file.Log.File
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvUser); v != "" {
		cfg.Prompt.User = v
	}
	if v := os.Getenv(EnvHost); v != "" {
		cfg.Prompt.Host = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Session.Timeout = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Log.File = v
	}
	return nil
}
