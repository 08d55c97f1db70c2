// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/ghstatus/internal/github"
	"github.com/mark3labs/ghstatus/internal/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats accepted by --output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds all configuration values for status-checker.
type Config struct {
	APIURL    string        `mapstructure:"api_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Output    string        `mapstructure:"output"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFile   string        `mapstructure:"log_file"`
}

// flagKeys maps config keys to the flag names that set them.
var flagKeys = map[string]string{
	"api_url":    "api-url",
	"user_agent": "user-agent",
	"timeout":    "timeout",
	"output":     "output",
	"log_level":  "log-level",
	"log_file":   "log-file",
}

// RegisterFlags adds the API and logging flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("api-url", github.DefaultBaseURL, "GitHub API base URL")
	fs.String("user-agent", github.DefaultUserAgent, "User-Agent header sent with API requests")
	fs.Duration("timeout", 0, "HTTP request timeout (0 uses the HTTP client default)")
	fs.String("log-level", "info", "Diagnostic log level: debug, info, warn or error")
	fs.String("log-file", "", "Append diagnostic logs to this file")
}

// RegisterOutputFlag adds --output/-o to fs.
func RegisterOutputFlag(fs *pflag.FlagSet) {
	fs.StringP("output", "o", OutputText, "Output format: text, json or yaml")
}

// Load resolves configuration from flags over defaults.
// Flags missing from fs keep their default values.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("api_url", github.DefaultBaseURL)
	v.SetDefault("user_agent", github.DefaultUserAgent)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("output", OutputText)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	if fs != nil {
		for key, name := range flagKeys {
			flag := fs.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("binding %s flag: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that enumerated values are known.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format %q (want text, json or yaml)", c.Output)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", c.Timeout)
	}
	return nil
}

// Structured reports whether the output format is machine readable.
func (c *Config) Structured() bool {
	return c.Output == OutputJSON || c.Output == OutputYAML
}
