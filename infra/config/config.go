// Package config loads redcatch settings from flags, REDCATCH_* variables,
// an optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CrestNiraj12/redcatch/domain"
)

// EnvPrefix is prepended to every environment variable, e.g. REDCATCH_BASE_URL.
const EnvPrefix = "REDCATCH"

// Config holds application-level configuration.
type Config struct {
	BaseURL          string        `mapstructure:"base_url"`
	UserAgent        string        `mapstructure:"user_agent"`
	Category         string        `mapstructure:"category"`
	RestrictSearch   bool          `mapstructure:"restrict_search"`
	SearchDebounce   time.Duration `mapstructure:"search_debounce"`
	ErrorDismiss     time.Duration `mapstructure:"error_dismiss"`
	HTTPTimeout      time.Duration `mapstructure:"http_timeout"`
	RateInterval     time.Duration `mapstructure:"rate_interval"`
	RateBurst        int           `mapstructure:"rate_burst"`
	CommentCacheSize int           `mapstructure:"comment_cache_size"`
	LogFile          string        `mapstructure:"log_file"`
	LogLevel         string        `mapstructure:"log_level"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"base-url": "base_url",
	"category": "category",
	"log-file": "log_file",
}

// Load resolves the configuration. Flags take precedence over the
// environment, which takes precedence over the config file. flags may be nil.
//
//	REDCATCH_BASE_URL          reddit host (default https://www.reddit.com)
//	REDCATCH_CATEGORY          initial category (default popular)
//	REDCATCH_SEARCH_DEBOUNCE   delay before a typed search fires (default 500ms)
//	REDCATCH_LOG_FILE          log destination; logging is off when empty
func Load(flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfgFile := ""
	if flags != nil {
		if f := flags.Lookup("config"); f != nil {
			cfgFile = f.Value.String()
		}
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/redcatch")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "https://www.reddit.com")
	v.SetDefault("user_agent", "")
	v.SetDefault("category", string(domain.CategoryPopular))
	v.SetDefault("restrict_search", true)
	v.SetDefault("search_debounce", 500*time.Millisecond)
	v.SetDefault("error_dismiss", 5*time.Second)
	v.SetDefault("http_timeout", 30*time.Second)
	v.SetDefault("rate_interval", time.Second)
	v.SetDefault("rate_burst", 3)
	v.SetDefault("comment_cache_size", 64)
	v.SetDefault("log_file", "")
	v.SetDefault("log_level", "info")
}

func (c *Config) normalize() error {
	base, err := normalizeBaseURL(c.BaseURL)
	if err != nil {
		return err
	}
	c.BaseURL = base

	cat, err := domain.ParseCategory(c.Category)
	if err != nil {
		return fmt.Errorf("invalid category %q: %w", c.Category, err)
	}
	c.Category = string(cat)

	if _, err := c.Level(); err != nil {
		return err
	}

	switch {
	case c.SearchDebounce < 0:
		return errors.New("search_debounce cannot be negative")
	case c.ErrorDismiss <= 0:
		return errors.New("error_dismiss must be positive")
	case c.HTTPTimeout < 0:
		return errors.New("http_timeout cannot be negative")
	case c.RateBurst < 0:
		return errors.New("rate_burst cannot be negative")
	case c.CommentCacheSize <= 0:
		return errors.New("comment_cache_size must be positive")
	}
	c.UserAgent = strings.TrimSpace(c.UserAgent)
	c.LogFile = strings.TrimSpace(c.LogFile)
	return nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q (must be debug, info, warn, or error)", c.LogLevel)
	}
	return lvl, nil
}

// StartCategory returns the configured initial category.
func (c Config) StartCategory() domain.Category {
	return domain.Category(c.Category)
}

func normalizeBaseURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", errors.New("invalid base_url: must be an absolute URL")
	}
	switch parsed.Scheme {
	case "https":
	case "http":
		if !isLoopback(parsed.Hostname()) {
			return "", errors.New("invalid base_url: only https is allowed for non-local hosts")
		}
	default:
		return "", fmt.Errorf("invalid base_url: unsupported scheme %q", parsed.Scheme)
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return strings.TrimRight(parsed.String(), "/"), nil
}

func isLoopback(host string) bool {
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
