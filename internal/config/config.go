// Package config holds the immutable gateway configuration. Values come from
// defaults, then an optional TOML file, then environment variables; later
// sources win. The resulting Config is constructed once at startup and passed
// to components explicitly; nothing reads ambient globals after that.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// Config is the full configuration surface of the gateway.
type Config struct {
	// Upstream LaDiSales API.
	APIBaseURL      string   `env:"LADISALES_API_BASE_URL"      toml:"api_base_url"`
	APIKey          string   `env:"LADISALES_API_KEY"           toml:"api_key"`
	LocationBaseURL string   `env:"LADISALES_LOCATION_BASE_URL" toml:"location_base_url"`
	UpstreamTimeout Duration `env:"LADISALES_UPSTREAM_TIMEOUT"  toml:"upstream_timeout"`
	RetryMax        int      `env:"LADISALES_RETRY_MAX"         toml:"retry_max"`
	MaxPages        int      `env:"LADISALES_MAX_PAGES"         toml:"max_pages"`

	// Inbound listener.
	Listen       string   `env:"LADISALES_LISTEN"             toml:"listen"`
	ReadTimeout  Duration `env:"LADISALES_HTTP_READ_TIMEOUT"  toml:"http_read_timeout"`
	WriteTimeout Duration `env:"LADISALES_HTTP_WRITE_TIMEOUT" toml:"http_write_timeout"`
	IdleTimeout  Duration `env:"LADISALES_HTTP_IDLE_TIMEOUT"  toml:"http_idle_timeout"`
	DrainTimeout Duration `env:"LADISALES_HTTP_DRAIN_TIMEOUT" toml:"http_drain_timeout"`

	// Logging.
	LogLevel  string `env:"LADISALES_LOG_LEVEL"  toml:"log_level"`
	LogFormat string `env:"LADISALES_LOG_FORMAT" toml:"log_format"`
}

// Default returns a Config with every tunable set to its default. The
// upstream base URL and API key have no defaults; startup fails without them.
func Default() *Config {
	return &Config{
		UpstreamTimeout: Duration(10 * time.Second),
		RetryMax:        2,
		MaxPages:        50,
		Listen:          ":8000",
		ReadTimeout:     Duration(15 * time.Second),
		WriteTimeout:    Duration(0), // streaming responses must not be cut off
		IdleTimeout:     Duration(time.Minute),
		DrainTimeout:    Duration(10 * time.Second),
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load builds a Config from defaults, the optional TOML file at path, and
// the environment. An empty path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: parsing %s: %w", ErrFailedToLoadConfig, path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if cfg.LocationBaseURL == "" {
		cfg.LocationBaseURL = cfg.APIBaseURL
	}

	return cfg, nil
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.APIBaseURL == "" {
		errs = append(errs, ErrMissingAPIBaseURL)
	} else if err := validateBaseURL(c.APIBaseURL); err != nil {
		errs = append(errs, fmt.Errorf("api_base_url: %w", err))
	}

	if c.APIKey == "" {
		errs = append(errs, ErrMissingAPIKey)
	}

	if c.LocationBaseURL != "" {
		if err := validateBaseURL(c.LocationBaseURL); err != nil {
			errs = append(errs, fmt.Errorf("location_base_url: %w", err))
		}
	}

	if c.Listen == "" {
		errs = append(errs, ErrMissingListenAddr)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat))
	}

	if c.RetryMax < 0 {
		errs = append(errs, ErrNegativeRetryMax)
	}
	if c.MaxPages < 1 {
		errs = append(errs, ErrInvalidMaxPages)
	}
	if c.UpstreamTimeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}

	return errors.Join(errs...)
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, raw)
	}
	return nil
}
