package config

import "errors"

var (
	ErrFailedToLoadConfig = errors.New("failed to load config")
	ErrMissingAPIBaseURL  = errors.New("upstream API base URL is required")
	ErrMissingAPIKey      = errors.New("upstream API key is required")
	ErrMissingListenAddr  = errors.New("listen address is required")
	ErrInvalidBaseURL     = errors.New("base URL is not a valid http(s) URL")
	ErrInvalidLogFormat   = errors.New("log format must be text or json")
	ErrNegativeRetryMax   = errors.New("retry max cannot be negative")
	ErrInvalidMaxPages    = errors.New("max pages must be at least 1")
	ErrInvalidTimeout     = errors.New("upstream timeout must be positive")
)
