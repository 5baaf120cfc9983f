package configuration

import "errors"

var (
	ErrConfiguration       = errors.New("configuration")
	ErrCantReadConfigFile  = errors.New("can't read config file")
	ErrCantParseConfigFile = errors.New("can't parse config file")
	ErrInvalidParallelism  = errors.New("parallel must not be negative")
	ErrInvalidPollInterval = errors.New("poll_interval_ms must be positive")
)
