package main

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the HTTP server configuration, read from the environment.
type Config struct {
	// Addr is the address and port the server listens on.
	Addr string `env:"LISTCOMPARE_ADDR" env-default:":8080"`
	// ReadTimeout is the maximum duration for reading a request.
	ReadTimeout time.Duration `env:"LISTCOMPARE_READ_TIMEOUT" env-default:"30s"`
	// WriteTimeout is the maximum duration for writing a response.
	WriteTimeout time.Duration `env:"LISTCOMPARE_WRITE_TIMEOUT" env-default:"30s"`
	// MaxRequestSize caps the request body size in bytes.
	MaxRequestSize int `env:"LISTCOMPARE_MAX_REQUEST_SIZE" env-default:"10485760"`
	// Concurrency caps concurrent connections (0 = fasthttp default).
	Concurrency int `env:"LISTCOMPARE_CONCURRENCY" env-default:"0"`
	// RequestTimeout bounds a single comparison.
	RequestTimeout time.Duration `env:"LISTCOMPARE_REQUEST_TIMEOUT" env-default:"30s"`
	// WarmUp pre-exercises the comparator pipeline on startup.
	WarmUp bool `env:"LISTCOMPARE_WARM_UP" env-default:"true"`
	// LogFile is the log destination (empty = stdout).
	LogFile string `env:"LISTCOMPARE_LOG_FILE" env-default:""`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}
	return &cfg, nil
}
