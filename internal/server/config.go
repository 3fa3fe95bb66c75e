package server

import (
	"log"
	"os"
	"strconv"
)

// Environment variables read by LoadConfig.
const (
	EnvLogLevel     = "BLURHASH_MCP_LOG_LEVEL"
	EnvWorkers      = "BLURHASH_MCP_WORKERS"
	EnvMaxDimension = "BLURHASH_MCP_MAX_DIMENSION"
)

// Config holds server settings.
type Config struct {
	// Debug enables per-request logging to stderr.
	Debug bool

	// Workers is the number of goroutines used for the forward transform
	// of an image. 1 streams pixels through a single accumulator. More than
	// one may change the last quantization step of a hash, since partial
	// sums are added in a different order.
	Workers int

	// MaxDimension is the downscale bound applied before encoding when a
	// request does not set max_dimension. 0 never downscales.
	MaxDimension int
}

// DefaultConfig returns the settings used when no environment is set.
// Encoding is serial by default so hashes are bit-identical to the library's
// for the same pixels.
func DefaultConfig() Config {
	return Config{
		Workers: 1,
	}
}

// LoadConfig reads the configuration from the environment. Invalid values
// are logged and replaced by their defaults.
func LoadConfig() Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) Config {
	cfg := DefaultConfig()

	cfg.Debug = getenv(EnvLogLevel) == "debug"

	if v := getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			log.Printf("Ignoring %s=%q: must be a positive integer", EnvWorkers, v)
		} else {
			cfg.Workers = n
		}
	}

	if v := getenv(EnvMaxDimension); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Printf("Ignoring %s=%q: must be a non-negative integer", EnvMaxDimension, v)
		} else {
			cfg.MaxDimension = n
		}
	}

	return cfg
}
