package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config is the service configuration, read from the environment.
type Config struct {
	ServiceName     string `env:"SERVICE_NAME" envDefault:"configurable-price-service"`
	GRPCAddr        string `env:"GRPC_ADDR" envDefault:":50051"`
	HTTPAddr        string `env:"HTTP_ADDR" envDefault:":8080"`
	SpannerDatabase string `env:"SPANNER_DATABASE" envDefault:"projects/test-project/instances/emulator-instance/databases/test-db"`
	DefaultStoreID  int64  `env:"DEFAULT_STORE_ID" envDefault:"1"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`

	// PriceTraceFile, when set, receives debug trace lines from the price selector.
	PriceTraceFile string `env:"PRICE_TRACE_FILE"`
}

// Load reads the optional dotenv files (existing variables win) and parses
// the environment into a Config.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DefaultStoreID < 0 {
		return nil, fmt.Errorf("parse config: DEFAULT_STORE_ID must not be negative")
	}
	return &cfg, nil
}
