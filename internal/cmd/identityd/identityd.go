// Package identityd parses identity service flags and launches the service.
package identityd

import (
	"context"
	"flag"

	entrypoint "github.com/oakwell/identityd/internal/platform/cmd"
	server "github.com/oakwell/identityd/internal/services/identity/app"
)

// Config holds identity command configuration.
type Config struct {
	Port int `env:"IDENTITYD_PORT" envDefault:"8094"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The identity gRPC server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the identity gRPC API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIdentity, func(context.Context) error {
		return server.Run(ctx, cfg.Port)
	})
}
