// Package web parses web command flags and starts the web service.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/foodgram/foodgram/internal/platform/cmd"
	"github.com/foodgram/foodgram/internal/platform/logging"
	"github.com/foodgram/foodgram/internal/services/web"
)

// Config holds the web command configuration. Env keys carry the
// FOODGRAM_ prefix added by the config loader.
type Config struct {
	HTTPAddr string `env:"WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	LogEnv   string `env:"WEB_LOG_ENV"   envDefault:"development"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.LogEnv, "log-env", cfg.LogEnv, "log environment (development or production)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.Setup(cfg.LogEnv)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
