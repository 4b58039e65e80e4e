// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag, so `env:"WEB_HTTP_ADDR"` reads
// FOODGRAM_WEB_HTTP_ADDR.
const EnvPrefix = "FOODGRAM_"

// ParseEnv loads configuration from FOODGRAM_-prefixed environment variables.
func ParseEnv(target any) error {
	if target == nil {
		return fmt.Errorf("parse env: target is required")
	}
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
