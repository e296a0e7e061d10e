// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/tensorplex-labs/coincidence/internal/coincidence"
)

type AppConfig struct {
	Environment string `env:"ENVIRONMENT, default=dev"`
	CoincidenceEnvConfig
}

// CoincidenceEnvConfig configures a scoring run.
type CoincidenceEnvConfig struct {
	InputPath   string `env:"COINCIDENCE_INPUT"`
	OutputPath  string `env:"COINCIDENCE_OUTPUT"`
	TriangleRaw string `env:"COINCIDENCE_TRIANGLE, default=lower"`
	Parallelism int    `env:"COINCIDENCE_PARALLELISM, default=0"`
}

// Triangle parses TriangleRaw.
func (c CoincidenceEnvConfig) Triangle() (coincidence.Triangle, error) {
	return coincidence.ParseTriangle(c.TriangleRaw)
}

func LoadConfig(ctx context.Context) (*AppConfig, error) {
	return LoadConfigWith(ctx, envconfig.OsLookuper())
}

// LoadConfigWith reads the configuration through l and validates it.
func LoadConfigWith(ctx context.Context, l envconfig.Lookuper) (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	if _, err := cfg.Triangle(); err != nil {
		return nil, err
	}
	if cfg.Parallelism < 0 {
		return nil, fmt.Errorf("COINCIDENCE_PARALLELISM must not be negative, got %d", cfg.Parallelism)
	}
	return cfg, nil
}
