package cmd

import (
	"fmt"

	"modlist-builder/core/config"
	"modlist-builder/core/logger"
	"modlist-builder/core/storage"
	"modlist-builder/feature/output"

	"go.uber.org/zap"
)

// setup loads the configuration and builds the logger.
func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, l, nil
}

// newPublisher returns nil when publishing is disabled.
func newPublisher(cfg storage.Config, l *zap.Logger) (*output.Publisher, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to storage: %w", err)
	}

	return output.NewPublisher(client, cfg, l), nil
}
