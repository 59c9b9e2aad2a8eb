package main

import (
	"fmt"

	"github.com/mark3labs/templatetouch/internal/config"
	"github.com/mark3labs/templatetouch/internal/logger"
	"github.com/mark3labs/templatetouch/internal/menu"
	"github.com/spf13/afero"
)

// loadConfig loads and validates the configuration and applies its logging
// settings.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return cfg, nil
}

// newSynchronizer builds the menu synchronizer described by cfg.
func newSynchronizer(cfg *config.Config) (*menu.Synchronizer, error) {
	client, err := cfg.NewClient()
	if err != nil {
		return nil, err
	}
	dir, err := cfg.ResolvedPluginDir()
	if err != nil {
		return nil, err
	}
	return &menu.Synchronizer{
		Client:            client,
		FS:                afero.NewOsFs(),
		Dir:               dir,
		BaseName:          cfg.BaseMenu,
		MenuName:          cfg.MenuFile,
		Prefix:            cfg.TemplatePrefix,
		TrailingSeparator: cfg.TrailingSeparator,
	}, nil
}
