package main

import (
	"fmt"
	"os"

	"github.com/mkorcha/tangle/internal/infrastructure/config"
)

// withClient loads config and builds an API client for a running tangle
// server, then calls the provided function. The --server flag wins over
// config and environment.
func withClient(fn func(*apiClient) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	server := cfg.Client.ServerURL
	if globalServer != "" {
		server = globalServer
	}

	return fn(newAPIClient(server))
}
