// Package main provides the entry point for the tangle CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0-dev"
	globalServer string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "tangle",
		Short:   "Track a social network of people, relationships, and the events that shape them",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVarP(&globalServer, "server", "s", "", "Base URL of the tangle server (default from config)")

	rootCmd.AddCommand(
		newServeCmd(),
		newInitCmd(),
		newPeopleCmd(),
		newRelationshipsCmd(),
		newEventsCmd(),
		newNetworkCmd(),
		newExportCmd(),
		newImportCmd(),
		newSeedCmd(),
		newCategoriesCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
