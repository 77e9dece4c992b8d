package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mkorcha/tangle/internal/domain/services"
	"github.com/mkorcha/tangle/internal/infrastructure/config"
	"github.com/mkorcha/tangle/internal/infrastructure/memstore"
	"github.com/mkorcha/tangle/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tangle server",
		Long: "Runs the HTTP server holding the in-memory relationship ledger. " +
			"State lives for the lifetime of the process and is lost on shutdown; " +
			"use export/import to carry a network across restarts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr, seed)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&seed, "seed", false, "Seed the demonstration network on startup")

	return cmd
}

func runServe(cmd *cobra.Command, addr string, seed bool) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	store := memstore.New()
	catalog := services.NewCatalog(cfg.Catalog.Categories, cfg.Catalog.RelationshipTypes)
	srv := server.New(store, catalog)

	ctx := cmd.Context()
	if seed || cfg.Server.Seed {
		seeded, err := srv.Ledger().SeedSampleData(ctx)
		if err != nil {
			return fmt.Errorf("seeding sample data: %w", err)
		}
		if seeded {
			log.Println("Seeded demonstration network")
		}
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.SetupRouter(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting tangle server on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	log.Println("Server stopped")
	return nil
}
