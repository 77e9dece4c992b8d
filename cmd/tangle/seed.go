package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample people and relationships",
		Long: "Loads a small sample network for trying things out. Does nothing " +
			"if any people already exist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd)
		},
	}
}

func runSeed(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		seeded, err := c.seed(ctx)
		if err != nil {
			return fmt.Errorf("seeding sample data: %w", err)
		}
		if !seeded {
			fmt.Println("Network is not empty, skipped seeding")
			return nil
		}
		fmt.Println("Seeded sample network")
		return nil
	})
}
