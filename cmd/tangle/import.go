package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a snapshot, replacing the current network",
		Long: "Reads a snapshot file and replaces the server's entire state with " +
			"its contents. Existing people, relationships and network events are " +
			"discarded.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Snapshot format: json or yaml (default inferred from extension)")

	return cmd
}

func runImport(cmd *cobra.Command, path, format string) error {
	ctx := cmd.Context()

	codec := resolveCodec(path, format)
	if codec == nil {
		return fmt.Errorf("unsupported snapshot format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()

	snap, err := codec.Decode(f)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	return withClient(func(c *apiClient) error {
		if err := c.importSnapshot(ctx, snap); err != nil {
			return fmt.Errorf("importing snapshot: %w", err)
		}
		fmt.Printf("Imported %d people, %d relationships, %d network events\n",
			len(snap.People), len(snap.Relationships), len(snap.NetworkEvents))
		return nil
	})
}
