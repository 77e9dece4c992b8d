package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkorcha/tangle/internal/infrastructure/snapshot"
)

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the full network as a snapshot",
		Long: "Writes every person, relationship and network event to a file, or to " +
			"stdout when no file is given. The format is inferred from the file " +
			"extension unless --format is set.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runExport(cmd, path, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Snapshot format: json or yaml (default inferred, json for stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, path, format string) error {
	ctx := cmd.Context()

	codec := resolveCodec(path, format)
	if codec == nil {
		return fmt.Errorf("unsupported snapshot format %q", format)
	}

	return withClient(func(c *apiClient) error {
		snap, err := c.exportSnapshot(ctx)
		if err != nil {
			return fmt.Errorf("exporting snapshot: %w", err)
		}

		if path == "" {
			return codec.Encode(os.Stdout, snap)
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating snapshot file: %w", err)
		}
		defer f.Close()

		if err := codec.Encode(f, snap); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}

		fmt.Printf("Exported %d people, %d relationships, %d network events to %s\n",
			len(snap.People), len(snap.Relationships), len(snap.NetworkEvents), path)
		return nil
	})
}

// resolveCodec picks a codec from the explicit format flag first, then the
// file extension, then falls back to JSON for stdout.
func resolveCodec(path, format string) snapshot.Codec {
	if format != "" {
		return snapshot.ForFormat(format)
	}
	if path != "" {
		return snapshot.ForFile(path)
	}
	return snapshot.ForFormat("json")
}
