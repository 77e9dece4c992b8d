package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List event categories and their default impacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd)
		},
	}

	return cmd
}

func runCategories(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		cats, err := c.categories(ctx)
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTYPE\tIMPACT\tRETYPES TO")
		for _, cat := range cats {
			fmt.Fprintf(w, "%s\t%s\t%+d\t%s\n", cat.Name, cat.Type, cat.DefaultImpact, cat.ChangesRelationshipTo)
		}
		return w.Flush()
	})
}
