package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Record events against a relationship",
	}

	cmd.AddCommand(newEventsRecordCmd())
	cmd.AddCommand(newEventsListCmd())

	return cmd
}

func newEventsRecordCmd() *cobra.Command {
	var date string
	var impact int
	var image string

	cmd := &cobra.Command{
		Use:   "record <relationship-id> <category> <description>",
		Short: "Record an event against a relationship",
		Long: "Records an event: the relationship's health score shifts by the " +
			"event's impact (clamped to [-100, 100]) and the event joins the " +
			"relationship's history. Categories like Marriage or Breakup also " +
			"change the relationship type. Without --impact the category's " +
			"default impact applies.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var impactPtr *int
			if cmd.Flags().Changed("impact") {
				impactPtr = &impact
			}
			return runEventsRecord(cmd, args[0], args[1], args[2], date, impactPtr, image)
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Event date as YYYY-MM-DD (default today)")
	cmd.Flags().IntVarP(&impact, "impact", "i", 0, "Health impact override")
	cmd.Flags().StringVar(&image, "image", "", "Optional image reference")

	return cmd
}

func runEventsRecord(cmd *cobra.Command, relationshipID, category, description, date string, impact *int, image string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		rel, err := c.recordEvent(ctx, relationshipID, eventRequest{
			Category:    category,
			Description: description,
			Date:        date,
			Impact:      impact,
			Image:       image,
		})
		if err != nil {
			return fmt.Errorf("recording event: %w", err)
		}
		fmt.Printf("Recorded %s event; relationship is now %s with health %d\n", category, rel.Type, rel.HealthScore)
		return nil
	})
}

func newEventsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <relationship-id>",
		Short: "List network events that impacted a relationship",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEventsList(cmd, args[0])
		},
	}
}

func runEventsList(cmd *cobra.Command, relationshipID string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		events, err := c.relationshipEvents(ctx, relationshipID)
		if err != nil {
			return fmt.Errorf("listing events: %w", err)
		}
		printNetworkEvents(events)
		return nil
	})
}
