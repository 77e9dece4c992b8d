package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type networkEventFlags struct {
	date      string
	image     string
	overrides map[string]int
	manual    []string
}

func newNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage network events spanning multiple people",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNetworkList(cmd)
		},
	}

	cmd.AddCommand(newNetworkListCmd())
	cmd.AddCommand(newNetworkCreateCmd())
	cmd.AddCommand(newNetworkPreviewCmd())
	cmd.AddCommand(newNetworkRemoveCmd())

	return cmd
}

func newNetworkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all network events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNetworkList(cmd)
		},
	}
}

func runNetworkList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		events, err := c.listNetworkEvents(ctx)
		if err != nil {
			return fmt.Errorf("listing network events: %w", err)
		}
		printNetworkEvents(events)
		return nil
	})
}

func networkEventCmdFlags(cmd *cobra.Command, flags *networkEventFlags) {
	cmd.Flags().StringVarP(&flags.date, "date", "d", "", "Event date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&flags.image, "image", "", "Optional image reference")
	cmd.Flags().StringToIntVar(&flags.overrides, "impact", nil, "Per-relationship impact override as relID=value")
	cmd.Flags().StringSliceVar(&flags.manual, "attach", nil, "Manually attach relationship IDs not implied by participants")
}

func newNetworkCreateCmd() *cobra.Command {
	var flags networkEventFlags

	cmd := &cobra.Command{
		Use:   "create <category> <description> <participant-id>...",
		Short: "Create a network event and apply its ripple effects",
		Long: "Creates an event shared by two or more participants. Every pair of " +
			"participants with an existing relationship is affected; each affected " +
			"relationship's health shifts by the category's default impact unless " +
			"overridden with --impact. Use --attach to pull in relationships not " +
			"implied by the participant list.",
		Args: cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNetworkCreate(cmd, args[0], args[1], args[2:], flags)
		},
	}

	networkEventCmdFlags(cmd, &flags)

	return cmd
}

func runNetworkCreate(cmd *cobra.Command, category, description string, participants []string, flags networkEventFlags) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		ev, err := c.createNetworkEvent(ctx, networkEventRequest{
			Category:              category,
			Description:           description,
			Date:                  flags.date,
			Image:                 flags.image,
			Participants:          participants,
			ImpactOverrides:       flags.overrides,
			ManualRelationshipIDs: flags.manual,
		})
		if err != nil {
			return fmt.Errorf("creating network event: %w", err)
		}

		fmt.Printf("Created network event %s affecting %d relationship(s)\n", ev.ID, len(ev.Impacts))
		printImpacts(ev.Impacts)
		return nil
	})
}

func newNetworkPreviewCmd() *cobra.Command {
	var flags networkEventFlags

	cmd := &cobra.Command{
		Use:   "preview <category> <description> <participant-id>...",
		Short: "Preview a network event's ripple effects without applying them",
		Args:  cobra.MinimumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNetworkPreview(cmd, args[0], args[1], args[2:], flags)
		},
	}

	networkEventCmdFlags(cmd, &flags)

	return cmd
}

func runNetworkPreview(cmd *cobra.Command, category, description string, participants []string, flags networkEventFlags) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		impacts, err := c.previewNetworkEvent(ctx, networkEventRequest{
			Category:              category,
			Description:           description,
			Date:                  flags.date,
			Participants:          participants,
			ImpactOverrides:       flags.overrides,
			ManualRelationshipIDs: flags.manual,
		})
		if err != nil {
			return fmt.Errorf("previewing network event: %w", err)
		}
		printImpacts(impacts)
		return nil
	})
}

func newNetworkRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a network event record",
		Long: "Removes the event record only. Health-score changes the event " +
			"already applied stay in place.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNetworkRemove(cmd, args[0])
		},
	}
}

func runNetworkRemove(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		if err := c.deleteNetworkEvent(ctx, id); err != nil {
			return fmt.Errorf("removing network event: %w", err)
		}
		fmt.Printf("Removed network event %s\n", id)
		return nil
	})
}
