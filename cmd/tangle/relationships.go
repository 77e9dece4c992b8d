package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRelationshipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "relationships",
		Aliases: []string{"rel"},
		Short:   "Manage relationships between people",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelationshipsList(cmd)
		},
	}

	cmd.AddCommand(newRelationshipsListCmd())
	cmd.AddCommand(newRelationshipsAddCmd())
	cmd.AddCommand(newRelationshipsRemoveCmd())
	cmd.AddCommand(newRelationshipsShowCmd())
	cmd.AddCommand(newRelationshipsPairCmd())
	cmd.AddCommand(newRelationshipTypesCmd())

	return cmd
}

func newRelationshipsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all relationships",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelationshipsList(cmd)
		},
	}
}

func runRelationshipsList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		rels, err := c.listRelationships(ctx)
		if err != nil {
			return fmt.Errorf("listing relationships: %w", err)
		}
		people, err := c.listPeople(ctx)
		if err != nil {
			return fmt.Errorf("listing people: %w", err)
		}
		printRelationships(rels, personNames(people))
		return nil
	})
}

func newRelationshipsAddCmd() *cobra.Command {
	var health int
	var healthSet bool
	var p1Type, p2Type string

	cmd := &cobra.Command{
		Use:   "add <person1-id> <person2-id> <type>",
		Short: "Add a relationship between two people",
		Long: "Creates a relationship with the default starting health score. " +
			"Use --p1-type/--p2-type to record an asymmetric relationship where " +
			"each party perceives the other differently.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			healthSet = cmd.Flags().Changed("health")
			return runRelationshipsAdd(cmd, args[0], args[1], args[2], health, healthSet, p1Type, p2Type)
		},
	}

	cmd.Flags().IntVar(&health, "health", 0, "Initial health score (default 50)")
	cmd.Flags().StringVar(&p1Type, "p1-type", "", "How person 1 views person 2 (asymmetric overlay)")
	cmd.Flags().StringVar(&p2Type, "p2-type", "", "How person 2 views person 1 (asymmetric overlay)")

	return cmd
}

func runRelationshipsAdd(cmd *cobra.Command, p1, p2, relType string, health int, healthSet bool, p1Type, p2Type string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		req := relationshipRequest{
			Person1ID:  p1,
			Person2ID:  p2,
			Type:       relType,
			P1ToP2Type: p1Type,
			P2ToP1Type: p2Type,
		}
		if healthSet {
			req.HealthScore = &health
		}

		rel, err := c.addRelationship(ctx, req)
		if err != nil {
			return fmt.Errorf("adding relationship: %w", err)
		}
		fmt.Printf("Added relationship %s (%s, health %d)\n", rel.ID, rel.Type, rel.HealthScore)
		return nil
	})
}

func newRelationshipsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a relationship and its event history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelationshipsRemove(cmd, args[0])
		},
	}
}

func runRelationshipsRemove(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		if err := c.deleteRelationship(ctx, id); err != nil {
			return fmt.Errorf("removing relationship: %w", err)
		}
		fmt.Printf("Removed relationship %s\n", id)
		return nil
	})
}

func newRelationshipsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a relationship with its full event history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelationshipsShow(cmd, args[0])
		},
	}
}

func runRelationshipsShow(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		rel, err := c.getRelationship(ctx, id)
		if err != nil {
			return fmt.Errorf("fetching relationship: %w", err)
		}
		people, err := c.listPeople(ctx)
		if err != nil {
			return fmt.Errorf("listing people: %w", err)
		}
		names := personNames(people)

		fmt.Printf("Relationship:  %s\n", rel.ID)
		fmt.Printf("People:        %s - %s\n", personLabel(names, rel.Person1ID), personLabel(names, rel.Person2ID))
		fmt.Printf("Type:          %s\n", rel.Type)
		fmt.Printf("Health:        %d (%s)\n", rel.HealthScore, healthLabel(rel.HealthScore))
		if rel.P1ToP2Type != "" || rel.P2ToP1Type != "" {
			fmt.Printf("Asymmetric:    %s / %s\n", rel.P1ToP2Type, rel.P2ToP1Type)
		}

		if len(rel.Events) == 0 {
			fmt.Println("No events recorded.")
			return nil
		}
		fmt.Println()
		fmt.Println("Events:")
		for i := range rel.Events {
			ev := &rel.Events[i]
			fmt.Printf("  %s  %-20s %+d  %s\n", ev.Date, ev.Category, ev.Impact, truncate(ev.Description, 50))
		}
		return nil
	})
}

func newRelationshipsPairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pair <person1-id> <person2-id>",
		Short: "Look up the relationship between two people",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelationshipsPair(cmd, args[0], args[1])
		},
	}
}

func runRelationshipsPair(cmd *cobra.Command, a, b string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		rel, err := c.relationshipForPair(ctx, a, b)
		if err != nil {
			return fmt.Errorf("looking up pair: %w", err)
		}
		fmt.Printf("%s  %s  health %d\n", rel.ID, rel.Type, rel.HealthScore)
		return nil
	})
}

func newRelationshipTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the suggested relationship type vocabulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelationshipTypes(cmd)
		},
	}
}

func runRelationshipTypes(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		types, err := c.relationshipTypes(ctx)
		if err != nil {
			return fmt.Errorf("listing relationship types: %w", err)
		}
		for _, t := range types {
			fmt.Println(t)
		}
		return nil
	})
}
