package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPeopleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "people",
		Short: "Manage people in the network",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeopleList(cmd)
		},
	}

	cmd.AddCommand(newPeopleListCmd())
	cmd.AddCommand(newPeopleAddCmd())
	cmd.AddCommand(newPeopleRemoveCmd())
	cmd.AddCommand(newPeopleShowCmd())

	return cmd
}

func newPeopleListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all people",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeopleList(cmd)
		},
	}
}

func runPeopleList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		people, err := c.listPeople(ctx)
		if err != nil {
			return fmt.Errorf("listing people: %w", err)
		}
		printPeople(people)
		return nil
	})
}

func newPeopleAddCmd() *cobra.Command {
	var avatar string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeopleAdd(cmd, args[0], avatar)
		},
	}

	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL or base64 image")

	return cmd
}

func runPeopleAdd(cmd *cobra.Command, name, avatar string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		p, err := c.addPerson(ctx, name, avatar)
		if err != nil {
			return fmt.Errorf("adding person: %w", err)
		}
		fmt.Printf("Added person %s (%s)\n", p.Name, p.ID)
		return nil
	})
}

func newPeopleRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a person and all their relationships",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeopleRemove(cmd, args[0])
		},
	}
}

func runPeopleRemove(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		if err := c.deletePerson(ctx, id); err != nil {
			return fmt.Errorf("removing person: %w", err)
		}
		fmt.Printf("Removed person %s\n", id)
		return nil
	})
}

func newPeopleShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a person's relationships and network events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeopleShow(cmd, args[0])
		},
	}
}

func runPeopleShow(cmd *cobra.Command, id string) error {
	ctx := cmd.Context()

	return withClient(func(c *apiClient) error {
		people, err := c.listPeople(ctx)
		if err != nil {
			return fmt.Errorf("listing people: %w", err)
		}

		rels, err := c.personRelationships(ctx, id)
		if err != nil {
			return fmt.Errorf("listing relationships: %w", err)
		}

		events, err := c.personEvents(ctx, id)
		if err != nil {
			return fmt.Errorf("listing events: %w", err)
		}

		fmt.Printf("Relationships for %s:\n", personLabel(personNames(people), id))
		printRelationships(rels, personNames(people))
		fmt.Println()
		fmt.Println("Network events:")
		printNetworkEvents(events)
		return nil
	})
}
