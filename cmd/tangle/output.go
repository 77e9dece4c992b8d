package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mkorcha/tangle/internal/domain/entities"
)

func printPeople(people []entities.Person) {
	if len(people) == 0 {
		fmt.Println("No people found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for i := range people {
		fmt.Fprintf(w, "%s\t%s\n", people[i].ID, people[i].Name)
	}
	w.Flush()
}

func printRelationships(rels []entities.Relationship, names map[string]string) {
	if len(rels) == 0 {
		fmt.Println("No relationships found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPEOPLE\tTYPE\tHEALTH\tEVENTS")
	for i := range rels {
		r := &rels[i]
		pair := fmt.Sprintf("%s - %s", personLabel(names, r.Person1ID), personLabel(names, r.Person2ID))
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", r.ID, pair, r.Type, r.HealthScore, len(r.Events))
	}
	w.Flush()
}

func printNetworkEvents(events []entities.NetworkEvent) {
	if len(events) == 0 {
		fmt.Println("No network events found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tDESCRIPTION\tPARTICIPANTS\tIMPACTS")
	for i := range events {
		e := &events[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
			e.ID, e.Date, e.Category, truncate(e.Description, 40), len(e.Participants), len(e.Impacts))
	}
	w.Flush()
}

func printImpacts(impacts []entities.Impact) {
	if len(impacts) == 0 {
		fmt.Println("No relationships affected.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RELATIONSHIP\tIMPACT\tAUTO\tREASON")
	for i := range impacts {
		auto := "yes"
		if !impacts[i].Auto {
			auto = "no"
		}
		fmt.Fprintf(w, "%s\t%+d\t%s\t%s\n",
			impacts[i].RelationshipID, impacts[i].Impact, auto, truncate(impacts[i].Reason, 50))
	}
	w.Flush()
}

// personNames builds an id-to-name index for display.
func personNames(people []entities.Person) map[string]string {
	names := make(map[string]string, len(people))
	for i := range people {
		names[people[i].ID] = people[i].Name
	}
	return names
}

func personLabel(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

// healthLabel summarizes a health score the way the UI does.
func healthLabel(score int) string {
	switch {
	case score >= 20:
		return "healthy"
	case score <= -20:
		return "strained"
	default:
		return "neutral"
	}
}

// truncate shortens a string to max length with ellipsis.
func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
