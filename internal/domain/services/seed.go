package services

import (
	"context"
	"fmt"

	"github.com/mkorcha/tangle/internal/domain/entities"
)

// SeedSampleData loads the fixed demonstration network into an empty ledger.
// When people are already present the call is a no-op and returns false.
func (s *LedgerService) SeedSampleData(ctx context.Context) (bool, error) {
	people, err := s.store.ListPeople(ctx)
	if err != nil {
		return false, fmt.Errorf("listing people: %w", err)
	}
	if len(people) > 0 {
		return false, nil
	}

	for i := range samplePeople {
		p := samplePeople[i]
		if err := s.store.SavePerson(ctx, &p); err != nil {
			return false, fmt.Errorf("seeding person %s: %w", p.Name, err)
		}
	}
	for i := range sampleRelationships {
		r := sampleRelationships[i]
		if err := s.store.SaveRelationship(ctx, &r); err != nil {
			return false, fmt.Errorf("seeding relationship %s: %w", r.ID, err)
		}
	}
	return true, nil
}

var samplePeople = []entities.Person{
	{ID: "1", Name: "Alex", X: 300, Y: 200},
	{ID: "2", Name: "Jordan", X: 500, Y: 150},
	{ID: "3", Name: "Sam", X: 400, Y: 350},
	{ID: "4", Name: "Casey", X: 200, Y: 300},
}

var sampleRelationships = []entities.Relationship{
	{
		ID:          "r1",
		Person1ID:   "1",
		Person2ID:   "2",
		Type:        "Marriage",
		HealthScore: 65,
		Events: []entities.RelationshipEvent{
			{ID: "e1", Type: entities.EventPositive, Category: "Trip Together", Description: "Anniversary trip to Paris", Impact: 18, Date: "2025-06-15"},
			{ID: "e2", Type: entities.EventNegative, Category: "Argument", Description: "Disagreement about finances", Impact: -8, Date: "2025-08-20"},
			{ID: "e3", Type: entities.EventPositive, Category: "Support", Description: "Helped during work crisis", Impact: 12, Date: "2025-10-05"},
		},
	},
	{
		ID:          "r2",
		Person1ID:   "1",
		Person2ID:   "3",
		Type:        "Best Friend",
		HealthScore: 80,
		Events: []entities.RelationshipEvent{
			{ID: "e4", Type: entities.EventPositive, Category: "Quality Time", Description: "Weekly game nights", Impact: 8, Date: "2025-09-01"},
			{ID: "e5", Type: entities.EventPositive, Category: "Gift", Description: "Thoughtful birthday present", Impact: 10, Date: "2025-11-12"},
		},
	},
	{
		ID:          "r3",
		Person1ID:   "2",
		Person2ID:   "4",
		Type:        "Colleague",
		HealthScore: 45,
		Events: []entities.RelationshipEvent{
			{ID: "e6", Type: entities.EventNegative, Category: "Lie", Description: "Took credit for shared work", Impact: -12, Date: "2025-07-22"},
			{ID: "e7", Type: entities.EventPositive, Category: "Apology", Description: "Sincere apology and correction", Impact: 15, Date: "2025-07-30"},
		},
	},
	{
		ID:          "r4",
		Person1ID:   "3",
		Person2ID:   "4",
		Type:        "Family",
		HealthScore: 30,
		Events: []entities.RelationshipEvent{
			{ID: "e8", Type: entities.EventNegative, Category: "Fight", Description: "Heated argument at family dinner", Impact: -15, Date: "2025-12-25"},
			{ID: "e9", Type: entities.EventNegative, Category: "Neglect", Description: "Forgot important milestone", Impact: -5, Date: "2025-11-15"},
		},
	},
}
