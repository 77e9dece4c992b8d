package services

import (
	"context"
	"fmt"

	"github.com/mkorcha/tangle/internal/domain/entities"
	"github.com/mkorcha/tangle/internal/domain/ports"
)

// NetworkService fans a single shared event out across the relationships it
// affects and applies the resulting impacts to the ledger.
type NetworkService struct {
	store   ports.Store
	catalog *Catalog
}

// NewNetworkService creates a new NetworkService. The catalog supplies
// default impacts for event categories.
func NewNetworkService(store ports.Store, catalog *Catalog) *NetworkService {
	return &NetworkService{store: store, catalog: catalog}
}

// SuggestImpacts computes the impacts list for a proposed network event.
//
// Every unordered pair (participants[i], participants[j]) with i < j is
// checked against the pair lookup; pairs with an existing relationship are
// auto-included. This is not all pairs among participants: people with no
// direct relationship are simply not connected by the event. Manual
// relationship IDs are appended afterwards, deduplicated against the
// auto-suggested set.
//
// Each impact value is the caller override when present, else the category's
// default impact, else zero.
func (s *NetworkService) SuggestImpacts(
	ctx context.Context,
	participants []string,
	categoryName string,
	description string,
	overrides map[string]int,
	manualRelationshipIDs []string,
) ([]entities.Impact, error) {
	defaultImpact := 0
	if cat := s.catalog.Category(categoryName); cat != nil {
		defaultImpact = cat.DefaultImpact
	}
	reason := fmt.Sprintf("Involved in: %s", description)

	seen := make(map[string]bool)
	var impacts []entities.Impact

	for i := 0; i < len(participants); i++ {
		for j := i + 1; j < len(participants); j++ {
			rel, err := s.store.FindRelationshipBetween(ctx, participants[i], participants[j])
			if err != nil {
				return nil, fmt.Errorf("looking up pair: %w", err)
			}
			if rel == nil || seen[rel.ID] {
				continue
			}
			seen[rel.ID] = true
			impacts = append(impacts, entities.Impact{
				RelationshipID: rel.ID,
				Impact:         impactFor(rel.ID, overrides, defaultImpact),
				Reason:         reason,
				Auto:           true,
			})
		}
	}

	for _, id := range manualRelationshipIDs {
		if seen[id] {
			continue
		}
		rel, err := s.store.FindRelationship(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("looking up manual relationship: %w", err)
		}
		if rel == nil {
			continue
		}
		seen[id] = true
		impacts = append(impacts, entities.Impact{
			RelationshipID: id,
			Impact:         impactFor(id, overrides, defaultImpact),
			Reason:         reason,
			Auto:           false,
		})
	}

	return impacts, nil
}

// Create stores the network event and applies all of its impacts to the
// ledger in one atomic pass. An event with an empty impacts list is legal
// and has no health-score effect.
func (s *NetworkService) Create(ctx context.Context, ev *entities.NetworkEvent) error {
	if err := s.store.ApplyNetworkEvent(ctx, ev); err != nil {
		return fmt.Errorf("applying network event: %w", err)
	}
	return nil
}

// Event returns a network event by ID.
func (s *NetworkService) Event(ctx context.Context, id string) (*entities.NetworkEvent, error) {
	ev, err := s.store.FindNetworkEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding network event: %w", err)
	}
	if ev == nil {
		return nil, ErrNetworkEventNotFound
	}
	return ev, nil
}

// Events returns all network events in insertion order.
func (s *NetworkService) Events(ctx context.Context) ([]entities.NetworkEvent, error) {
	return s.store.ListNetworkEvents(ctx)
}

// EventsForPerson returns network events whose participants include the
// person.
func (s *NetworkService) EventsForPerson(ctx context.Context, personID string) ([]entities.NetworkEvent, error) {
	return s.store.ListNetworkEventsForPerson(ctx, personID)
}

// EventsForRelationship returns network events with at least one impact
// naming the relationship.
func (s *NetworkService) EventsForRelationship(ctx context.Context, relationshipID string) ([]entities.NetworkEvent, error) {
	return s.store.ListNetworkEventsForRelationship(ctx, relationshipID)
}

// Delete removes the event record. Health-score changes the event applied
// are deliberately not reversed; create mutates shared state, delete does
// not compensate.
func (s *NetworkService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteNetworkEvent(ctx, id); err != nil {
		return fmt.Errorf("deleting network event: %w", err)
	}
	return nil
}

func impactFor(relationshipID string, overrides map[string]int, defaultImpact int) int {
	if v, ok := overrides[relationshipID]; ok {
		return v
	}
	return defaultImpact
}
