// Package ports defines the interfaces the domain services depend on.
package ports

import (
	"context"

	"github.com/mkorcha/tangle/internal/domain/entities"
)

// Store is the authoritative collection of people, relationships, and network
// events. Collections are ordered by insertion. Implementations must be safe
// for concurrent callers: the ledger is a single exclusively-owned mutable
// resource, so each method executes under one lock.
//
// Find methods return (nil, nil) when the entity is absent; delete methods
// are no-ops for unknown IDs. Returned entities are copies.
type Store interface {
	// People.
	SavePerson(ctx context.Context, p *entities.Person) error
	FindPerson(ctx context.Context, id string) (*entities.Person, error)
	ListPeople(ctx context.Context) ([]entities.Person, error)
	// DeletePerson removes the person and cascades to every relationship
	// the person participates in.
	DeletePerson(ctx context.Context, id string) error

	// Relationships.
	SaveRelationship(ctx context.Context, r *entities.Relationship) error
	FindRelationship(ctx context.Context, id string) (*entities.Relationship, error)
	// FindRelationshipBetween matches the unordered pair (a, b). When
	// duplicate relationships exist for a pair, the first inserted wins.
	FindRelationshipBetween(ctx context.Context, a, b string) (*entities.Relationship, error)
	ListRelationships(ctx context.Context) ([]entities.Relationship, error)
	ListRelationshipsForPerson(ctx context.Context, personID string) ([]entities.Relationship, error)
	DeleteRelationship(ctx context.Context, id string) error
	// RecordEvent clamps the health score by the event's impact, appends the
	// event to the relationship's history, and retypes the relationship when
	// the event carries a type transition. Returns false when the
	// relationship does not exist.
	RecordEvent(ctx context.Context, relationshipID string, ev entities.RelationshipEvent) (bool, error)

	// Network events.
	// ApplyNetworkEvent stores the event and applies every impact entry to
	// its relationship's health score in one pass. Impacts naming unknown
	// relationships are skipped. Nothing is appended to any relationship's
	// own event history.
	ApplyNetworkEvent(ctx context.Context, ev *entities.NetworkEvent) error
	FindNetworkEvent(ctx context.Context, id string) (*entities.NetworkEvent, error)
	ListNetworkEvents(ctx context.Context) ([]entities.NetworkEvent, error)
	ListNetworkEventsForPerson(ctx context.Context, personID string) ([]entities.NetworkEvent, error)
	ListNetworkEventsForRelationship(ctx context.Context, relationshipID string) ([]entities.NetworkEvent, error)
	// DeleteNetworkEvent removes the record only. Health-score changes the
	// event already applied are not reversed.
	DeleteNetworkEvent(ctx context.Context, id string) error

	// Replace swaps the entire ledger state in one step. Used by import.
	Replace(ctx context.Context, people []entities.Person, relationships []entities.Relationship, events []entities.NetworkEvent) error
}
