package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkorcha/tangle/internal/domain/entities"
	"github.com/mkorcha/tangle/internal/domain/ports"
)

// Sentinel errors for lookups at the service boundary. The underlying store
// treats unknown IDs as silent no-ops; the services surface them explicitly
// so callers can report "not found" instead of swallowing the miss.
var (
	ErrPersonNotFound       = errors.New("person not found")
	ErrRelationshipNotFound = errors.New("relationship not found")
	ErrNetworkEventNotFound = errors.New("network event not found")
)

// LedgerService owns the people and relationship collections and the
// health-score mutation rules.
type LedgerService struct {
	store ports.Store
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store ports.Store) *LedgerService {
	return &LedgerService{store: store}
}

// AddPerson inserts a person into the ledger.
func (s *LedgerService) AddPerson(ctx context.Context, p *entities.Person) error {
	if err := s.store.SavePerson(ctx, p); err != nil {
		return fmt.Errorf("saving person: %w", err)
	}
	return nil
}

// Person returns a person by ID.
func (s *LedgerService) Person(ctx context.Context, id string) (*entities.Person, error) {
	p, err := s.store.FindPerson(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding person: %w", err)
	}
	if p == nil {
		return nil, ErrPersonNotFound
	}
	return p, nil
}

// People returns all people in insertion order.
func (s *LedgerService) People(ctx context.Context) ([]entities.Person, error) {
	return s.store.ListPeople(ctx)
}

// DeletePerson removes a person and cascades to every relationship the
// person participates in. Unknown IDs are a no-op.
func (s *LedgerService) DeletePerson(ctx context.Context, id string) error {
	if err := s.store.DeletePerson(ctx, id); err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	return nil
}

// AddRelationship inserts a relationship as given, including any directional
// overlay fields. Neither the pair nor the person IDs are validated here;
// that is the caller's boundary.
func (s *LedgerService) AddRelationship(ctx context.Context, r *entities.Relationship) error {
	if err := s.store.SaveRelationship(ctx, r); err != nil {
		return fmt.Errorf("saving relationship: %w", err)
	}
	return nil
}

// Relationship returns a relationship by ID.
func (s *LedgerService) Relationship(ctx context.Context, id string) (*entities.Relationship, error) {
	r, err := s.store.FindRelationship(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding relationship: %w", err)
	}
	if r == nil {
		return nil, ErrRelationshipNotFound
	}
	return r, nil
}

// Relationships returns all relationships in insertion order.
func (s *LedgerService) Relationships(ctx context.Context) ([]entities.Relationship, error) {
	return s.store.ListRelationships(ctx)
}

// RelationshipsForPerson returns relationships the person participates in.
func (s *LedgerService) RelationshipsForPerson(ctx context.Context, personID string) ([]entities.Relationship, error) {
	return s.store.ListRelationshipsForPerson(ctx, personID)
}

// RelationshipForPair returns the first relationship matching the unordered
// pair, or nil when the people are not directly related. Duplicate
// relationships for a pair are never rejected at creation, so first match
// wins here.
func (s *LedgerService) RelationshipForPair(ctx context.Context, a, b string) (*entities.Relationship, error) {
	return s.store.FindRelationshipBetween(ctx, a, b)
}

// DeleteRelationship removes a relationship and its event history. Unknown
// IDs are a no-op.
func (s *LedgerService) DeleteRelationship(ctx context.Context, id string) error {
	if err := s.store.DeleteRelationship(ctx, id); err != nil {
		return fmt.Errorf("deleting relationship: %w", err)
	}
	return nil
}

// RecordEvent records an event against a relationship: health is clamped by
// the event's impact, the event is appended to the history, and the
// relationship is retyped when the event carries a transition. Returns the
// updated relationship, or ErrRelationshipNotFound for unknown IDs.
func (s *LedgerService) RecordEvent(ctx context.Context, relationshipID string, ev entities.RelationshipEvent) (*entities.Relationship, error) {
	ok, err := s.store.RecordEvent(ctx, relationshipID, ev)
	if err != nil {
		return nil, fmt.Errorf("recording event: %w", err)
	}
	if !ok {
		return nil, ErrRelationshipNotFound
	}
	return s.Relationship(ctx, relationshipID)
}
