// Package memstore provides the in-memory Store implementation. State lives
// for the lifetime of the owning process and is lost on restart.
package memstore

import (
	"context"
	"sync"

	"github.com/mkorcha/tangle/internal/domain/entities"
)

// Store holds the ledger collections in insertion order. A single mutex
// guards all access; the model itself is single-writer, the lock is a safety
// margin for concurrent callers such as the HTTP server.
type Store struct {
	mu            sync.RWMutex
	people        []entities.Person
	relationships []entities.Relationship
	networkEvents []entities.NetworkEvent
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// SavePerson appends the person. IDs are caller-supplied; no duplicate check
// is performed.
func (s *Store) SavePerson(_ context.Context, p *entities.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.people = append(s.people, *p)
	return nil
}

// FindPerson returns a copy of the person, or nil when absent.
func (s *Store) FindPerson(_ context.Context, id string) (*entities.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.people {
		if s.people[i].ID == id {
			p := s.people[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ListPeople returns all people in insertion order.
func (s *Store) ListPeople(_ context.Context) ([]entities.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Person, len(s.people))
	copy(out, s.people)
	return out, nil
}

// DeletePerson removes the person and every relationship that references it.
// Unknown IDs are a no-op.
func (s *Store) DeletePerson(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	people := s.people[:0]
	for i := range s.people {
		if s.people[i].ID != id {
			people = append(people, s.people[i])
		}
	}
	s.people = people

	rels := s.relationships[:0]
	for i := range s.relationships {
		if !s.relationships[i].Involves(id) {
			rels = append(rels, s.relationships[i])
		}
	}
	s.relationships = rels
	return nil
}

// SaveRelationship appends the relationship as given, including any
// directional overlay fields. The pair is not checked against existing
// relationships; pair lookups resolve duplicates as first-inserted-wins.
func (s *Store) SaveRelationship(_ context.Context, r *entities.Relationship) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.relationships = append(s.relationships, copyRelationship(r))
	return nil
}

// FindRelationship returns a copy of the relationship, or nil when absent.
func (s *Store) FindRelationship(_ context.Context, id string) (*entities.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.relationships {
		if s.relationships[i].ID == id {
			r := copyRelationship(&s.relationships[i])
			return &r, nil
		}
	}
	return nil, nil
}

// FindRelationshipBetween returns the first relationship matching the
// unordered pair (a, b), or nil when none exists.
func (s *Store) FindRelationshipBetween(_ context.Context, a, b string) (*entities.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.relationships {
		if s.relationships[i].Matches(a, b) {
			r := copyRelationship(&s.relationships[i])
			return &r, nil
		}
	}
	return nil, nil
}

// ListRelationships returns all relationships in insertion order.
func (s *Store) ListRelationships(_ context.Context) ([]entities.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyRelationships(), nil
}

// ListRelationshipsForPerson returns relationships the person participates
// in, in insertion order.
func (s *Store) ListRelationshipsForPerson(_ context.Context, personID string) ([]entities.Relationship, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entities.Relationship
	for i := range s.relationships {
		if s.relationships[i].Involves(personID) {
			out = append(out, copyRelationship(&s.relationships[i]))
		}
	}
	return out, nil
}

// DeleteRelationship removes the relationship and its event history.
// Unknown IDs are a no-op.
func (s *Store) DeleteRelationship(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rels := s.relationships[:0]
	for i := range s.relationships {
		if s.relationships[i].ID != id {
			rels = append(rels, s.relationships[i])
		}
	}
	s.relationships = rels
	return nil
}

// RecordEvent applies the central ledger mutation: clamp the health score by
// the event's impact, append the event, and retype the relationship when the
// event carries a transition. The stored impact is the raw requested value
// even when clamping altered the effective delta. Returns false when the
// relationship does not exist.
func (s *Store) RecordEvent(_ context.Context, relationshipID string, ev entities.RelationshipEvent) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.relationships {
		r := &s.relationships[i]
		if r.ID != relationshipID {
			continue
		}
		r.HealthScore = entities.ClampHealth(r.HealthScore + ev.Impact)
		r.Events = append(r.Events, ev)
		if ev.ChangesRelationshipTo != "" {
			r.Type = ev.ChangesRelationshipTo
		}
		return true, nil
	}
	return false, nil
}

// ApplyNetworkEvent stores the event and applies each impact entry to its
// relationship's health score in one pass under the lock. Impacts naming
// unknown relationships are skipped; nothing is appended to any
// relationship's own event history.
func (s *Store) ApplyNetworkEvent(_ context.Context, ev *entities.NetworkEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.networkEvents = append(s.networkEvents, copyNetworkEvent(ev))
	for i := range ev.Impacts {
		for j := range s.relationships {
			r := &s.relationships[j]
			if r.ID == ev.Impacts[i].RelationshipID {
				r.HealthScore = entities.ClampHealth(r.HealthScore + ev.Impacts[i].Impact)
				break
			}
		}
	}
	return nil
}

// FindNetworkEvent returns a copy of the event, or nil when absent.
func (s *Store) FindNetworkEvent(_ context.Context, id string) (*entities.NetworkEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.networkEvents {
		if s.networkEvents[i].ID == id {
			e := copyNetworkEvent(&s.networkEvents[i])
			return &e, nil
		}
	}
	return nil, nil
}

// ListNetworkEvents returns all network events in insertion order.
func (s *Store) ListNetworkEvents(_ context.Context) ([]entities.NetworkEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.copyNetworkEvents(), nil
}

// ListNetworkEventsForPerson returns events whose participants include the
// person.
func (s *Store) ListNetworkEventsForPerson(_ context.Context, personID string) ([]entities.NetworkEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entities.NetworkEvent
	for i := range s.networkEvents {
		if s.networkEvents[i].HasParticipant(personID) {
			out = append(out, copyNetworkEvent(&s.networkEvents[i]))
		}
	}
	return out, nil
}

// ListNetworkEventsForRelationship returns events with at least one impact
// entry naming the relationship.
func (s *Store) ListNetworkEventsForRelationship(_ context.Context, relationshipID string) ([]entities.NetworkEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []entities.NetworkEvent
	for i := range s.networkEvents {
		if s.networkEvents[i].Affects(relationshipID) {
			out = append(out, copyNetworkEvent(&s.networkEvents[i]))
		}
	}
	return out, nil
}

// DeleteNetworkEvent removes the event record. Health-score changes already
// applied by the event are not reversed. Unknown IDs are a no-op.
func (s *Store) DeleteNetworkEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.networkEvents[:0]
	for i := range s.networkEvents {
		if s.networkEvents[i].ID != id {
			events = append(events, s.networkEvents[i])
		}
	}
	s.networkEvents = events
	return nil
}

// Replace swaps the entire ledger state in one step.
func (s *Store) Replace(_ context.Context, people []entities.Person, relationships []entities.Relationship, events []entities.NetworkEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.people = make([]entities.Person, len(people))
	copy(s.people, people)

	s.relationships = make([]entities.Relationship, 0, len(relationships))
	for i := range relationships {
		s.relationships = append(s.relationships, copyRelationship(&relationships[i]))
	}

	s.networkEvents = make([]entities.NetworkEvent, 0, len(events))
	for i := range events {
		s.networkEvents = append(s.networkEvents, copyNetworkEvent(&events[i]))
	}
	return nil
}

func (s *Store) copyRelationships() []entities.Relationship {
	out := make([]entities.Relationship, 0, len(s.relationships))
	for i := range s.relationships {
		out = append(out, copyRelationship(&s.relationships[i]))
	}
	return out
}

func (s *Store) copyNetworkEvents() []entities.NetworkEvent {
	out := make([]entities.NetworkEvent, 0, len(s.networkEvents))
	for i := range s.networkEvents {
		out = append(out, copyNetworkEvent(&s.networkEvents[i]))
	}
	return out
}

// copyRelationship deep-copies a relationship so callers cannot mutate
// stored state through shared slices or pointers.
func copyRelationship(r *entities.Relationship) entities.Relationship {
	out := *r
	out.Events = make([]entities.RelationshipEvent, len(r.Events))
	copy(out.Events, r.Events)
	if r.P1ToP2Health != nil {
		v := *r.P1ToP2Health
		out.P1ToP2Health = &v
	}
	if r.P2ToP1Health != nil {
		v := *r.P2ToP1Health
		out.P2ToP1Health = &v
	}
	return out
}

func copyNetworkEvent(e *entities.NetworkEvent) entities.NetworkEvent {
	out := *e
	out.Participants = make([]string, len(e.Participants))
	copy(out.Participants, e.Participants)
	out.Impacts = make([]entities.Impact, len(e.Impacts))
	copy(out.Impacts, e.Impacts)
	return out
}
