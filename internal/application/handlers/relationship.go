package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkorcha/tangle/internal/domain/entities"
	"github.com/mkorcha/tangle/internal/domain/services"
)

// RelationshipHandler handles relationship operations, including recording
// events against a relationship's own history.
type RelationshipHandler struct {
	ledger  *services.LedgerService
	catalog *services.Catalog
}

// NewRelationshipHandler creates a new RelationshipHandler.
func NewRelationshipHandler(ledger *services.LedgerService, catalog *services.Catalog) *RelationshipHandler {
	return &RelationshipHandler{ledger: ledger, catalog: catalog}
}

// CreateRelationshipParams are the caller-supplied fields for a new
// relationship. HealthScore nil means the default starting score. The
// overlay fields are only stored when the relationship is asymmetric.
type CreateRelationshipParams struct {
	Person1ID   string
	Person2ID   string
	Type        string
	HealthScore *int

	P1ToP2Type   string
	P2ToP1Type   string
	P1ToP2Health *int
	P2ToP1Health *int
}

// HandleCreate validates the pair and inserts the relationship. Both people
// must exist and be distinct; the type string is an open vocabulary and is
// only required to be non-empty. An already-related pair is not rejected:
// the source model never enforced pair uniqueness, and pair lookups resolve
// duplicates as first-inserted-wins.
func (h *RelationshipHandler) HandleCreate(ctx context.Context, params CreateRelationshipParams) (*entities.Relationship, error) {
	if params.Person1ID == "" || params.Person2ID == "" {
		return nil, errors.New("two people are required")
	}
	if params.Person1ID == params.Person2ID {
		return nil, errors.New("a relationship needs two distinct people")
	}
	if strings.TrimSpace(params.Type) == "" {
		return nil, errors.New("relationship type is required")
	}
	for _, id := range []string{params.Person1ID, params.Person2ID} {
		if _, err := h.ledger.Person(ctx, id); err != nil {
			return nil, fmt.Errorf("person %s: %w", id, err)
		}
	}

	health := entities.DefaultHealth
	if params.HealthScore != nil {
		health = entities.ClampHealth(*params.HealthScore)
	}

	r := &entities.Relationship{
		ID:           uuid.New().String(),
		Person1ID:    params.Person1ID,
		Person2ID:    params.Person2ID,
		Type:         strings.TrimSpace(params.Type),
		HealthScore:  health,
		Events:       []entities.RelationshipEvent{},
		P1ToP2Type:   params.P1ToP2Type,
		P2ToP1Type:   params.P2ToP1Type,
		P1ToP2Health: params.P1ToP2Health,
		P2ToP1Health: params.P2ToP1Health,
	}
	if err := h.ledger.AddRelationship(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// HandleGet returns a relationship by ID.
func (h *RelationshipHandler) HandleGet(ctx context.Context, id string) (*entities.Relationship, error) {
	return h.ledger.Relationship(ctx, id)
}

// HandleList returns all relationships in insertion order.
func (h *RelationshipHandler) HandleList(ctx context.Context) ([]entities.Relationship, error) {
	return h.ledger.Relationships(ctx)
}

// HandlePair returns the first relationship connecting the unordered pair,
// or nil when the two people are not directly related.
func (h *RelationshipHandler) HandlePair(ctx context.Context, a, b string) (*entities.Relationship, error) {
	if a == "" || b == "" {
		return nil, errors.New("two person ids are required")
	}
	return h.ledger.RelationshipForPair(ctx, a, b)
}

// HandleDelete removes a relationship. Unknown IDs are a no-op.
func (h *RelationshipHandler) HandleDelete(ctx context.Context, id string) error {
	return h.ledger.DeleteRelationship(ctx, id)
}

// RecordEventParams are the caller-supplied fields for a relationship event.
// Impact nil means the category's default impact. Date empty means today.
type RecordEventParams struct {
	Category    string
	Description string
	Date        string
	Impact      *int
	Image       string
}

// HandleRecordEvent fills in category defaults, then records the event: the
// relationship's health score is clamped by the impact, the event joins the
// history, and a category with a type transition retypes the relationship.
func (h *RelationshipHandler) HandleRecordEvent(ctx context.Context, relationshipID string, params RecordEventParams) (*entities.Relationship, error) {
	if strings.TrimSpace(params.Category) == "" {
		return nil, errors.New("category is required")
	}
	if strings.TrimSpace(params.Description) == "" {
		return nil, errors.New("description is required")
	}

	date := params.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}

	ev := entities.RelationshipEvent{
		ID:          uuid.New().String(),
		Type:        entities.EventNeutral,
		Category:    params.Category,
		Description: params.Description,
		Date:        date,
		Image:       params.Image,
	}
	if cat := h.catalog.Category(params.Category); cat != nil {
		ev.Type = cat.Type
		ev.Impact = cat.DefaultImpact
		ev.ChangesRelationshipTo = cat.ChangesRelationshipTo
	}
	if params.Impact != nil {
		ev.Impact = *params.Impact
	}

	return h.ledger.RecordEvent(ctx, relationshipID, ev)
}
