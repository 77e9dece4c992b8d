package handlers

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/mkorcha/tangle/internal/domain/entities"
	"github.com/mkorcha/tangle/internal/domain/services"
)

// PersonHandler handles person operations.
type PersonHandler struct {
	ledger *services.LedgerService
}

// NewPersonHandler creates a new PersonHandler.
func NewPersonHandler(ledger *services.LedgerService) *PersonHandler {
	return &PersonHandler{ledger: ledger}
}

// HandleAdd creates a person with a generated ID and layout position.
// The position is only consumed by graph renderers.
func (h *PersonHandler) HandleAdd(ctx context.Context, name, avatar string) (*entities.Person, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	p := &entities.Person{
		ID:     uuid.New().String(),
		Name:   name,
		Avatar: avatar,
		X:      200 + rand.Float64()*400,
		Y:      150 + rand.Float64()*300,
	}
	if err := h.ledger.AddPerson(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// HandleGet returns a person by ID.
func (h *PersonHandler) HandleGet(ctx context.Context, id string) (*entities.Person, error) {
	return h.ledger.Person(ctx, id)
}

// HandleList returns all people in insertion order.
func (h *PersonHandler) HandleList(ctx context.Context) ([]entities.Person, error) {
	return h.ledger.People(ctx)
}

// HandleDelete removes a person and every relationship the person
// participates in. Unknown IDs are a no-op.
func (h *PersonHandler) HandleDelete(ctx context.Context, id string) error {
	return h.ledger.DeletePerson(ctx, id)
}

// HandleRelationships returns the person's relationships.
func (h *PersonHandler) HandleRelationships(ctx context.Context, id string) ([]entities.Relationship, error) {
	return h.ledger.RelationshipsForPerson(ctx, id)
}
