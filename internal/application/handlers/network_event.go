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

// NetworkEventHandler handles multi-participant network events and their
// ripple effects.
type NetworkEventHandler struct {
	network *services.NetworkService
	catalog *services.Catalog
}

// NewNetworkEventHandler creates a new NetworkEventHandler.
func NewNetworkEventHandler(network *services.NetworkService, catalog *services.Catalog) *NetworkEventHandler {
	return &NetworkEventHandler{network: network, catalog: catalog}
}

// CreateNetworkEventParams are the caller-supplied fields for a network
// event. ImpactOverrides maps relationship IDs to manual impact values;
// ManualRelationshipIDs attaches relationships not implied by participant
// pairing.
type CreateNetworkEventParams struct {
	Category              string
	Description           string
	Date                  string
	Image                 string
	Participants          []string
	ImpactOverrides       map[string]int
	ManualRelationshipIDs []string
}

func (p *CreateNetworkEventParams) validate() error {
	if strings.TrimSpace(p.Category) == "" {
		return errors.New("category is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return errors.New("description is required")
	}
	if len(p.Participants) < 2 {
		return errors.New("at least two participants are required")
	}
	if p.Date != "" {
		if _, err := time.Parse("2006-01-02", p.Date); err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", p.Date)
		}
	}
	return nil
}

// HandlePreview computes the impacts the event would apply, without
// touching the ledger. Useful for showing ripple effects before committing.
func (h *NetworkEventHandler) HandlePreview(ctx context.Context, params CreateNetworkEventParams) ([]entities.Impact, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}
	return h.network.SuggestImpacts(ctx, params.Participants, params.Category, params.Description, params.ImpactOverrides, params.ManualRelationshipIDs)
}

// HandleCreate computes the event's impacts and applies them atomically.
// An event whose participants share no relationships is legal; it simply
// affects nothing.
func (h *NetworkEventHandler) HandleCreate(ctx context.Context, params CreateNetworkEventParams) (*entities.NetworkEvent, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	impacts, err := h.network.SuggestImpacts(ctx, params.Participants, params.Category, params.Description, params.ImpactOverrides, params.ManualRelationshipIDs)
	if err != nil {
		return nil, err
	}

	date := params.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	eventType := entities.EventNeutral
	if cat := h.catalog.Category(params.Category); cat != nil {
		eventType = cat.Type
	}

	ev := &entities.NetworkEvent{
		ID:           uuid.New().String(),
		Type:         eventType,
		Category:     params.Category,
		Description:  params.Description,
		Date:         date,
		Image:        params.Image,
		Participants: append([]string(nil), params.Participants...),
		Impacts:      impacts,
	}
	if err := h.network.Create(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// HandleGet returns a network event by ID.
func (h *NetworkEventHandler) HandleGet(ctx context.Context, id string) (*entities.NetworkEvent, error) {
	return h.network.Event(ctx, id)
}

// HandleList returns all network events in insertion order.
func (h *NetworkEventHandler) HandleList(ctx context.Context) ([]entities.NetworkEvent, error) {
	return h.network.Events(ctx)
}

// HandleListForPerson returns network events the person participated in.
func (h *NetworkEventHandler) HandleListForPerson(ctx context.Context, personID string) ([]entities.NetworkEvent, error) {
	return h.network.EventsForPerson(ctx, personID)
}

// HandleListForRelationship returns network events that impacted the
// relationship.
func (h *NetworkEventHandler) HandleListForRelationship(ctx context.Context, relationshipID string) ([]entities.NetworkEvent, error) {
	return h.network.EventsForRelationship(ctx, relationshipID)
}

// HandleDelete removes the event record. Impacts already applied to health
// scores stay applied.
func (h *NetworkEventHandler) HandleDelete(ctx context.Context, id string) error {
	return h.network.Delete(ctx, id)
}
