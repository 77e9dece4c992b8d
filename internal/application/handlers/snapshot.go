package handlers

import (
	"context"

	"github.com/mkorcha/tangle/internal/domain/ports"
	"github.com/mkorcha/tangle/internal/infrastructure/snapshot"
)

// SnapshotHandler exports and imports complete copies of ledger state.
// Snapshots are an explicit user action; the ledger itself never persists
// anything on its own.
type SnapshotHandler struct {
	store ports.Store
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(store ports.Store) *SnapshotHandler {
	return &SnapshotHandler{store: store}
}

// HandleExport returns a snapshot of the current ledger state.
func (h *SnapshotHandler) HandleExport(ctx context.Context) (*snapshot.Snapshot, error) {
	people, err := h.store.ListPeople(ctx)
	if err != nil {
		return nil, err
	}
	relationships, err := h.store.ListRelationships(ctx)
	if err != nil {
		return nil, err
	}
	events, err := h.store.ListNetworkEvents(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot.Snapshot{
		People:        people,
		Relationships: relationships,
		NetworkEvents: events,
	}, nil
}

// HandleImport replaces the entire ledger state with the snapshot contents
// in one step.
func (h *SnapshotHandler) HandleImport(ctx context.Context, snap *snapshot.Snapshot) error {
	return h.store.Replace(ctx, snap.People, snap.Relationships, snap.NetworkEvents)
}
