package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorcha/tangle/internal/domain/entities"
	"github.com/mkorcha/tangle/internal/domain/services"
	"github.com/mkorcha/tangle/internal/infrastructure/memstore"
)

func setupNetworkEventTest(t *testing.T) (*NetworkEventHandler, *services.LedgerService) {
	t.Helper()
	ctx := context.Background()
	store := memstore.New()
	ledger := services.NewLedgerService(store)
	catalog := services.NewCatalog(nil, nil)
	network := services.NewNetworkService(store, catalog)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, ledger.AddPerson(ctx, &entities.Person{ID: id}))
	}
	require.NoError(t, ledger.AddRelationship(ctx, &entities.Relationship{ID: "r-ab", Person1ID: "a", Person2ID: "b", HealthScore: 50}))
	require.NoError(t, ledger.AddRelationship(ctx, &entities.Relationship{ID: "r-bc", Person1ID: "b", Person2ID: "c", HealthScore: 50}))

	return NewNetworkEventHandler(network, catalog), ledger
}

func TestNetworkEventHandler_HandleCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("applies ripple to related pairs", func(t *testing.T) {
		h, ledger := setupNetworkEventTest(t)

		ev, err := h.HandleCreate(ctx, CreateNetworkEventParams{
			Category:     "Fight",
			Description:  "Game night blowup",
			Date:         "2026-08-10",
			Participants: []string{"a", "b", "c"},
		})
		require.NoError(t, err)

		assert.NotEmpty(t, ev.ID)
		assert.Equal(t, entities.EventNegative, ev.Type)
		require.Len(t, ev.Impacts, 2)
		assert.Equal(t, "Involved in: Game night blowup", ev.Impacts[0].Reason)

		ab, err := ledger.Relationship(ctx, "r-ab")
		require.NoError(t, err)
		assert.Equal(t, 35, ab.HealthScore)

		bc, err := ledger.Relationship(ctx, "r-bc")
		require.NoError(t, err)
		assert.Equal(t, 35, bc.HealthScore)
	})

	t.Run("override and manual attachment", func(t *testing.T) {
		h, ledger := setupNetworkEventTest(t)

		ev, err := h.HandleCreate(ctx, CreateNetworkEventParams{
			Category:              "Celebration",
			Description:           "Promotion dinner",
			Date:                  "2026-08-10",
			Participants:          []string{"a", "b"},
			ImpactOverrides:       map[string]int{"r-bc": 4},
			ManualRelationshipIDs: []string{"r-bc"},
		})
		require.NoError(t, err)
		require.Len(t, ev.Impacts, 2)

		assert.True(t, ev.Impacts[0].Auto)
		assert.Equal(t, 10, ev.Impacts[0].Impact)
		assert.False(t, ev.Impacts[1].Auto)
		assert.Equal(t, 4, ev.Impacts[1].Impact)

		bc, err := ledger.Relationship(ctx, "r-bc")
		require.NoError(t, err)
		assert.Equal(t, 54, bc.HealthScore)
	})

	t.Run("unrelated participants affect nothing", func(t *testing.T) {
		h, ledger := setupNetworkEventTest(t)

		ev, err := h.HandleCreate(ctx, CreateNetworkEventParams{
			Category:     "Celebration",
			Description:  "Two strangers at a party",
			Date:         "2026-08-10",
			Participants: []string{"a", "c"},
		})
		require.NoError(t, err)
		assert.Empty(t, ev.Impacts)

		ab, err := ledger.Relationship(ctx, "r-ab")
		require.NoError(t, err)
		assert.Equal(t, 50, ab.HealthScore)
	})

	t.Run("unknown category type is neutral", func(t *testing.T) {
		h, _ := setupNetworkEventTest(t)

		ev, err := h.HandleCreate(ctx, CreateNetworkEventParams{
			Category:     "Potluck",
			Description:  "Neighborhood potluck",
			Date:         "2026-08-10",
			Participants: []string{"a", "b"},
		})
		require.NoError(t, err)
		assert.Equal(t, entities.EventNeutral, ev.Type)
		require.Len(t, ev.Impacts, 1)
		assert.Equal(t, 0, ev.Impacts[0].Impact)
	})

	t.Run("validation failures", func(t *testing.T) {
		h, _ := setupNetworkEventTest(t)

		_, err := h.HandleCreate(ctx, CreateNetworkEventParams{
			Description: "No category", Participants: []string{"a", "b"},
		})
		require.Error(t, err)

		_, err = h.HandleCreate(ctx, CreateNetworkEventParams{
			Category: "Fight", Description: "One participant", Participants: []string{"a"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least two participants")

		_, err = h.HandleCreate(ctx, CreateNetworkEventParams{
			Category: "Fight", Description: "Bad date", Date: "yesterday",
			Participants: []string{"a", "b"},
		})
		require.Error(t, err)
	})
}

func TestNetworkEventHandler_HandlePreview(t *testing.T) {
	ctx := context.Background()
	h, ledger := setupNetworkEventTest(t)

	impacts, err := h.HandlePreview(ctx, CreateNetworkEventParams{
		Category:     "Fight",
		Description:  "Hypothetical fight",
		Participants: []string{"a", "b", "c"},
	})
	require.NoError(t, err)
	assert.Len(t, impacts, 2)

	// Preview must not mutate the ledger.
	ab, err := ledger.Relationship(ctx, "r-ab")
	require.NoError(t, err)
	assert.Equal(t, 50, ab.HealthScore)

	events, err := h.HandleList(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestNetworkEventHandler_HandleDelete(t *testing.T) {
	ctx := context.Background()
	h, ledger := setupNetworkEventTest(t)

	ev, err := h.HandleCreate(ctx, CreateNetworkEventParams{
		Category:     "Fight",
		Description:  "Dinner fight",
		Date:         "2026-08-10",
		Participants: []string{"a", "b"},
	})
	require.NoError(t, err)

	require.NoError(t, h.HandleDelete(ctx, ev.ID))

	_, err = h.HandleGet(ctx, ev.ID)
	assert.ErrorIs(t, err, services.ErrNetworkEventNotFound)

	// Applied impacts stay.
	ab, err := ledger.Relationship(ctx, "r-ab")
	require.NoError(t, err)
	assert.Equal(t, 35, ab.HealthScore)
}
