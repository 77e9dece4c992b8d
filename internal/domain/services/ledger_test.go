package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorcha/tangle/internal/domain/entities"
	"github.com/mkorcha/tangle/internal/infrastructure/memstore"
)

func setupLedgerTest() (*LedgerService, *memstore.Store) {
	store := memstore.New()
	return NewLedgerService(store), store
}

func TestLedgerService_People(t *testing.T) {
	ctx := context.Background()

	t.Run("add and fetch", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		require.NoError(t, svc.AddPerson(ctx, &entities.Person{ID: "p1", Name: "Alice", X: 200, Y: 150}))

		p, err := svc.Person(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Alice", p.Name)
		assert.Equal(t, 200.0, p.X)
	})

	t.Run("unknown person surfaces sentinel", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		_, err := svc.Person(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("delete cascades to relationships", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		require.NoError(t, svc.AddPerson(ctx, &entities.Person{ID: "p1"}))
		require.NoError(t, svc.AddPerson(ctx, &entities.Person{ID: "p2"}))
		require.NoError(t, svc.AddRelationship(ctx, &entities.Relationship{ID: "r1", Person1ID: "p1", Person2ID: "p2"}))

		require.NoError(t, svc.DeletePerson(ctx, "p1"))

		rels, err := svc.Relationships(ctx)
		require.NoError(t, err)
		assert.Empty(t, rels)
	})

	t.Run("delete unknown is a no-op", func(t *testing.T) {
		svc, _ := setupLedgerTest()
		assert.NoError(t, svc.DeletePerson(ctx, "missing"))
	})
}

func TestLedgerService_Relationships(t *testing.T) {
	ctx := context.Background()

	t.Run("add and fetch", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		require.NoError(t, svc.AddRelationship(ctx, &entities.Relationship{
			ID: "r1", Person1ID: "p1", Person2ID: "p2", Type: "Friend", HealthScore: 50,
		}))

		r, err := svc.Relationship(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "Friend", r.Type)
		assert.Equal(t, 50, r.HealthScore)
	})

	t.Run("unknown relationship surfaces sentinel", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		_, err := svc.Relationship(ctx, "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRelationshipNotFound)
	})

	t.Run("pair lookup returns nil for unrelated people", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		r, err := svc.RelationshipForPair(ctx, "p1", "p2")
		require.NoError(t, err)
		assert.Nil(t, r)
	})

	t.Run("pair lookup first match wins", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		require.NoError(t, svc.AddRelationship(ctx, &entities.Relationship{ID: "first", Person1ID: "p1", Person2ID: "p2"}))
		require.NoError(t, svc.AddRelationship(ctx, &entities.Relationship{ID: "second", Person1ID: "p1", Person2ID: "p2"}))

		r, err := svc.RelationshipForPair(ctx, "p2", "p1")
		require.NoError(t, err)
		require.NotNil(t, r)
		assert.Equal(t, "first", r.ID)
	})

	t.Run("repeated queries return equal results", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		require.NoError(t, svc.AddRelationship(ctx, &entities.Relationship{ID: "r1", Person1ID: "p1", Person2ID: "p2"}))
		require.NoError(t, svc.AddRelationship(ctx, &entities.Relationship{ID: "r2", Person1ID: "p1", Person2ID: "p3"}))

		first, err := svc.RelationshipsForPerson(ctx, "p1")
		require.NoError(t, err)
		second, err := svc.RelationshipsForPerson(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("directional overlay round-trips", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		h1, h2 := 70, 40
		require.NoError(t, svc.AddRelationship(ctx, &entities.Relationship{
			ID: "r1", Person1ID: "p1", Person2ID: "p2", Type: "Friend", HealthScore: 50,
			P1ToP2Type: "Best Friend", P2ToP1Type: "Friend",
			P1ToP2Health: &h1, P2ToP1Health: &h2,
		}))

		r, err := svc.Relationship(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "Best Friend", r.P1ToP2Type)
		require.NotNil(t, r.P1ToP2Health)
		assert.Equal(t, 70, *r.P1ToP2Health)
		require.NotNil(t, r.P2ToP1Health)
		assert.Equal(t, 40, *r.P2ToP1Health)
	})
}

func TestLedgerService_RecordEvent(t *testing.T) {
	ctx := context.Background()

	newRel := func(t *testing.T, svc *LedgerService, health int) {
		t.Helper()
		require.NoError(t, svc.AddRelationship(ctx, &entities.Relationship{
			ID: "r1", Person1ID: "p1", Person2ID: "p2", Type: "Partner", HealthScore: health,
		}))
	}

	t.Run("returns updated relationship", func(t *testing.T) {
		svc, _ := setupLedgerTest()
		newRel(t, svc, 50)

		r, err := svc.RecordEvent(ctx, "r1", entities.RelationshipEvent{
			ID: "e1", Type: entities.EventPositive, Category: "Support", Impact: 12,
		})
		require.NoError(t, err)
		assert.Equal(t, 62, r.HealthScore)
		require.Len(t, r.Events, 1)
		assert.Equal(t, "Support", r.Events[0].Category)
	})

	t.Run("clamps at upper bound but keeps raw impact", func(t *testing.T) {
		svc, _ := setupLedgerTest()
		newRel(t, svc, 95)

		r, err := svc.RecordEvent(ctx, "r1", entities.RelationshipEvent{ID: "e1", Impact: 20})
		require.NoError(t, err)
		assert.Equal(t, 100, r.HealthScore)
		assert.Equal(t, 20, r.Events[0].Impact)
	})

	t.Run("retype applies unconditionally", func(t *testing.T) {
		svc, _ := setupLedgerTest()
		newRel(t, svc, 10)

		// A negative event can still retype: the transition does not depend
		// on the resulting score.
		r, err := svc.RecordEvent(ctx, "r1", entities.RelationshipEvent{
			ID: "e1", Type: entities.EventNegative, Category: "Breakup",
			Impact: -20, ChangesRelationshipTo: "Ex",
		})
		require.NoError(t, err)
		assert.Equal(t, "Ex", r.Type)
		assert.Equal(t, -10, r.HealthScore)
	})

	t.Run("events accumulate in order", func(t *testing.T) {
		svc, _ := setupLedgerTest()
		newRel(t, svc, 50)

		_, err := svc.RecordEvent(ctx, "r1", entities.RelationshipEvent{ID: "e1", Impact: 10})
		require.NoError(t, err)
		r, err := svc.RecordEvent(ctx, "r1", entities.RelationshipEvent{ID: "e2", Impact: -8})
		require.NoError(t, err)

		assert.Equal(t, 52, r.HealthScore)
		require.Len(t, r.Events, 2)
		assert.Equal(t, "e1", r.Events[0].ID)
		assert.Equal(t, "e2", r.Events[1].ID)
	})

	t.Run("unknown relationship surfaces sentinel", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		_, err := svc.RecordEvent(ctx, "missing", entities.RelationshipEvent{ID: "e1", Impact: 5})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRelationshipNotFound)
	})
}
