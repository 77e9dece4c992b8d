package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorcha/tangle/internal/domain/entities"
)

func TestLedgerService_SeedSampleData(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds empty ledger", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		seeded, err := svc.SeedSampleData(ctx)
		require.NoError(t, err)
		assert.True(t, seeded)

		people, err := svc.People(ctx)
		require.NoError(t, err)
		assert.Len(t, people, 4)

		rels, err := svc.Relationships(ctx)
		require.NoError(t, err)
		require.Len(t, rels, 4)

		r1, err := svc.Relationship(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, "Marriage", r1.Type)
		assert.Equal(t, 65, r1.HealthScore)
		assert.Len(t, r1.Events, 3)
	})

	t.Run("skips non-empty ledger", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		require.NoError(t, svc.AddPerson(ctx, &entities.Person{ID: "existing", Name: "Pat"}))

		seeded, err := svc.SeedSampleData(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)

		people, err := svc.People(ctx)
		require.NoError(t, err)
		assert.Len(t, people, 1)
	})

	t.Run("second seed is a no-op", func(t *testing.T) {
		svc, _ := setupLedgerTest()

		seeded, err := svc.SeedSampleData(ctx)
		require.NoError(t, err)
		require.True(t, seeded)

		seeded, err = svc.SeedSampleData(ctx)
		require.NoError(t, err)
		assert.False(t, seeded)

		people, err := svc.People(ctx)
		require.NoError(t, err)
		assert.Len(t, people, 4)
	})
}
