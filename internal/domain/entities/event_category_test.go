package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCategory(t *testing.T) {
	t.Run("known category", func(t *testing.T) {
		cat := FindCategory(DefaultEventCategories, "Betrayal")
		require.NotNil(t, cat)
		assert.Equal(t, EventNegative, cat.Type)
		assert.Equal(t, -25, cat.DefaultImpact)
		assert.Empty(t, cat.ChangesRelationshipTo)
	})

	t.Run("category with type transition", func(t *testing.T) {
		cat := FindCategory(DefaultEventCategories, "Breakup")
		require.NotNil(t, cat)
		assert.Equal(t, -20, cat.DefaultImpact)
		assert.Equal(t, "Ex", cat.ChangesRelationshipTo)
	})

	t.Run("unknown category", func(t *testing.T) {
		assert.Nil(t, FindCategory(DefaultEventCategories, "Housewarming"))
	})

	t.Run("lookup is case sensitive", func(t *testing.T) {
		assert.Nil(t, FindCategory(DefaultEventCategories, "fight"))
	})
}

func TestIsDefaultCategory(t *testing.T) {
	assert.True(t, IsDefaultCategory("Gift"))
	assert.True(t, IsDefaultCategory("Started Dating"))
	assert.False(t, IsDefaultCategory("Picnic"))
}

func TestDefaultEventCategories_Transitions(t *testing.T) {
	// Every transition target must be part of the suggested type vocabulary.
	types := make(map[string]bool, len(DefaultRelationshipTypes))
	for _, typ := range DefaultRelationshipTypes {
		types[typ] = true
	}

	for _, cat := range DefaultEventCategories {
		if cat.ChangesRelationshipTo == "" {
			continue
		}
		assert.True(t, types[cat.ChangesRelationshipTo],
			"category %q transitions to unknown type %q", cat.Name, cat.ChangesRelationshipTo)
	}
}
