package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio-inventory-backend/internal/model"
)

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate("s1", 1)
	second := Generate("s1", 1)
	assert.Equal(t, first, second)
}

func TestGenerate_Shape(t *testing.T) {
	equipment := Generate("s1", 1)
	require.NotEmpty(t, equipment)

	seen := make(map[string]bool)
	for _, eq := range equipment {
		assert.False(t, seen[eq.ID], "duplicate equipment id %s", eq.ID)
		seen[eq.ID] = true

		require.Len(t, eq.Units, eq.Quantity, "units must match quantity for %s", eq.ID)
		for i, u := range eq.Units {
			assert.Equal(t, i+1, u.UnitIndex)
			assert.Equal(t, model.StatusNormal, u.Status)
			if u.UnitLabel != "" {
				assert.Equal(t, model.Labeled, u.LabelStatus)
			} else {
				assert.Equal(t, model.Unlabeled, u.LabelStatus)
			}
		}
	}
}

func TestGenerate_IDsCarryPrefix(t *testing.T) {
	for _, eq := range Generate("s3", 3) {
		assert.Regexp(t, `^s3-[a-z]+-\d+$`, eq.ID)
	}
}

func TestGenerate_LabelTable(t *testing.T) {
	equipment := Generate("s1", 1)

	var cam model.Equipment
	for _, eq := range equipment {
		if eq.ID == "s1-cam-1" {
			cam = eq
		}
	}
	require.NotEmpty(t, cam.ID)
	require.Len(t, cam.Units, 2)
	assert.Equal(t, "1A-A7S3-01", cam.Units[0].UnitLabel)
	assert.Equal(t, "1A-A7S3-02", cam.Units[1].UnitLabel)
	assert.Equal(t, model.Labeled, cam.Units[0].LabelStatus)
}

func TestGenerate_StudioRestrictedItems(t *testing.T) {
	hasTube := func(equipment []model.Equipment) bool {
		for _, eq := range equipment {
			if eq.Name == "Astera Titan tube" {
				return true
			}
		}
		return false
	}

	assert.True(t, hasTube(Generate("s1", 1)))
	assert.True(t, hasTube(Generate("s3", 3)))
	assert.False(t, hasTube(Generate("s4", 4)))
	assert.False(t, hasTube(Generate("s6", 6)))
}

func TestGenerate_PublicPool(t *testing.T) {
	pool := Generate("pool", PublicPoolNumber)
	require.NotEmpty(t, pool)

	for _, eq := range pool {
		assert.Equal(t, 1, eq.Quantity, "pool items are single units: %s", eq.ID)
		require.Len(t, eq.Units, 1)
		assert.Empty(t, eq.Units[0].UnitLabel)
		assert.Equal(t, model.Unlabeled, eq.Units[0].LabelStatus)
	}
}

func TestStudios_SeedSet(t *testing.T) {
	studios := Studios()
	require.Len(t, studios, 7)

	assert.Equal(t, "studio-1", studios[0].ID)
	assert.Equal(t, "studio-pool", studios[6].ID)

	for _, s := range studios[:6] {
		assert.NotEmpty(t, s.Equipment)
		assert.NotEmpty(t, s.Icon)
	}

	// The pool uses its own flat list, which is shorter than the studio one.
	assert.Less(t, len(studios[6].Equipment), len(studios[0].Equipment))
}
