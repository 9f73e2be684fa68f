package nutrition

import (
	"testing"

	"nutriledger/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestResolveTargets(t *testing.T) {
	tests := []struct {
		name  string
		goals entity.NutrientValues
		check func(t *testing.T, resolved entity.NutrientValues)
	}{
		{
			name:  "all unset falls back to defaults",
			goals: entity.NutrientValues{},
			check: func(t *testing.T, resolved entity.NutrientValues) {
				assert.Equal(t, DefaultTargets, resolved)
			},
		},
		{
			name:  "zero protein uses default",
			goals: entity.NutrientValues{Protein: 0, Calories: 1800},
			check: func(t *testing.T, resolved entity.NutrientValues) {
				assert.InDelta(t, DefaultTargets.Protein, resolved.Protein, 0.0001)
				assert.InDelta(t, 1800, resolved.Calories, 0.0001)
			},
		},
		{
			name:  "stored protein is kept",
			goals: entity.NutrientValues{Protein: 180},
			check: func(t *testing.T, resolved entity.NutrientValues) {
				assert.InDelta(t, 180, resolved.Protein, 0.0001)
				assert.InDelta(t, DefaultTargets.Sodium, resolved.Sodium, 0.0001)
			},
		},
		{
			name:  "negative goal treated as unset",
			goals: entity.NutrientValues{Iron: -5},
			check: func(t *testing.T, resolved entity.NutrientValues) {
				assert.InDelta(t, DefaultTargets.Iron, resolved.Iron, 0.0001)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, ResolveTargets(tt.goals))
		})
	}
}

func TestDefaultTargets_DifferPerNutrient(t *testing.T) {
	assert.Greater(t, DefaultTargets.Sodium, DefaultTargets.Iron)
	for _, n := range entity.AllNutrients {
		assert.Positive(t, DefaultTargets.Get(n), n.String())
	}
}
