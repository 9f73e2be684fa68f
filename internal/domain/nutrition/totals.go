package nutrition

import "nutriledger/internal/domain/entity"

// Sum adds up the nutrients of entries field by field. A corrupt field
// (negative or non-finite) counts as zero for that field only.
func Sum(entries []*entity.FoodLogEntry) entity.NutrientValues {
	var totals entity.NutrientValues
	for _, entry := range entries {
		if entry == nil {
			continue
		}
		for _, n := range entity.AllNutrients {
			if v := entry.Nutrients.Get(n); isMagnitude(v) {
				totals.Set(n, totals.Get(n)+v)
			}
		}
	}

	return totals
}

// Fraction returns consumed/target clamped to [0,1]. A non-positive target yields 0.
func Fraction(consumed, target float64) float64 {
	if target <= 0 || !isMagnitude(consumed) {
		return 0
	}

	p := consumed / target
	if p > 1 {
		return 1
	}

	return p
}
