package nutrition

import "nutriledger/internal/domain/entity"

// DefaultTargets are the daily targets used whenever a stored goal is absent or zero.
var DefaultTargets = entity.NutrientValues{
	Calories:  2000,
	Protein:   150,
	Carbs:     250,
	SatFat:    20,
	UnsatFat:  50,
	Fiber:     30,
	Sugar:     50,
	Sodium:    2300,
	Potassium: 3500,
	Iron:      18,
}

// ResolveTargets merges stored goals with DefaultTargets. A stored zero means
// "unset", never "target is zero".
func ResolveTargets(goals entity.NutrientValues) entity.NutrientValues {
	resolved := DefaultTargets
	for _, n := range entity.AllNutrients {
		if v := goals.Get(n); v > 0 {
			resolved.Set(n, v)
		}
	}

	return resolved
}
