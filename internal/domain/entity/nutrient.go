package entity

// Nutrient names one of the ten tracked nutrients. The string value doubles as
// the JSON key the estimator is asked to produce.
type Nutrient string

const (
	NutrientCalories  Nutrient = "calories"
	NutrientProtein   Nutrient = "protein"
	NutrientCarbs     Nutrient = "carbs"
	NutrientSatFat    Nutrient = "sat_fat"
	NutrientUnsatFat  Nutrient = "unsat_fat"
	NutrientFiber     Nutrient = "fiber"
	NutrientSugar     Nutrient = "sugar"
	NutrientSodium    Nutrient = "sodium"
	NutrientPotassium Nutrient = "potassium"
	NutrientIron      Nutrient = "iron"
)

// AllNutrients lists every tracked nutrient in canonical order.
var AllNutrients = []Nutrient{
	NutrientCalories,
	NutrientProtein,
	NutrientCarbs,
	NutrientSatFat,
	NutrientUnsatFat,
	NutrientFiber,
	NutrientSugar,
	NutrientSodium,
	NutrientPotassium,
	NutrientIron,
}

// String returns the string representation of the Nutrient.
func (n Nutrient) String() string {
	return string(n)
}

// IsValid checks if the Nutrient is one of the tracked nutrients.
func (n Nutrient) IsValid() bool {
	switch n {
	case NutrientCalories, NutrientProtein, NutrientCarbs, NutrientSatFat, NutrientUnsatFat,
		NutrientFiber, NutrientSugar, NutrientSodium, NutrientPotassium, NutrientIron:
		return true
	default:
		return false
	}
}

// Unit returns the display unit of the Nutrient.
func (n Nutrient) Unit() string {
	switch n {
	case NutrientCalories:
		return "kcal"
	case NutrientSodium, NutrientPotassium, NutrientIron:
		return "mg"
	default:
		return "g"
	}
}

// NutrientValues is a fixed-shape record holding one magnitude per tracked nutrient.
// It is used for logged meals, daily totals and goals alike.
type NutrientValues struct {
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	SatFat    float64 `json:"sat_fat"`
	UnsatFat  float64 `json:"unsat_fat"`
	Fiber     float64 `json:"fiber"`
	Sugar     float64 `json:"sugar"`
	Sodium    float64 `json:"sodium"`
	Potassium float64 `json:"potassium"`
	Iron      float64 `json:"iron"`
}

// Get returns the magnitude stored for n. Unknown nutrients read as zero.
func (v NutrientValues) Get(n Nutrient) float64 {
	if p := v.field(n); p != nil {
		return *p
	}

	return 0
}

// Set stores value for n. Unknown nutrients are ignored.
func (v *NutrientValues) Set(n Nutrient, value float64) {
	if p := v.field(n); p != nil {
		*p = value
	}
}

// Add returns the per-nutrient sum of v and other.
func (v NutrientValues) Add(other NutrientValues) NutrientValues {
	sum := v
	for _, n := range AllNutrients {
		sum.Set(n, v.Get(n)+other.Get(n))
	}

	return sum
}

// Map returns the values keyed by nutrient.
func (v NutrientValues) Map() map[Nutrient]float64 {
	result := make(map[Nutrient]float64, len(AllNutrients))
	for _, n := range AllNutrients {
		result[n] = v.Get(n)
	}

	return result
}

func (v *NutrientValues) field(n Nutrient) *float64 {
	switch n {
	case NutrientCalories:
		return &v.Calories
	case NutrientProtein:
		return &v.Protein
	case NutrientCarbs:
		return &v.Carbs
	case NutrientSatFat:
		return &v.SatFat
	case NutrientUnsatFat:
		return &v.UnsatFat
	case NutrientFiber:
		return &v.Fiber
	case NutrientSugar:
		return &v.Sugar
	case NutrientSodium:
		return &v.Sodium
	case NutrientPotassium:
		return &v.Potassium
	case NutrientIron:
		return &v.Iron
	default:
		return nil
	}
}
