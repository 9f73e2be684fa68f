package entity

// MealEstimate is a validated estimator result, not yet stamped for persistence.
type MealEstimate struct {
	MealName  string
	Nutrients NutrientValues
}

// FoodLogEntry is one logged meal in the append-only ledger.
type FoodLogEntry struct {
	ID        string         // Opaque identifier generated at log time.
	UserID    string         // Reference to the owning User.
	Timestamp int64          // Unix seconds at creation.
	DateRef   string         // YYYY-MM-DD date bucket used for daily aggregation.
	MealName  string         // Free-text label.
	Nutrients NutrientValues // Estimated magnitudes, all non-negative.
}
