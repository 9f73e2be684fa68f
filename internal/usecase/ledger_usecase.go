package usecase

import (
	"context"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/progression"
)

// --- Input DTOs ---

// LogMealInput describes one meal to estimate and log.
type LogMealInput struct {
	Description string
	Image       []byte
	ImageType   string
}

// --- Output DTOs ---

// LogMealOutput returns the persisted entry and the user's standing after the award.
type LogMealOutput struct {
	Entry         *entity.FoodLogEntry
	PointsAwarded int
	Streak        int
	Rank          progression.Progress
}

// NutrientProgress is one nutrient's consumed amount against its resolved target.
type NutrientProgress struct {
	Nutrient entity.Nutrient
	Unit     string
	Consumed float64
	Target   float64
	Fraction float64
}

// ProgressOutput is the dashboard for one user and date bucket.
type ProgressOutput struct {
	DateRef   string
	Totals    entity.NutrientValues
	Targets   entity.NutrientValues
	Nutrients []NutrientProgress
	Entries   []*entity.FoodLogEntry
	Rank      progression.Progress
}

// LeaderboardEntry is one ranked user.
type LeaderboardEntry struct {
	Position   int
	UserID     string
	Username   string
	RankPoints int
	Tier       progression.Tier
}

// LedgerUsecase defines the meal-logging and progress operations.
type LedgerUsecase interface {
	// LogMeal estimates, validates, stamps and appends a meal, then awards points.
	LogMeal(ctx context.Context, session *entity.Session, input *LogMealInput) (*LogMealOutput, error)

	// GetProgress aggregates the day's totals against resolved targets. An
	// empty dateRef means today.
	GetProgress(ctx context.Context, session *entity.Session, dateRef string) (*ProgressOutput, error)

	// Aggregate sums the user's logged nutrients for dateRef.
	Aggregate(ctx context.Context, userID, dateRef string) (entity.NutrientValues, error)

	// Leaderboard orders users by rank points, descending. Ties keep
	// collection order. A non-positive limit uses the configured default.
	Leaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
}
