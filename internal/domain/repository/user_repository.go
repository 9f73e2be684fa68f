// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"nutriledger/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// User field names accepted by UpdateFields. They match the column headers of
// the Users collection; anything else passed to UpdateFields is ignored.
const (
	FieldCredential    = "Password"
	FieldCalorieGoal   = "Calorie_Goal"
	FieldProteinGoal   = "Protein_Goal"
	FieldCarbGoal      = "Carb_Goal"
	FieldSatFatGoal    = "SatFat_Goal"
	FieldUnsatFatGoal  = "UnsatFat_Goal"
	FieldFiberGoal     = "Fiber_Goal"
	FieldSugarGoal     = "Sugar_Goal"
	FieldSodiumGoal    = "Sodium_Goal"
	FieldPotassiumGoal = "Potassium_Goal"
	FieldIronGoal      = "Iron_Goal"
	FieldRankPoints    = "Rank_Points"
	FieldTier          = "Tier"
	FieldStreak        = "Streak"
	FieldLastLogDate   = "Last_Log_Date"
	FieldAge           = "Age"
	FieldGender        = "Gender"
	FieldHeightCm      = "Height_cm"
	FieldWeightKg      = "Weight_kg"
	FieldActivityLevel = "Activity_Level"
	FieldApproved      = "Approved"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindAll returns every user in collection order. An empty collection is
	// not an error; a store failure is.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Find returns the first user, in collection order, matching predicate.
	Find(ctx context.Context, predicate func(*entity.User) bool) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername retrieves a single user by username, case-insensitively.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateFields writes the recognised fields of the user's row and mirrors
	// them into session.User when it is the same user. Unrecognised field
	// names are ignored.
	UpdateFields(ctx context.Context, session *entity.Session, userID string, fields map[string]string) error
}

// GoalField returns the UpdateFields name of the goal for n.
func GoalField(n entity.Nutrient) string {
	switch n {
	case entity.NutrientCalories:
		return FieldCalorieGoal
	case entity.NutrientProtein:
		return FieldProteinGoal
	case entity.NutrientCarbs:
		return FieldCarbGoal
	case entity.NutrientSatFat:
		return FieldSatFatGoal
	case entity.NutrientUnsatFat:
		return FieldUnsatFatGoal
	case entity.NutrientFiber:
		return FieldFiberGoal
	case entity.NutrientSugar:
		return FieldSugarGoal
	case entity.NutrientSodium:
		return FieldSodiumGoal
	case entity.NutrientPotassium:
		return FieldPotassiumGoal
	case entity.NutrientIron:
		return FieldIronGoal
	default:
		return ""
	}
}
