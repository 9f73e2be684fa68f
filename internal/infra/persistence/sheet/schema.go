package sheet

import (
	"strconv"

	"nutriledger/internal/domain/constants"
	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/nutrition"
	"nutriledger/internal/domain/repository"
)

// Column names that are not UpdateFields targets.
const (
	ColumnUserID    = "UserID"
	ColumnUsername  = "Username"
	ColumnLogID     = "LogID"
	ColumnTimestamp = "Timestamp"
	ColumnDate      = "Date"
	ColumnMealName  = "Meal_Name"
)

// UsersHeader is the on-disk column order of the Users worksheet. Appends
// write exactly this order.
var UsersHeader = []string{
	ColumnUserID,
	ColumnUsername,
	repository.FieldCredential,
	repository.FieldCalorieGoal,
	repository.FieldProteinGoal,
	repository.FieldCarbGoal,
	repository.FieldSatFatGoal,
	repository.FieldUnsatFatGoal,
	repository.FieldFiberGoal,
	repository.FieldSugarGoal,
	repository.FieldSodiumGoal,
	repository.FieldPotassiumGoal,
	repository.FieldIronGoal,
	repository.FieldRankPoints,
	repository.FieldTier,
	repository.FieldStreak,
	repository.FieldLastLogDate,
	repository.FieldAge,
	repository.FieldGender,
	repository.FieldHeightCm,
	repository.FieldWeightKg,
	repository.FieldActivityLevel,
	repository.FieldApproved,
}

// FoodLogsHeader is the on-disk column order of the FoodLogs worksheet.
var FoodLogsHeader = []string{
	ColumnLogID,
	ColumnUserID,
	ColumnTimestamp,
	ColumnDate,
	ColumnMealName,
	"Calories",
	"Protein",
	"Carbs",
	"SatFat",
	"UnsatFat",
	"Fiber",
	"Sugar",
	"Sodium",
	"Potassium",
	"Iron",
}

// Headers returns the header of every worksheet the repositories use.
func Headers() map[string][]string {
	return map[string][]string{
		constants.SheetUsers:    UsersHeader,
		constants.SheetFoodLogs: FoodLogsHeader,
	}
}

// UpdatableUserField reports whether UpdateFields may write field. The
// identifier and username are immutable.
func UpdatableUserField(field string) bool {
	return repository.IsUserField(field) && indexOf(UsersHeader, field) >= 0
}

func logColumn(n entity.Nutrient) string {
	switch n {
	case entity.NutrientCalories:
		return "Calories"
	case entity.NutrientProtein:
		return "Protein"
	case entity.NutrientCarbs:
		return "Carbs"
	case entity.NutrientSatFat:
		return "SatFat"
	case entity.NutrientUnsatFat:
		return "UnsatFat"
	case entity.NutrientFiber:
		return "Fiber"
	case entity.NutrientSugar:
		return "Sugar"
	case entity.NutrientSodium:
		return "Sodium"
	case entity.NutrientPotassium:
		return "Potassium"
	default:
		return "Iron"
	}
}

func userToRow(u *entity.User) []string {
	values := map[string]string{
		ColumnUserID:                  u.ID,
		ColumnUsername:                u.Username,
		repository.FieldCredential:    u.Credential,
		repository.FieldRankPoints:    strconv.Itoa(u.RankPoints),
		repository.FieldTier:          u.Tier,
		repository.FieldStreak:        strconv.Itoa(u.Streak),
		repository.FieldLastLogDate:   u.LastLogDate,
		repository.FieldAge:           formatOptionalInt(u.Demographics.Age),
		repository.FieldGender:        u.Demographics.Gender,
		repository.FieldHeightCm:      formatOptionalFloat(u.Demographics.HeightCm),
		repository.FieldWeightKg:      formatOptionalFloat(u.Demographics.WeightKg),
		repository.FieldActivityLevel: u.Demographics.ActivityLevel,
		repository.FieldApproved:      repository.FormatBool(u.Approved),
	}
	for _, n := range entity.AllNutrients {
		values[repository.GoalField(n)] = nutrition.FormatFloat(u.Goals.Get(n))
	}

	row := make([]string, len(UsersHeader))
	for i, name := range UsersHeader {
		row[i] = values[name]
	}

	return row
}

func userFromRecord(rec Record) *entity.User {
	u := &entity.User{
		ID:       rec[ColumnUserID],
		Username: rec[ColumnUsername],
	}
	for field, value := range rec {
		repository.ApplyUserField(u, field, value)
	}

	return u
}

func logToRow(e *entity.FoodLogEntry) []string {
	row := []string{
		e.ID,
		e.UserID,
		strconv.FormatInt(e.Timestamp, 10),
		e.DateRef,
		e.MealName,
	}
	for _, n := range entity.AllNutrients {
		row = append(row, nutrition.FormatFloat(e.Nutrients.Get(n)))
	}

	return row
}

func logFromRecord(rec Record) *entity.FoodLogEntry {
	e := &entity.FoodLogEntry{
		ID:        rec[ColumnLogID],
		UserID:    rec[ColumnUserID],
		Timestamp: int64(nutrition.SafeInt(rec[ColumnTimestamp])),
		DateRef:   rec[ColumnDate],
		MealName:  rec[ColumnMealName],
	}
	for _, n := range entity.AllNutrients {
		e.Nutrients.Set(n, nutrition.SafeFloat(rec[logColumn(n)], 0))
	}

	return e
}

func formatOptionalInt(v int) string {
	if v == 0 {
		return ""
	}

	return strconv.Itoa(v)
}

func formatOptionalFloat(v float64) string {
	if v == 0 {
		return ""
	}

	return nutrition.FormatFloat(v)
}
