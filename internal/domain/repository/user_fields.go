package repository

import (
	"strings"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/nutrition"
)

// ApplyUserField sets the user attribute stored under field. Numeric fields
// use safe parsing, so malformed values read as zero. It reports whether field
// is a recognised UpdateFields name.
func ApplyUserField(u *entity.User, field, value string) bool {
	for _, n := range entity.AllNutrients {
		if GoalField(n) == field {
			u.Goals.Set(n, nutrition.SafeFloat(value, 0))

			return true
		}
	}

	switch field {
	case FieldCredential:
		u.Credential = value
	case FieldRankPoints:
		u.RankPoints = nutrition.SafeInt(value)
	case FieldTier:
		u.Tier = value
	case FieldStreak:
		u.Streak = nutrition.SafeInt(value)
	case FieldLastLogDate:
		u.LastLogDate = value
	case FieldAge:
		u.Demographics.Age = nutrition.SafeInt(value)
	case FieldGender:
		u.Demographics.Gender = value
	case FieldHeightCm:
		u.Demographics.HeightCm = nutrition.SafeFloat(value, 0)
	case FieldWeightKg:
		u.Demographics.WeightKg = nutrition.SafeFloat(value, 0)
	case FieldActivityLevel:
		u.Demographics.ActivityLevel = value
	case FieldApproved:
		u.Approved = ParseBool(value)
	default:
		return false
	}

	return true
}

// IsUserField reports whether UpdateFields accepts field.
func IsUserField(field string) bool {
	var probe entity.User

	return ApplyUserField(&probe, field, "")
}

// ParseBool reads the spreadsheet renderings of a boolean.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y":
		return true
	default:
		return false
	}
}

// FormatBool renders a boolean the way spreadsheets display it.
func FormatBool(b bool) string {
	if b {
		return "TRUE"
	}

	return "FALSE"
}
