package estimator

import (
	"fmt"
	"strings"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/nutrition"
)

const systemPrompt = "You are a nutrition analyst. You estimate the nutrient content of meals " +
	"and answer with a single JSON object and nothing else."

// BuildPrompt asks for the meal name plus every tracked nutrient as a number.
func BuildPrompt(description string, withImage bool) string {
	keys := make([]string, 0, len(entity.AllNutrients)+1)
	keys = append(keys, fmt.Sprintf("%q (short name of the meal)", nutrition.MealNameKey))
	for _, n := range entity.AllNutrients {
		keys = append(keys, fmt.Sprintf("%q (%s)", n, n.Unit()))
	}

	var sb strings.Builder
	if withImage {
		sb.WriteString("Estimate the nutrition of the meal in the photo.")
	} else {
		sb.WriteString("Estimate the nutrition of this meal.")
	}
	if d := strings.TrimSpace(description); d != "" {
		sb.WriteString(" Description: ")
		sb.WriteString(d)
		sb.WriteString(".")
	}
	sb.WriteString(" Return JSON with exactly these keys: ")
	sb.WriteString(strings.Join(keys, ", "))
	sb.WriteString(". Every nutrient value must be a non-negative number without units.")

	return sb.String()
}
