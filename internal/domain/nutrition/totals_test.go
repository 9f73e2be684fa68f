package nutrition

import (
	"math"
	"testing"

	"nutriledger/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	t.Run("no entries is all zero", func(t *testing.T) {
		assert.Equal(t, entity.NutrientValues{}, Sum(nil))
	})

	t.Run("fields add independently", func(t *testing.T) {
		entries := []*entity.FoodLogEntry{
			{Nutrients: entity.NutrientValues{Calories: 300, Protein: 10}},
			{Nutrients: entity.NutrientValues{Calories: 500, Sodium: 400}},
		}

		totals := Sum(entries)

		assert.InDelta(t, 800, totals.Calories, 0.0001)
		assert.InDelta(t, 10, totals.Protein, 0.0001)
		assert.InDelta(t, 400, totals.Sodium, 0.0001)
	})

	t.Run("corrupt field counts as zero", func(t *testing.T) {
		entries := []*entity.FoodLogEntry{
			{Nutrients: entity.NutrientValues{Calories: 300, Fiber: math.NaN()}},
			{Nutrients: entity.NutrientValues{Calories: -50, Fiber: 4}},
			nil,
		}

		totals := Sum(entries)

		assert.InDelta(t, 300, totals.Calories, 0.0001)
		assert.InDelta(t, 4, totals.Fiber, 0.0001)
	})
}

func TestFraction(t *testing.T) {
	assert.InDelta(t, 0.5, Fraction(1000, 2000), 0.0001)
	assert.InDelta(t, 1, Fraction(2500, 2000), 0.0001)
	assert.InDelta(t, 0, Fraction(100, 0), 0.0001)
}

func TestSafeFloatAndInt(t *testing.T) {
	assert.InDelta(t, 12.5, SafeFloat(" 12.5 ", 3), 0.0001)
	assert.InDelta(t, 3, SafeFloat("abc", 3), 0.0001)
	assert.InDelta(t, 3, SafeFloat("-1", 3), 0.0001)
	assert.InDelta(t, 0, SafeFloat("", 0), 0.0001)

	assert.Equal(t, 320, SafeInt("320"))
	assert.Equal(t, 12, SafeInt("12.9"))
	assert.Equal(t, 0, SafeInt("lots"))
	assert.Equal(t, 0, SafeInt(""))
	assert.Equal(t, -5, SafeInt("-5"))
	assert.Equal(t, math.MaxInt, SafeInt("1e30"))
	assert.Equal(t, math.MaxInt, SafeInt("99999999999999999999"))
	assert.Equal(t, math.MinInt, SafeInt("-1e30"))
}

func TestSaturatingAdd(t *testing.T) {
	assert.Equal(t, 15, SaturatingAdd(5, 10))
	assert.Equal(t, math.MaxInt, SaturatingAdd(math.MaxInt-3, 10))
	assert.Equal(t, math.MaxInt, SaturatingAdd(math.MaxInt, 1))
	assert.Equal(t, -5, SaturatingAdd(5, -10))
}

func TestNegativeZeroIsNormalised(t *testing.T) {
	negZero := math.Copysign(0, -1)

	assert.Equal(t, "0", FormatFloat(negZero))
	assert.False(t, math.Signbit(SafeFloat("-0", 7)))
	assert.Equal(t, "0", FormatFloat(SafeFloat("-0", 7)))
}
