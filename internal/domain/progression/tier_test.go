package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierOf_Boundaries(t *testing.T) {
	tests := []struct {
		points int
		want   Tier
		next   Tier
	}{
		{points: 0, want: TierBronze, next: TierSilver},
		{points: 100, want: TierBronze, next: TierSilver},
		{points: 101, want: TierSilver, next: TierGold},
		{points: 250, want: TierSilver, next: TierGold},
		{points: 251, want: TierGold, next: TierPlatinum},
		{points: 450, want: TierGold, next: TierPlatinum},
		{points: 451, want: TierPlatinum},
		{points: 5000, want: TierPlatinum},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			p := TierOf(tt.points)

			assert.Equal(t, tt.want, p.Tier, "points=%d", tt.points)
			assert.Equal(t, tt.next, p.NextTier, "points=%d", tt.points)
		})
	}
}

func TestTierOf_FractionAlwaysInRange(t *testing.T) {
	for points := -50; points <= 1500; points++ {
		p := TierOf(points)

		assert.GreaterOrEqual(t, p.Fraction, 0.0, "points=%d", points)
		assert.LessOrEqual(t, p.Fraction, 1.0, "points=%d", points)
		assert.GreaterOrEqual(t, p.PointsToNext, 0, "points=%d", points)
	}
}

func TestTierOf_Progress(t *testing.T) {
	p := TierOf(50)
	assert.InDelta(t, 0.5, p.Fraction, 0.0001)
	assert.Equal(t, 51, p.PointsToNext)

	p = TierOf(175)
	assert.Equal(t, 100, p.LowerBound)
	assert.Equal(t, 250, p.UpperBound)
	assert.InDelta(t, 0.5, p.Fraction, 0.0001)

	p = TierOf(100)
	assert.InDelta(t, 1, p.Fraction, 0.0001)
	assert.Equal(t, 1, p.PointsToNext)
}

func TestTierOf_PlatinumSaturates(t *testing.T) {
	p := TierOf(451)
	assert.InDelta(t, 1, p.Fraction, 0.0001)
	assert.Equal(t, DisplayCeiling, p.UpperBound)
	assert.Equal(t, 549, p.PointsToNext)
	assert.True(t, p.IsMax())

	p = TierOf(1200)
	assert.InDelta(t, 1, p.Fraction, 0.0001)
	assert.Equal(t, 0, p.PointsToNext)
}

func TestTierOf_NegativeClamped(t *testing.T) {
	p := TierOf(-10)
	assert.Equal(t, TierBronze, p.Tier)
	assert.Equal(t, 0, p.Points)
}
