// Package progression maps the rank points counter to a tier.
package progression

// Tier is one of the progression tiers.
type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// DisplayCeiling is the cosmetic upper bound shown for Platinum.
const DisplayCeiling = 1000

// String returns the string representation of the Tier.
func (t Tier) String() string {
	return string(t)
}

// Progress is the tier state derived from a points counter.
type Progress struct {
	Points       int     `json:"points"`
	Tier         Tier    `json:"tier"`
	LowerBound   int     `json:"lower_bound"`
	UpperBound   int     `json:"upper_bound"`
	NextTier     Tier    `json:"next_tier,omitempty"`
	Fraction     float64 `json:"progress"`
	PointsToNext int     `json:"points_to_next"`
}

// IsMax reports whether the tier has no successor.
func (p Progress) IsMax() bool {
	return p.NextTier == ""
}

type band struct {
	tier  Tier
	upper int // inclusive
	next  Tier
}

// Each band covers (previous upper, upper]. Exactly 100 points is still Bronze.
var bands = []band{
	{tier: TierBronze, upper: 100, next: TierSilver},
	{tier: TierSilver, upper: 250, next: TierGold},
	{tier: TierGold, upper: 450, next: TierPlatinum},
}

// TierOf computes the tier for points. Negative points are treated as zero.
func TierOf(points int) Progress {
	if points < 0 {
		points = 0
	}

	lower := 0
	for _, b := range bands {
		if points <= b.upper {
			return Progress{
				Points:       points,
				Tier:         b.tier,
				LowerBound:   lower,
				UpperBound:   b.upper,
				NextTier:     b.next,
				Fraction:     clamp(float64(points-lower) / float64(b.upper-lower)),
				PointsToNext: b.upper - points + 1,
			}
		}
		lower = b.upper
	}

	return Progress{
		Points:       points,
		Tier:         TierPlatinum,
		LowerBound:   lower,
		UpperBound:   DisplayCeiling,
		Fraction:     1,
		PointsToNext: max(DisplayCeiling-points, 0),
	}
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
