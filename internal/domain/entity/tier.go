package entity

// Tier represents a membership tier in the loyalty program
type Tier string

// Membership tiers, ordered Silver < Gold < Platinum
const (
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// PointsPerTier is the number of points that advances a member one tier
const PointsPerTier = 30000

// TierForPoints derives the membership tier from a point balance.
// The tier is never stored; it is always computed from the balance so it
// cannot drift from the ledger.
func TierForPoints(points int) Tier {
	switch {
	case points >= 2*PointsPerTier:
		return TierPlatinum
	case points >= PointsPerTier:
		return TierGold
	default:
		return TierSilver
	}
}

// PointsToNextTier returns how many points are still needed to reach the
// next tier. Platinum members have no next tier and get 0.
func PointsToNextTier(points int) int {
	if points >= 2*PointsPerTier {
		return 0
	}
	return PointsPerTier - points%PointsPerTier
}

// TierProgressPercent returns the progress within the current tier band
// as a percentage in [0, 100]. Platinum members are always at 100.
func TierProgressPercent(points int) float64 {
	if points >= 2*PointsPerTier {
		return 100
	}
	return float64(points%PointsPerTier) / float64(PointsPerTier) * 100
}
