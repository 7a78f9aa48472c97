// Package econ holds the pure pricing and multiplier arithmetic every
// other engine component builds on. Nothing in here touches state.
package econ

import "math"

// ScalePrice returns the price of the next purchase after owning
// `owned` units: floor(base × mult^owned). The floor must be
// reproduced exactly so displayed prices stay save-compatible.
func ScalePrice(base float64, owned int, mult float64) float64 {
	return math.Floor(base * math.Pow(mult, float64(owned)))
}

// PriceGrowth returns the growth multiplier band for an ordinary
// upgrade at the given catalog index.
func PriceGrowth(index int) float64 {
	switch {
	case index <= 1:
		return 2.0
	case index <= 3:
		return 2.5
	case index <= 6:
		return 3.0
	default:
		return 3.5
	}
}

// RebirthPriceGrowth is the coarser three-band variant used for
// rebirth-tier upgrades.
func RebirthPriceGrowth(index int) float64 {
	switch {
	case index <= 2:
		return 2.0
	case index <= 5:
		return 3.0
	default:
		return 3.5
	}
}

// MaxAffordable simulates sequential purchases greedily and returns
// how many units fit in the budget along with the aggregate cost. The
// caller charges the total once; per-unit charging is never exposed.
func MaxAffordable(base float64, owned, max int, budget, mult float64) (count int, cost float64) {
	for owned+count < max {
		next := ScalePrice(base, owned+count, mult)
		if cost+next > budget {
			break
		}
		cost += next
		count++
	}
	return count, cost
}

// Compose folds factors multiplicatively. A factor of 1 is a no-op, so
// absent bonus sources feed 1 and disappear.
func Compose(factors ...float64) float64 {
	out := 1.0
	for _, f := range factors {
		out *= f
	}
	return out
}

// ClickCountMultiplier implements the click-multiplier law: with the
// upgrade at level L>0 the multiplier is (clicks+1)^(0.01+(L-1)×0.01).
// The +1 anticipates the click about to be counted.
func ClickCountMultiplier(totalClicks int64, level int) float64 {
	if level <= 0 {
		return 1
	}
	exp := 0.01 + float64(level-1)*0.01
	return math.Pow(float64(totalClicks)+1, exp)
}

// RebirthPointMultiplier implements the RP-multiplier law:
// 1 + ln(rp+1) × 0.05 while the upgrade holds a level.
func RebirthPointMultiplier(rebirthPoints float64, level int) float64 {
	if level <= 0 {
		return 1
	}
	return 1 + math.Log(rebirthPoints+1)*0.05
}
