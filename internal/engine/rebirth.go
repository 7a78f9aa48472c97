package engine

import (
	"math"

	"runeclicker/internal/bonus"
	"runeclicker/internal/catalog"
	"runeclicker/internal/state"
)

// RebirthResult reports a reset-and-carry-over transition.
type RebirthResult struct {
	OK           bool    `json:"ok"`
	Reason       string  `json:"reason,omitempty"`
	PointsGained float64 `json:"points_gained"`
	// Golden marks an overflow rebirth: money or rebirth points left
	// the finite float range, which awards gold rebirth points.
	Golden       bool  `json:"golden"`
	GoldRPGained int64 `json:"gold_rp_gained"`
}

// CanRebirth reports eligibility without mutating anything.
func (e *Engine) CanRebirth() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return overflowed(e.st) || e.st.Money >= e.bal.RebirthThreshold
}

// Rebirth converts run money into rebirth points and performs the
// partial reset. Overflow (non-finite money or points) is a designed
// trigger for the golden tier, detected with a finiteness check. It
// is never treated as an error.
func (e *Engine) Rebirth() RebirthResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	st := e.st.Clone()

	golden := overflowed(st)
	if !golden && st.Money < e.bal.RebirthThreshold {
		return RebirthResult{Reason: "not enough money"}
	}

	totals := bonus.Compute(st, e.cat, now)

	res := RebirthResult{OK: true, Golden: golden}
	if golden {
		res.GoldRPGained = 1
		st.GoldRP++
		if math.IsInf(st.RebirthPoints, 1) || math.IsNaN(st.RebirthPoints) {
			st.RebirthPoints = 0
		}
	} else {
		reward := math.Floor(math.Floor(st.Money/e.bal.RebirthDivisor) * (1 + totals.RuneRPBonus) * totals.RPMultiplier)
		st.RebirthPoints += reward
		res.PointsGained = reward
	}

	// Monotone records: update only on improvement.
	if !golden && st.Money > st.HighestMoneyInRebirth {
		st.HighestMoneyInRebirth = st.Money
	}
	elapsed := float64(now.Unix() - st.LastRebirthAt)
	if elapsed >= 0 && (st.FastestRebirthSeconds == 0 || elapsed < st.FastestRebirthSeconds) {
		st.FastestRebirthSeconds = elapsed
	}
	st.LastRebirthAt = now.Unix()

	resetRun(st, e.cat)

	stats := st.CurrentStats()
	stats.Rebirths++

	e.updateAchievements(st)
	e.commit(st, now)
	return res
}

// resetRun applies the partial reset: run-scoped fields return to
// defaults while the permanent layers (points, gems, runes, elemental
// progress, achievements, gold skills, rebirth upgrades, records,
// lifetime stats) carry over. Unlock-type purchases survive.
func resetRun(st *state.GameState, cat *catalog.Catalog) {
	st.Money = 0
	st.ClicksInRebirth = 0

	for i := range st.Upgrades {
		def := cat.Upgrades[i]
		if def.Type == catalog.UpgradeUnlock {
			continue
		}
		st.Upgrades[i].Amount = 0
		st.Upgrades[i].Price = def.BasePrice
	}

	// Base rates rebuild from the surviving rebirth upgrades.
	st.MoneyPerClick = 1
	st.MoneyPerTick = 0
	for i, def := range cat.RebirthUpgrades {
		n := float64(st.RebirthUpgrades[i].Amount)
		st.MoneyPerClick += def.ClickBonus * n
		st.MoneyPerTick += def.TickBonus * n
	}
}

func overflowed(st *state.GameState) bool {
	return math.IsInf(st.Money, 1) || math.IsNaN(st.Money) ||
		math.IsInf(st.RebirthPoints, 1) || math.IsNaN(st.RebirthPoints)
}
