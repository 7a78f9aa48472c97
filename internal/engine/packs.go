package engine

import (
	"runeclicker/internal/bonus"
	"runeclicker/internal/catalog"
	"runeclicker/internal/state"
)

// PackResult reports a rune pack opening. TierGranted is -1 when the
// roll fell past the table's cumulative mass, a valid empty pack. The
// gems are spent either way.
type PackResult struct {
	OK          bool   `json:"ok"`
	Reason      string `json:"reason,omitempty"`
	TierGranted int    `json:"tier_granted"`
	BonusTier   int    `json:"bonus_tier"`
	GemsSpent   int64  `json:"gems_spent"`
	Gems        int64  `json:"gems"`
}

// OpenRunePack spends gems for one weighted rune roll. Pack luck adds
// a chance at a second roll.
func (e *Engine) OpenRunePack() PackResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	st := e.st.Clone()

	cost := e.bal.RunePackGemCost
	if st.Gems < cost {
		return PackResult{Reason: "insufficient gems", TierGranted: -1, BonusTier: -1}
	}

	totals := bonus.Compute(st, e.cat, now)

	st.Gems -= cost
	stats := st.CurrentStats()
	stats.PacksOpened++

	res := PackResult{OK: true, TierGranted: -1, BonusTier: -1, GemsSpent: cost}

	res.TierGranted = e.rolls.RunePack(e.cat.RuneTiers)
	if res.TierGranted >= 0 {
		grantRune(st, res.TierGranted, 1)
	}

	// Luck grants one extra roll, never more.
	if e.rolls.Chance(totals.PackExtraChance) {
		res.BonusTier = e.rolls.RunePack(e.cat.RuneTiers)
		if res.BonusTier >= 0 {
			grantRune(st, res.BonusTier, 1)
		}
	}

	e.updateAchievements(st)
	e.commit(st, now)
	res.Gems = st.Gems
	return res
}

// CraftResult reports a secret rune craft.
type CraftResult struct {
	OK          bool   `json:"ok"`
	Reason      string `json:"reason,omitempty"`
	SecretRunes int64  `json:"secret_runes"`
}

// CraftSecretRune consumes one rune of every basic tier and one of
// every elemental rune for a single Secret rune. The exchange is
// deterministic, no roll involved.
func (e *Engine) CraftSecretRune() CraftResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	st := e.st.Clone()

	for i := 0; i < catalog.SecretTierIndex; i++ {
		if st.Runes[i] < 1 {
			return CraftResult{Reason: "missing " + e.cat.RuneTiers[i].ID + " rune"}
		}
	}
	for i := 0; i < catalog.ElementCount; i++ {
		if st.ElementalRunes[i] < 1 {
			return CraftResult{Reason: "missing " + e.cat.ElementalRunes[i].Name}
		}
	}

	for i := 0; i < catalog.SecretTierIndex; i++ {
		st.Runes[i]--
	}
	for i := 0; i < catalog.ElementCount; i++ {
		st.ElementalRunes[i]--
	}
	st.Runes[catalog.SecretTierIndex]++

	stats := st.CurrentStats()
	stats.RunesCrafted++

	e.commit(st, now)
	return CraftResult{OK: true, SecretRunes: st.Runes[catalog.SecretTierIndex]}
}

// grantElementalRune adds elemental runes and flips the element's
// one-way unlock flag.
func grantElementalRune(st *state.GameState, el catalog.Element, n int64) {
	st.ElementalRunes[el] += n
	if st.ElementalRunes[el] > 0 {
		st.ElementUnlocked[el] = true
	}
}
