package state

import (
	"math"
	"time"

	"runeclicker/internal/catalog"
	"runeclicker/internal/econ"
)

// Normalize patches a loaded snapshot into a fully populated, valid
// shape: missing catalog entries are added with defaults, unknown ids
// dropped, negatives clamped, and stale prices recomputed. Downstream
// logic gets to assume every field is present. This is the one place
// `|| 0` fallbacks are allowed to live.
func (s *GameState) Normalize(cat *catalog.Catalog, now time.Time) {
	if s.Achievements == nil {
		s.Achievements = map[string]int{}
	}
	if s.GoldSkills == nil {
		s.GoldSkills = map[string]int{}
	}

	s.Upgrades = normalizeUpgrades(s.Upgrades, cat, false)
	s.RebirthUpgrades = normalizeUpgrades(s.RebirthUpgrades, cat, true)

	s.Money = clampNonNegative(s.Money)
	s.RebirthPoints = clampNonNegative(s.RebirthPoints)
	if s.Gems < 0 {
		s.Gems = 0
	}
	if s.GoldRP < 0 {
		s.GoldRP = 0
	}
	if s.MoneyPerClick <= 0 {
		s.MoneyPerClick = 1
	}
	if s.MoneyPerTick < 0 {
		s.MoneyPerTick = 0
	}
	if s.ClicksTotal < 0 {
		s.ClicksTotal = 0
	}
	if s.ClicksInRebirth < 0 {
		s.ClicksInRebirth = 0
	}

	for i := range s.Runes {
		if s.Runes[i] < 0 {
			s.Runes[i] = 0
		}
	}
	for i := 0; i < catalog.ElementCount; i++ {
		if s.ElementalRunes[i] < 0 {
			s.ElementalRunes[i] = 0
		}
		s.ElementalResources[i] = clampNonNegative(s.ElementalResources[i])
		if s.ElementalPrestige[i] < 0 {
			s.ElementalPrestige[i] = 0
		}
		// The unlock flag is one-way; holding a rune implies it.
		if s.ElementalRunes[i] > 0 {
			s.ElementUnlocked[i] = true
		}
	}

	if s.Gems > 0 {
		s.GemEverHeld = true
	}

	if s.ActiveEvent != "" {
		if _, ok := cat.WorldEvent(s.ActiveEvent); !ok {
			s.ActiveEvent = ""
			s.EventEndsAt = 0
		}
	}
	if s.NextEventAt == 0 {
		s.NextEventAt = now.Unix() + catalog.EventIntervalSeconds
	}

	offers := s.TraderOffers[:0]
	for _, id := range s.TraderOffers {
		for _, def := range cat.TraderOffers {
			if def.ID == id {
				offers = append(offers, id)
				break
			}
		}
	}
	s.TraderOffers = offers

	if s.FastestRebirthSeconds < 0 {
		s.FastestRebirthSeconds = 0
	}
	if s.LastRebirthAt == 0 {
		s.LastRebirthAt = now.Unix()
	}
	if s.LastSaveAt == 0 {
		s.LastSaveAt = now.Unix()
	}
}

func normalizeUpgrades(have []UpgradeState, cat *catalog.Catalog, rebirth bool) []UpgradeState {
	byID := make(map[string]UpgradeState, len(have))
	for _, u := range have {
		byID[u.ID] = u
	}

	var out []UpgradeState
	if rebirth {
		out = make([]UpgradeState, 0, len(cat.RebirthUpgrades))
		for i, def := range cat.RebirthUpgrades {
			out = append(out, normalizeUpgrade(byID[def.ID], def.ID, def.BasePrice, def.MaxAmount,
				econ.RebirthPriceGrowth(i)))
		}
		return out
	}
	out = make([]UpgradeState, 0, len(cat.Upgrades))
	for i, def := range cat.Upgrades {
		out = append(out, normalizeUpgrade(byID[def.ID], def.ID, def.BasePrice, def.MaxAmount,
			econ.PriceGrowth(i)))
	}
	return out
}

func normalizeUpgrade(u UpgradeState, id string, basePrice float64, maxAmount int, growth float64) UpgradeState {
	u.ID = id
	u.MaxAmount = maxAmount
	if u.Amount < 0 {
		u.Amount = 0
	}
	if u.Amount > maxAmount {
		u.Amount = maxAmount
	}
	// A zero or garbled price is rebuilt from the owned count so the
	// curve stays consistent with what was actually purchased.
	if u.Price <= 0 || math.IsNaN(u.Price) {
		u.Price = econ.ScalePrice(basePrice, u.Amount, growth)
	}
	return u
}

func clampNonNegative(v float64) float64 {
	// NaN means a garbled snapshot; +Inf is a legitimate overflow state.
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
