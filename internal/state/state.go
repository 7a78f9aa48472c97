// Package state defines the single mutable aggregate the engine owns.
// All mutation happens in the engine; everything else reads snapshots.
package state

import (
	"time"

	"runeclicker/internal/catalog"
)

// UpgradeState is the owned/price record for one catalog upgrade,
// keyed by stable id rather than positional index.
type UpgradeState struct {
	ID        string  `json:"id"`
	Amount    int     `json:"amount"`
	Price     float64 `json:"price"`
	MaxAmount int     `json:"max_amount"`
}

// Stats are cumulative lifetime counters. A parallel dev-mode tree is
// kept separately and never merged into the authentic totals.
type Stats struct {
	MoneyEarned   float64 `json:"money_earned"`
	Clicks        int64   `json:"clicks"`
	GemsFound     int64   `json:"gems_found"`
	PacksOpened   int64   `json:"packs_opened"`
	RunesCrafted  int64   `json:"runes_crafted"`
	Rebirths      int64   `json:"rebirths"`
	TraderDeals   int64   `json:"trader_deals"`
	EventsSeen    int64   `json:"events_seen"`
	OnlineSeconds int64   `json:"online_seconds"`
}

// GameState is the sole mutable aggregate, serialized wholesale after
// every committed mutation.
type GameState struct {
	// Currencies. Money and rebirth points may be fractional and may
	// overflow the finite float range; gems and gold RP are integers.
	Money         float64 `json:"money"`
	RebirthPoints float64 `json:"rebirth_points"`
	Gems          int64   `json:"gems"`
	GoldRP        int64   `json:"gold_rp"`

	// Base production rates, pre-multiplier.
	MoneyPerClick float64 `json:"money_per_click"`
	MoneyPerTick  float64 `json:"money_per_tick"`

	ClicksTotal     int64 `json:"clicks_total"`
	ClicksInRebirth int64 `json:"clicks_in_rebirth"`

	Upgrades        []UpgradeState `json:"upgrades"`
	RebirthUpgrades []UpgradeState `json:"rebirth_upgrades"`

	Runes              [catalog.RuneTierCount]int64 `json:"runes"`
	ElementalRunes     [catalog.ElementCount]int64  `json:"elemental_runes"`
	ElementalResources [catalog.ElementCount]float64 `json:"elemental_resources"`
	ElementalPrestige  [catalog.ElementCount]int    `json:"elemental_prestige"`
	ElementUnlocked    [catalog.ElementCount]bool   `json:"element_unlocked"`

	// Achievements holds id→tier; absence means tier 0.
	Achievements map[string]int `json:"achievements"`
	// GoldSkills holds node id→current level.
	GoldSkills map[string]int `json:"gold_skills"`

	// One-way reveal: true once the player has ever held a gem.
	GemEverHeld bool `json:"gem_ever_held"`

	// Event state. ActiveEvent empty means none.
	ActiveEvent string `json:"active_event"`
	EventEndsAt int64  `json:"event_ends_at"`
	NextEventAt int64  `json:"next_event_at"`

	// Trader state: ids of the currently offered pool entries.
	TraderOffers    []string `json:"trader_offers"`
	TraderRefreshAt int64    `json:"trader_refresh_at"`

	// Monotone records across rebirths.
	HighestMoneyInRebirth float64 `json:"highest_money_in_rebirth"`
	FastestRebirthSeconds float64 `json:"fastest_rebirth_seconds"` // 0 = unset
	LastRebirthAt         int64   `json:"last_rebirth_at"`

	Stats    Stats `json:"stats"`
	DevStats Stats `json:"dev_stats"`
	DevMode  bool  `json:"dev_mode"`

	// Wall-clock of the last save, used only by the offline reconciler.
	LastSaveAt int64 `json:"last_save_at"`
}

// Default builds a fresh state aligned with the catalog.
func Default(cat *catalog.Catalog, now time.Time) *GameState {
	st := &GameState{
		MoneyPerClick: 1,
		Achievements:  map[string]int{},
		GoldSkills:    map[string]int{},
		NextEventAt:   now.Unix() + catalog.EventIntervalSeconds,
		LastRebirthAt: now.Unix(),
		LastSaveAt:    now.Unix(),
	}
	st.Upgrades = defaultUpgradeStates(cat)
	st.RebirthUpgrades = defaultRebirthUpgradeStates(cat)
	return st
}

func defaultUpgradeStates(cat *catalog.Catalog) []UpgradeState {
	out := make([]UpgradeState, len(cat.Upgrades))
	for i, def := range cat.Upgrades {
		out[i] = UpgradeState{ID: def.ID, Price: def.BasePrice, MaxAmount: def.MaxAmount}
	}
	return out
}

func defaultRebirthUpgradeStates(cat *catalog.Catalog) []UpgradeState {
	out := make([]UpgradeState, len(cat.RebirthUpgrades))
	for i, def := range cat.RebirthUpgrades {
		out[i] = UpgradeState{ID: def.ID, Price: def.BasePrice, MaxAmount: def.MaxAmount}
	}
	return out
}

// Clone returns a deep copy. Ops mutate the copy and commit it whole,
// so partially applied transitions are never observable.
func (s *GameState) Clone() *GameState {
	cp := *s
	cp.Upgrades = append([]UpgradeState(nil), s.Upgrades...)
	cp.RebirthUpgrades = append([]UpgradeState(nil), s.RebirthUpgrades...)
	cp.TraderOffers = append([]string(nil), s.TraderOffers...)
	cp.Achievements = make(map[string]int, len(s.Achievements))
	for k, v := range s.Achievements {
		cp.Achievements[k] = v
	}
	cp.GoldSkills = make(map[string]int, len(s.GoldSkills))
	for k, v := range s.GoldSkills {
		cp.GoldSkills[k] = v
	}
	return &cp
}

// Upgrade returns a pointer into the state's upgrade list, or nil.
func (s *GameState) Upgrade(id string) *UpgradeState {
	for i := range s.Upgrades {
		if s.Upgrades[i].ID == id {
			return &s.Upgrades[i]
		}
	}
	return nil
}

// RebirthUpgrade returns a pointer into the rebirth upgrade list, or nil.
func (s *GameState) RebirthUpgrade(id string) *UpgradeState {
	for i := range s.RebirthUpgrades {
		if s.RebirthUpgrades[i].ID == id {
			return &s.RebirthUpgrades[i]
		}
	}
	return nil
}

// RebirthUpgradeLevel reads a rebirth upgrade amount with absent ids
// treated as level 0.
func (s *GameState) RebirthUpgradeLevel(id string) int {
	if u := s.RebirthUpgrade(id); u != nil {
		return u.Amount
	}
	return 0
}

// HasFeature reports whether the Unlock-type upgrade granting the
// feature has been purchased.
func (s *GameState) HasFeature(cat *catalog.Catalog, feature string) bool {
	for _, def := range cat.Upgrades {
		if def.Type == catalog.UpgradeUnlock && def.Unlocks == feature {
			if u := s.Upgrade(def.ID); u != nil && u.Amount > 0 {
				return true
			}
		}
	}
	return false
}

// GemUnlockTier is 0 until the gem refinery unlock is held, then 1.
// The tier selects the base gem chance.
func (s *GameState) GemUnlockTier(cat *catalog.Catalog) int {
	if s.HasFeature(cat, catalog.FeatureGemRefinery) {
		return 1
	}
	return 0
}

// CurrentStats returns the bucket mutations should land in: the dev
// tree while dev mode is on, the authentic lifetime totals otherwise.
func (s *GameState) CurrentStats() *Stats {
	if s.DevMode {
		return &s.DevStats
	}
	return &s.Stats
}
