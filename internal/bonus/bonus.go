// Package bonus folds every independent bonus source into one Totals
// value per state transition. All callers go through here; the click,
// tick, rebirth and leaderboard paths must never reimplement the
// composition inline.
package bonus

import (
	"time"

	"runeclicker/internal/catalog"
	"runeclicker/internal/econ"
	"runeclicker/internal/state"
)

// Totals is the composed bonus set for one state transition. It is
// computed once per mutation and threaded through the update rules;
// there is no ambient cache.
type Totals struct {
	MoneyMultiplier float64 `json:"money_multiplier"`
	TickMultiplier  float64 `json:"tick_multiplier"`
	GemChance       float64 `json:"gem_chance"`
	RPMultiplier    float64 `json:"rp_multiplier"`
	RuneRPBonus     float64 `json:"rune_rp_bonus"`
	ElementalGain   float64 `json:"elemental_gain"`
	SpeedFactor     float64 `json:"speed_factor"`
	UpgradeDiscount float64 `json:"upgrade_discount"`
	PackExtraChance float64 `json:"pack_extra_chance"`
	AutoClickRate   int     `json:"auto_click_rate"`
}

// Base gem chances by unlock tier. The refinery unlock moves the
// player from the low tier to the high one.
const (
	gemChanceBase     = 0.005
	gemChanceRefinery = 0.05
)

// Compute aggregates every bonus source in the given state. Absent or
// optional sources contribute neutrally; the function never fails.
func Compute(st *state.GameState, cat *catalog.Catalog, now time.Time) Totals {
	ev, evActive := activeEvent(st, cat, now)

	asc := ascensionTotal(st, cat)

	achMoney := 1 + 0.01*float64(totalAchievementTiers(st))

	runeMoney := 1.0
	runeGem := 0.0
	runeRP := 0.0
	for i, tier := range cat.RuneTiers {
		n := float64(st.Runes[i])
		if n <= 0 {
			continue
		}
		runeMoney += n * tier.MoneyBonus
		runeGem += n * tier.GemBonus
		runeRP += n * tier.RPBonus
	}

	skillClick := rescale(goldSkillBonus(st, cat, catalog.SkillClickPower), asc)
	skillGem := rescale(goldSkillBonus(st, cat, catalog.SkillGemGain), asc)
	skillRP := rescale(goldSkillBonus(st, cat, catalog.SkillRPGain), asc)
	skillPack := rescale(goldSkillBonus(st, cat, catalog.SkillPackLuck), asc)

	prestigeClick := prestigeBonus(st, cat, catalog.PrestigeClickPower)
	prestigeIncome := prestigeBonus(st, cat, catalog.PrestigeAutoIncome)
	prestigeSpeed := prestigeBonus(st, cat, catalog.PrestigeAutoSpeed)
	prestigeRP := prestigeBonus(st, cat, catalog.PrestigeRPGain)
	prestigePack := prestigeBonus(st, cat, catalog.PrestigePackLuck)
	discount := prestigeDiscount(st, cat)

	rpUpgradeMult := econ.RebirthPointMultiplier(st.RebirthPoints, st.RebirthUpgradeLevel("rb_rpmult"))
	clickCountMult := econ.ClickCountMultiplier(st.ClicksTotal, st.RebirthUpgradeLevel("rb_clickmult"))

	eventClick := 1.0
	eventRP := 1.0
	eventElemental := 1.0
	eventSpeed := 1.0
	eventPack := 1.0
	gemEventActive := false
	if evActive {
		switch ev.Type {
		case catalog.EventClickFrenzy:
			eventClick = ev.Multiplier
		case catalog.EventGemRush:
			gemEventActive = true
		case catalog.EventTimeWarp:
			eventSpeed = ev.Multiplier
		case catalog.EventElementSurge:
			eventElemental = ev.Multiplier
		case catalog.EventPointStorm:
			eventRP = ev.Multiplier
		case catalog.EventLuckyAir:
			eventPack = ev.Multiplier
		}
	}

	moneyMult := econ.Compose(
		achMoney,
		runeMoney,
		skillClick,
		prestigeClick,
		rpUpgradeMult,
		clickCountMult,
		eventClick,
	)

	baseGem := gemChanceBase
	if st.GemUnlockTier(cat) >= 1 {
		baseGem = gemChanceRefinery
	}
	gemChance := (baseGem + runeGem + achievementGemBonus(st, cat)) * skillGem
	if gemEventActive {
		gemChance *= 2
	}
	if gemChance > 1 {
		gemChance = 1
	}

	packLuck := econ.Compose(skillPack, prestigePack, eventPack)

	return Totals{
		MoneyMultiplier: moneyMult,
		TickMultiplier:  econ.Compose(moneyMult, prestigeIncome),
		GemChance:       gemChance,
		RPMultiplier:    econ.Compose(skillRP, prestigeRP, eventRP),
		RuneRPBonus:     runeRP,
		ElementalGain:   eventElemental,
		SpeedFactor:     econ.Compose(prestigeSpeed, eventSpeed),
		UpgradeDiscount: discount,
		PackExtraChance: packLuck - 1,
		AutoClickRate:   st.RebirthUpgradeLevel("rb_auto"),
	}
}

func activeEvent(st *state.GameState, cat *catalog.Catalog, now time.Time) (catalog.WorldEvent, bool) {
	if st.ActiveEvent == "" || now.Unix() >= st.EventEndsAt {
		return catalog.WorldEvent{}, false
	}
	return cat.WorldEvent(st.ActiveEvent)
}

func totalAchievementTiers(st *state.GameState) int {
	total := 0
	for _, tier := range st.Achievements {
		total += tier
	}
	return total
}

func achievementGemBonus(st *state.GameState, cat *catalog.Catalog) float64 {
	bonus := 0.0
	for _, def := range cat.Achievements {
		if def.GemBonusPerTier == 0 {
			continue
		}
		bonus += def.GemBonusPerTier * float64(st.Achievements[def.ID])
	}
	return bonus
}

// goldSkillBonus sums the above-1 parts of every skill with the given
// effect into a single 1+x bonus.
func goldSkillBonus(st *state.GameState, cat *catalog.Catalog, effect catalog.GoldSkillEffect) float64 {
	sum := 0.0
	for _, skill := range cat.GoldSkills {
		if skill.Effect != effect {
			continue
		}
		sum += skill.PerLevel * float64(st.GoldSkills[skill.ID])
	}
	return 1 + sum
}

// ascensionTotal is the Golden Ascension rescale strength, zero when
// the top-tier skill is untaken.
func ascensionTotal(st *state.GameState, cat *catalog.Catalog) float64 {
	total := 0.0
	for _, skill := range cat.GoldSkills {
		if skill.Effect != catalog.SkillAscension {
			continue
		}
		total += skill.PerLevel * float64(st.GoldSkills[skill.ID])
	}
	return total
}

// rescale applies the ascension meta-rule to an already summed gold
// skill bonus: 1+(b-1)×(1+asc). Applied exactly once per category.
func rescale(bonus, asc float64) float64 {
	if asc <= 0 {
		return bonus
	}
	return 1 + (bonus-1)*(1+asc)
}

func prestigeBonus(st *state.GameState, cat *catalog.Catalog, kind catalog.PrestigeBonusType) float64 {
	for e := 0; e < catalog.ElementCount; e++ {
		track := cat.PrestigeTracks[e]
		if track.BonusType != kind {
			continue
		}
		level := st.ElementalPrestige[e]
		if level <= 0 {
			return 1
		}
		return 1 + float64(level)*track.BonusPerLevel/100
	}
	return 1
}

// prestigeDiscount multiplies the complement: each dark prestige level
// shaves its percentage off upgrade prices.
func prestigeDiscount(st *state.GameState, cat *catalog.Catalog) float64 {
	factor := 1.0
	for e := 0; e < catalog.ElementCount; e++ {
		track := cat.PrestigeTracks[e]
		if track.BonusType != catalog.PrestigeDiscount {
			continue
		}
		level := st.ElementalPrestige[e]
		if level > 0 {
			factor *= 1 - float64(level)*track.BonusPerLevel/100
		}
	}
	// Prices never go fully free no matter how deep the dark path runs.
	if factor < 0.05 {
		factor = 0.05
	}
	return factor
}
