package bonus

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"runeclicker/internal/catalog"
	"runeclicker/internal/state"
)

var testNow = time.Unix(1_700_000_000, 0)

func freshState(t *testing.T, cat *catalog.Catalog) *state.GameState {
	t.Helper()
	st := state.Default(cat, testNow)
	st.Normalize(cat, testNow)
	return st
}

func TestComputeFreshStateIsNeutral(t *testing.T) {
	cat := catalog.Default()
	st := freshState(t, cat)

	totals := Compute(st, cat, testNow)

	assert.Equal(t, 1.0, totals.MoneyMultiplier)
	assert.Equal(t, 1.0, totals.TickMultiplier)
	assert.Equal(t, 1.0, totals.RPMultiplier)
	assert.Equal(t, 0.0, totals.RuneRPBonus)
	assert.Equal(t, 1.0, totals.SpeedFactor)
	assert.Equal(t, 1.0, totals.UpgradeDiscount)
	assert.Equal(t, 0.0, totals.PackExtraChance)
	assert.Equal(t, 0, totals.AutoClickRate)
	assert.Equal(t, 0.005, totals.GemChance)
}

func TestGemChance(t *testing.T) {
	cat := catalog.Default()

	t.Run("refinery unlock raises the base", func(t *testing.T) {
		st := freshState(t, cat)
		st.Upgrade("unlock_gems").Amount = 1
		totals := Compute(st, cat, testNow)
		assert.Equal(t, 0.05, totals.GemChance)
	})

	t.Run("runes and achievements add, gem skill scales", func(t *testing.T) {
		st := freshState(t, cat)
		st.Runes[5] = 2 // mythic: 0.01 each
		st.Achievements["ach_gems"] = 3
		st.GoldSkills["gs_polish"] = 2 // 1 + 2×0.25 = 1.5

		totals := Compute(st, cat, testNow)
		want := (0.005 + 0.02 + 3*0.001) * 1.5
		assert.InDelta(t, want, totals.GemChance, 1e-12)
	})

	t.Run("caps at one", func(t *testing.T) {
		st := freshState(t, cat)
		st.Runes[5] = 10_000
		totals := Compute(st, cat, testNow)
		assert.Equal(t, 1.0, totals.GemChance)
	})

	t.Run("gem rush doubles the composed chance", func(t *testing.T) {
		st := freshState(t, cat)
		st.ActiveEvent = "ev_gemrush"
		st.EventEndsAt = testNow.Unix() + 60
		totals := Compute(st, cat, testNow)
		assert.Equal(t, 0.01, totals.GemChance)
	})
}

func TestMoneyMultiplierComposition(t *testing.T) {
	cat := catalog.Default()
	st := freshState(t, cat)

	st.Achievements["ach_clicks"] = 2 // +2%
	st.Runes[0] = 10                  // common: +0.01 each
	st.GoldSkills["gs_touch"] = 3     // 1 + 0.30

	totals := Compute(st, cat, testNow)
	want := 1.02 * 1.1 * 1.3
	assert.InDelta(t, want, totals.MoneyMultiplier, 1e-12)
}

func TestAscensionRescalesOncePerCategory(t *testing.T) {
	cat := catalog.Default()
	st := freshState(t, cat)
	st.GoldSkills["gs_touch"] = 4     // summed: 1.4
	st.GoldSkills["gs_ascension"] = 1 // asc 0.5

	totals := Compute(st, cat, testNow)
	// 1 + (1.4-1)×1.5 = 1.6, applied after summing, not per node.
	assert.InDelta(t, 1.6, totals.MoneyMultiplier, 1e-12)
}

func TestEventEffects(t *testing.T) {
	cat := catalog.Default()

	activate := func(st *state.GameState, id string) {
		st.ActiveEvent = id
		st.EventEndsAt = testNow.Unix() + 60
	}

	t.Run("click frenzy multiplies money", func(t *testing.T) {
		st := freshState(t, cat)
		activate(st, "ev_frenzy")
		assert.Equal(t, 3.0, Compute(st, cat, testNow).MoneyMultiplier)
	})

	t.Run("time warp raises speed", func(t *testing.T) {
		st := freshState(t, cat)
		activate(st, "ev_timewarp")
		assert.Equal(t, 2.0, Compute(st, cat, testNow).SpeedFactor)
	})

	t.Run("point storm multiplies rp", func(t *testing.T) {
		st := freshState(t, cat)
		activate(st, "ev_storm")
		assert.Equal(t, 2.0, Compute(st, cat, testNow).RPMultiplier)
	})

	t.Run("lucky winds raise pack luck", func(t *testing.T) {
		st := freshState(t, cat)
		activate(st, "ev_luck")
		assert.InDelta(t, 0.5, Compute(st, cat, testNow).PackExtraChance, 1e-12)
	})

	t.Run("expired events contribute nothing", func(t *testing.T) {
		st := freshState(t, cat)
		st.ActiveEvent = "ev_frenzy"
		st.EventEndsAt = testNow.Unix() - 1
		assert.Equal(t, 1.0, Compute(st, cat, testNow).MoneyMultiplier)
	})
}

func TestPrestigeBonuses(t *testing.T) {
	cat := catalog.Default()

	t.Run("earth levels feed tick income only", func(t *testing.T) {
		st := freshState(t, cat)
		st.ElementalPrestige[catalog.Earth] = 2 // +10%/level
		totals := Compute(st, cat, testNow)
		assert.Equal(t, 1.0, totals.MoneyMultiplier)
		assert.InDelta(t, 1.2, totals.TickMultiplier, 1e-12)
	})

	t.Run("dark levels discount upgrades with a floor", func(t *testing.T) {
		st := freshState(t, cat)
		st.ElementalPrestige[catalog.Dark] = 10 // 2%/level → ×0.8
		assert.InDelta(t, 0.8, Compute(st, cat, testNow).UpgradeDiscount, 1e-12)

		st.ElementalPrestige[catalog.Dark] = 60 // would go negative
		assert.Equal(t, 0.05, Compute(st, cat, testNow).UpgradeDiscount)
	})
}

func TestRuneRPBonusIsAdditive(t *testing.T) {
	cat := catalog.Default()
	st := freshState(t, cat)
	st.Runes[3] = 2 // epic: 0.01
	st.Runes[6] = 1 // secret: 0.50

	totals := Compute(st, cat, testNow)
	assert.InDelta(t, 0.52, totals.RuneRPBonus, 1e-12)
}

func TestRPUpgradeMultiplierFeedsMoney(t *testing.T) {
	cat := catalog.Default()
	st := freshState(t, cat)
	st.RebirthPoints = 100
	st.RebirthUpgrade("rb_rpmult").Amount = 1

	totals := Compute(st, cat, testNow)
	want := 1 + math.Log(101)*0.05
	assert.InDelta(t, want, totals.MoneyMultiplier, 1e-12)
}
