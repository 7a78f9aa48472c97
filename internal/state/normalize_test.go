package state

import (
	"math"
	"testing"
	"time"

	"runeclicker/internal/catalog"
	"runeclicker/internal/econ"
)

func TestNormalize(t *testing.T) {
	cat := catalog.Default()
	now := time.Unix(1_700_000_000, 0)

	t.Run("empty state becomes fully populated", func(t *testing.T) {
		var st GameState
		st.Normalize(cat, now)

		if st.Achievements == nil || st.GoldSkills == nil {
			t.Fatal("maps not initialized")
		}
		if len(st.Upgrades) != len(cat.Upgrades) {
			t.Fatalf("got %d upgrades, want %d", len(st.Upgrades), len(cat.Upgrades))
		}
		if len(st.RebirthUpgrades) != len(cat.RebirthUpgrades) {
			t.Fatalf("got %d rebirth upgrades, want %d", len(st.RebirthUpgrades), len(cat.RebirthUpgrades))
		}
		if st.MoneyPerClick != 1 {
			t.Fatalf("money per click = %v, want 1", st.MoneyPerClick)
		}
		if st.NextEventAt == 0 || st.LastRebirthAt == 0 || st.LastSaveAt == 0 {
			t.Fatal("timers not defaulted")
		}
	})

	t.Run("garbled price is rebuilt from owned count", func(t *testing.T) {
		st := Default(cat, now)
		u := st.Upgrade("cursor")
		u.Amount = 3
		u.Price = math.NaN()
		st.Normalize(cat, now)

		want := econ.ScalePrice(10, 3, 2.0)
		if got := st.Upgrade("cursor").Price; got != want {
			t.Fatalf("rebuilt price = %v, want %v", got, want)
		}
	})

	t.Run("unknown upgrade ids are dropped, missing ones added", func(t *testing.T) {
		st := Default(cat, now)
		st.Upgrades = []UpgradeState{{ID: "no_such_upgrade", Amount: 5}}
		st.Normalize(cat, now)

		if st.Upgrade("no_such_upgrade") != nil {
			t.Fatal("unknown id survived")
		}
		if st.Upgrade("cursor") == nil {
			t.Fatal("catalog upgrade missing after normalize")
		}
	})

	t.Run("negatives and NaN clamp, overflow survives", func(t *testing.T) {
		st := Default(cat, now)
		st.Money = math.NaN()
		st.RebirthPoints = -4
		st.Gems = -1
		st.ElementalResources[catalog.Fire] = -100
		st.Normalize(cat, now)

		if st.Money != 0 || st.RebirthPoints != 0 || st.Gems != 0 {
			t.Fatalf("clamp failed: money=%v rp=%v gems=%d", st.Money, st.RebirthPoints, st.Gems)
		}
		if st.ElementalResources[catalog.Fire] != 0 {
			t.Fatal("elemental resource not clamped")
		}

		st.Money = math.Inf(1)
		st.Normalize(cat, now)
		if !math.IsInf(st.Money, 1) {
			t.Fatal("overflowed money must survive normalize")
		}
	})

	t.Run("holding a rune implies element unlock and gem reveal", func(t *testing.T) {
		st := Default(cat, now)
		st.ElementalRunes[catalog.Water] = 2
		st.Gems = 1
		st.Normalize(cat, now)

		if !st.ElementUnlocked[catalog.Water] {
			t.Fatal("water not unlocked")
		}
		if st.ElementUnlocked[catalog.Fire] {
			t.Fatal("fire should stay locked")
		}
		if !st.GemEverHeld {
			t.Fatal("gem reveal flag not derived")
		}
	})

	t.Run("unknown active event and trader offers are dropped", func(t *testing.T) {
		st := Default(cat, now)
		st.ActiveEvent = "ev_bogus"
		st.EventEndsAt = now.Unix() + 100
		st.TraderOffers = []string{"tr_air_gems", "tr_bogus"}
		st.Normalize(cat, now)

		if st.ActiveEvent != "" || st.EventEndsAt != 0 {
			t.Fatal("bogus event survived")
		}
		if len(st.TraderOffers) != 1 || st.TraderOffers[0] != "tr_air_gems" {
			t.Fatalf("trader offers = %v", st.TraderOffers)
		}
	})
}

func TestCloneIsDeep(t *testing.T) {
	cat := catalog.Default()
	st := Default(cat, time.Unix(1_700_000_000, 0))
	st.Achievements["ach_clicks"] = 2
	st.GoldSkills["gs_touch"] = 1
	st.TraderOffers = []string{"tr_air_gems"}

	cp := st.Clone()
	cp.Upgrades[0].Amount = 99
	cp.Achievements["ach_clicks"] = 5
	cp.GoldSkills["gs_touch"] = 3
	cp.TraderOffers[0] = "tr_fire_rune"

	if st.Upgrades[0].Amount == 99 {
		t.Fatal("upgrade slice shared")
	}
	if st.Achievements["ach_clicks"] != 2 {
		t.Fatal("achievements map shared")
	}
	if st.GoldSkills["gs_touch"] != 1 {
		t.Fatal("gold skills map shared")
	}
	if st.TraderOffers[0] != "tr_air_gems" {
		t.Fatal("trader offers shared")
	}
}

func TestHasFeatureAndGemTier(t *testing.T) {
	cat := catalog.Default()
	st := Default(cat, time.Unix(1_700_000_000, 0))

	if st.HasFeature(cat, catalog.FeatureGemRefinery) {
		t.Fatal("fresh state should not have the refinery")
	}
	if st.GemUnlockTier(cat) != 0 {
		t.Fatal("fresh state should be tier 0")
	}

	st.Upgrade("unlock_gems").Amount = 1
	if !st.HasFeature(cat, catalog.FeatureGemRefinery) {
		t.Fatal("refinery not detected")
	}
	if st.GemUnlockTier(cat) != 1 {
		t.Fatal("tier should be 1 with the refinery")
	}
}

func TestCurrentStatsSelectsTree(t *testing.T) {
	cat := catalog.Default()
	st := Default(cat, time.Unix(1_700_000_000, 0))

	st.CurrentStats().Clicks = 7
	if st.Stats.Clicks != 7 || st.DevStats.Clicks != 0 {
		t.Fatal("authentic tree not selected by default")
	}

	st.DevMode = true
	st.CurrentStats().Clicks = 100
	if st.DevStats.Clicks != 100 || st.Stats.Clicks != 7 {
		t.Fatal("dev tree not selected in dev mode")
	}
}
