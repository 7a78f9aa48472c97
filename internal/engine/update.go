package engine

import (
	"time"

	"runeclicker/internal/bonus"
	"runeclicker/internal/catalog"
)

// ClickResult reports one manual click.
type ClickResult struct {
	MoneyGained float64 `json:"money_gained"`
	GemFound    bool    `json:"gem_found"`
	Money       float64 `json:"money"`
	Gems        int64   `json:"gems"`
	ClicksTotal int64   `json:"clicks_total"`
}

// Click handles one manual click: counters advance first so the click
// multiplier anticipates the click being counted, then money and the
// single independent gem roll follow.
func (e *Engine) Click() ClickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	st := e.st.Clone()

	st.ClicksTotal++
	st.ClicksInRebirth++
	stats := st.CurrentStats()
	stats.Clicks++

	totals := bonus.Compute(st, e.cat, now)
	gained := st.MoneyPerClick * totals.MoneyMultiplier
	st.Money += gained
	stats.MoneyEarned += gained

	found := e.rolls.GemRoll(totals.GemChance)
	if found {
		grantGems(st, 1)
		stats.GemsFound++
	}

	e.updateAchievements(st)
	e.commit(st, now)

	return ClickResult{
		MoneyGained: gained,
		GemFound:    found,
		Money:       st.Money,
		Gems:        st.Gems,
		ClicksTotal: st.ClicksTotal,
	}
}

// TickResult reports one passive tick.
type TickResult struct {
	MoneyGained     float64 `json:"money_gained"`
	AutoClicks      int     `json:"auto_clicks"`
	EventStarted    string  `json:"event_started,omitempty"`
	EventEnded      string  `json:"event_ended,omitempty"`
	TraderRefreshed bool    `json:"trader_refreshed"`
	Money           float64 `json:"money"`
}

// Tick runs one fixed-period update: passive income, auto-clicker
// counter growth (auto-clicks never grant money), elemental rune
// production, event lifecycle and trader refresh deadlines.
func (e *Engine) Tick() TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	st := e.st.Clone()
	stats := st.CurrentStats()
	res := TickResult{}

	// Event lifecycle first so an expired event stops affecting this
	// very tick.
	if st.ActiveEvent != "" && now.Unix() >= st.EventEndsAt {
		res.EventEnded = st.ActiveEvent
		st.ActiveEvent = ""
		st.EventEndsAt = 0
		st.NextEventAt = now.Unix() + catalog.EventIntervalSeconds
	}
	if st.ActiveEvent == "" && now.Unix() >= st.NextEventAt {
		if started := e.startEvent(st, now.Unix()); started != "" {
			res.EventStarted = started
			stats.EventsSeen++
		}
	}

	totals := bonus.Compute(st, e.cat, now)

	if st.MoneyPerTick > 0 {
		gained := st.MoneyPerTick * totals.TickMultiplier
		st.Money += gained
		stats.MoneyEarned += gained
		res.MoneyGained = gained
	}

	if totals.AutoClickRate > 0 {
		n := int64(totals.AutoClickRate)
		st.ClicksTotal += n
		st.ClicksInRebirth += n
		stats.Clicks += n
		res.AutoClicks = totals.AutoClickRate
	}

	if st.HasFeature(e.cat, catalog.FeatureElements) {
		for i := 0; i < catalog.ElementCount; i++ {
			if st.ElementalRunes[i] <= 0 {
				continue
			}
			produced := float64(st.ElementalRunes[i]) * e.cat.ElementalRunes[i].ProductionPerTick * totals.ElementalGain
			st.ElementalResources[i] += produced
		}
	}

	if len(st.TraderOffers) == 0 || now.Unix() >= st.TraderRefreshAt {
		e.refreshTraderLocked(st, now.Unix())
		res.TraderRefreshed = true
	}

	// Online time accrues from elapsed wall time, not per tick, since
	// the tick period shrinks under a time warp. Unconsumed fractions
	// stay in lastTick and roll into the next tick.
	if secs := now.Sub(e.lastTick) / time.Second; secs > 0 {
		stats.OnlineSeconds += int64(secs)
		e.lastTick = e.lastTick.Add(secs * time.Second)
	}

	e.updateAchievements(st)
	e.commit(st, now)

	res.Money = st.Money
	return res
}
