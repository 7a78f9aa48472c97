package engine

import (
	"math"

	"runeclicker/internal/bonus"
)

// OfflineResult reports what the reconciler granted for time away.
type OfflineResult struct {
	ElapsedSeconds   int64   `json:"elapsed_seconds"`
	CreditedSeconds  int64   `json:"credited_seconds"`
	MoneyGained      float64 `json:"money_gained"`
	AutoClicksGained int64   `json:"auto_clicks_gained"`
}

// ReconcileOffline credits passive production for the gap between the
// last save and now. Credited time is capped, paid at reduced
// efficiency, and only passive sources count: no gem rolls, no events,
// no elemental production. Short gaps under one tick grant nothing.
func (e *Engine) ReconcileOffline() OfflineResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	st := e.st.Clone()

	elapsed := now.Unix() - st.LastSaveAt
	if st.LastSaveAt == 0 || elapsed < int64(e.bal.TickMillis)/1000 {
		return OfflineResult{ElapsedSeconds: max(elapsed, 0)}
	}

	credited := elapsed
	if credited > e.bal.MaxOfflineSeconds {
		credited = e.bal.MaxOfflineSeconds
	}

	totals := bonus.Compute(st, e.cat, now)
	res := OfflineResult{ElapsedSeconds: elapsed, CreditedSeconds: credited}

	if st.MoneyPerTick > 0 {
		gained := st.MoneyPerTick * totals.TickMultiplier * float64(credited) * e.bal.OfflineEfficiency
		st.Money += gained
		st.CurrentStats().MoneyEarned += gained
		res.MoneyGained = gained
	}

	if totals.AutoClickRate > 0 {
		clicks := int64(math.Floor(float64(totals.AutoClickRate) * float64(credited) * e.bal.OfflineEfficiency))
		st.ClicksTotal += clicks
		st.ClicksInRebirth += clicks
		st.CurrentStats().Clicks += clicks
		res.AutoClicksGained = clicks
	}

	e.updateAchievements(st)
	e.commit(st, now)
	return res
}
