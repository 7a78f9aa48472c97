package engine

import (
	"errors"

	"runeclicker/internal/bonus"
	"runeclicker/internal/leaderboard"
)

// ErrDevMode blocks leaderboard submission while the sandboxed stats
// tree is active.
var ErrDevMode = errors.New("engine: dev mode state is not submittable")

// BuildSnapshot derives a leaderboard snapshot from the authentic
// lifetime stats. The click value is the fully bonused money per
// manual click at this instant.
func (e *Engine) BuildSnapshot(userID string) (leaderboard.Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st.DevMode {
		return leaderboard.Snapshot{}, ErrDevMode
	}

	now := e.clock.Now()
	totals := bonus.Compute(e.st, e.cat, now)

	tiers := 0
	for _, t := range e.st.Achievements {
		tiers += t
	}

	return leaderboard.Snapshot{
		UserID:             userID,
		AllTimeMoneyEarned: e.st.Stats.MoneyEarned,
		TotalTiers:         tiers,
		MoneyPerClick:      e.st.MoneyPerClick * totals.MoneyMultiplier,
		OnlineSeconds:      e.st.Stats.OnlineSeconds,
		SubmittedAt:        now.Unix(),
	}, nil
}
