// Package engine owns the game state and implements every state
// transition: clicks, ticks, purchases, rebirths, prestige, reward
// rolls and offline catch-up. All mutation is serialized; each op
// works on a clone and commits a complete replacement snapshot.
package engine

import (
	"log"
	"sync"
	"time"

	"runeclicker/internal/balance"
	"runeclicker/internal/bonus"
	"runeclicker/internal/catalog"
	"runeclicker/internal/roll"
	"runeclicker/internal/save"
	"runeclicker/internal/state"
)

// Options configures a new Engine.
type Options struct {
	Saves   save.Repository
	Catalog *catalog.Catalog
	Balance balance.Balance
	Clock   Clock
	Rolls   *roll.Roller
	Logger  *log.Logger
	// OnCommit, if set, receives a clone of every committed snapshot.
	OnCommit func(*state.GameState)
}

// Engine is the authoritative progression engine.
type Engine struct {
	mu       sync.Mutex
	st       *state.GameState
	saves    save.Repository
	cat      *catalog.Catalog
	bal      balance.Balance
	clock    Clock
	rolls    *roll.Roller
	logger   *log.Logger
	onCommit func(*state.GameState)

	// lastTick marks how far online time has been accounted for.
	lastTick time.Time
}

// New loads the persisted snapshot (or default-initializes) and
// normalizes it against the catalog.
func New(opts Options) (*Engine, error) {
	if opts.Saves == nil {
		opts.Saves = save.NewMemoryRepo()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Rolls == nil {
		opts.Rolls = roll.New(nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	opts.Balance.ApplyDefaults()

	now := opts.Clock.Now()
	st, found, err := opts.Saves.Load()
	if err != nil {
		return nil, err
	}
	if !found {
		st = state.Default(opts.Catalog, now)
	}
	st.Normalize(opts.Catalog, now)

	return &Engine{
		st:       st,
		saves:    opts.Saves,
		cat:      opts.Catalog,
		bal:      opts.Balance,
		clock:    opts.Clock,
		rolls:    opts.Rolls,
		logger:   opts.Logger,
		onCommit: opts.OnCommit,
		lastTick: now,
	}, nil
}

// State returns a snapshot clone for readers.
func (e *Engine) State() *state.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.st.Clone()
}

// Totals computes the current composed bonuses without mutating state.
func (e *Engine) Totals() bonus.Totals {
	e.mu.Lock()
	defer e.mu.Unlock()
	return bonus.Compute(e.st, e.cat, e.clock.Now())
}

// Catalog exposes the static definitions for presentation layers.
func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// Balance exposes the active tuning values.
func (e *Engine) Balance() balance.Balance { return e.bal }

// TickInterval is the current tick period: the configured base,
// shortened by auto-speed prestige and an active time warp.
func (e *Engine) TickInterval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	totals := bonus.Compute(e.st, e.cat, e.clock.Now())
	base := time.Duration(e.bal.TickMillis) * time.Millisecond
	if totals.SpeedFactor <= 1 {
		return base
	}
	return time.Duration(float64(base) / totals.SpeedFactor)
}

// commit installs the replacement snapshot and write-through saves it.
// A failing save is logged and otherwise ignored: persistence is
// best-effort and must not corrupt the in-memory state.
func (e *Engine) commit(next *state.GameState, now time.Time) {
	next.LastSaveAt = now.Unix()
	e.st = next
	if err := e.saves.Save(next); err != nil {
		e.logger.Printf("save failed: %v", err)
	}
	if e.onCommit != nil {
		e.onCommit(next.Clone())
	}
}

// updateAchievements advances achievement tiers from the authentic
// lifetime stats. Dev-mode numbers never feed this.
func (e *Engine) updateAchievements(st *state.GameState) {
	for _, def := range e.cat.Achievements {
		value := achievementStat(st, def.Requirement)
		tier := st.Achievements[def.ID]
		for tier < def.MaxTier && value >= def.RequirementForTier(tier+1) {
			tier++
		}
		if tier > st.Achievements[def.ID] {
			st.Achievements[def.ID] = tier
		}
	}
}

func achievementStat(st *state.GameState, req catalog.AchievementRequirement) float64 {
	switch req {
	case catalog.ReqClicks:
		return float64(st.Stats.Clicks)
	case catalog.ReqMoneyEarned:
		return st.Stats.MoneyEarned
	case catalog.ReqRebirths:
		return float64(st.Stats.Rebirths)
	case catalog.ReqGemsFound:
		return float64(st.Stats.GemsFound)
	case catalog.ReqPacksOpened:
		return float64(st.Stats.PacksOpened)
	default:
		return 0
	}
}

// grantGems adds gems and flips the one-way reveal flag.
func grantGems(st *state.GameState, n int64) {
	st.Gems += n
	if st.Gems > 0 {
		st.GemEverHeld = true
	}
}

// grantRune adds basic runes of a tier.
func grantRune(st *state.GameState, tier int, n int64) {
	if tier < 0 || tier >= catalog.RuneTierCount {
		return
	}
	st.Runes[tier] += n
}

// SetDevMode toggles whether mutations land in the dev stats tree.
func (e *Engine) SetDevMode(on bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()
	next := e.st.Clone()
	next.DevMode = on
	e.commit(next, now)
}
