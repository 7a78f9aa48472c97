package leaderboard

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo keeps snapshots in process memory. Used by tests and by
// single-node deployments that skip Postgres.
type MemoryRepo struct {
	mu    sync.RWMutex
	snaps map[string]Snapshot
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{snaps: make(map[string]Snapshot)}
}

func (r *MemoryRepo) Submit(_ context.Context, snap Snapshot) error {
	if snap.UserID == "" {
		return ErrMissingUser
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps[snap.UserID] = snap
	return nil
}

func (r *MemoryRepo) TopEntries(_ context.Context, cat Category, limit int) ([]Entry, error) {
	if !cat.Valid() {
		return nil, ErrUnknownCategory
	}
	r.mu.RLock()
	ranked := r.rankedLocked(cat)
	r.mu.RUnlock()

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	out := make([]Entry, len(ranked))
	for i, s := range ranked {
		out[i] = Entry{Rank: i + 1, Snapshot: s}
	}
	return out, nil
}

func (r *MemoryRepo) RankOf(_ context.Context, cat Category, userID string) (int, bool, error) {
	if !cat.Valid() {
		return 0, false, ErrUnknownCategory
	}
	r.mu.RLock()
	ranked := r.rankedLocked(cat)
	r.mu.RUnlock()

	for i, s := range ranked {
		if s.UserID == userID {
			return i + 1, true, nil
		}
	}
	return 0, false, nil
}

// rankedLocked returns snapshots best-first, ties broken by user id so
// ordering stays stable across calls.
func (r *MemoryRepo) rankedLocked(cat Category) []Snapshot {
	out := make([]Snapshot, 0, len(r.snaps))
	for _, s := range r.snaps {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		vi, vj := sortValue(cat, out[i]), sortValue(cat, out[j])
		if vi != vj {
			return vi > vj
		}
		return out[i].UserID < out[j].UserID
	})
	return out
}
