package save

import (
	"sync"

	"runeclicker/internal/state"
)

// MemoryRepo keeps the snapshot in memory. Used by tests and as a
// null store.
type MemoryRepo struct {
	mu sync.Mutex
	st *state.GameState
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Load() (*state.GameState, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.st == nil {
		return nil, false, nil
	}
	return r.st.Clone(), true, nil
}

func (r *MemoryRepo) Save(st *state.GameState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st = st.Clone()
	return nil
}

func (r *MemoryRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st = nil
	return nil
}
