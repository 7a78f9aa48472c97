// Package save is the persistence collaborator: a load/save contract
// over whole GameState snapshots. The engine treats saving as
// best-effort write-through; a failing store never corrupts the
// in-memory state.
package save

import "runeclicker/internal/state"

// Repository persists whole snapshots. Load reports found=false when
// no usable snapshot exists (missing or unreadable file) so the caller
// can fall back to a default state.
type Repository interface {
	Load() (st *state.GameState, found bool, err error)
	Save(st *state.GameState) error
	Clear() error
}
