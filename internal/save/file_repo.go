package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"runeclicker/internal/state"
)

// FileRepo stores the snapshot as a single JSON file under a data
// directory.
type FileRepo struct {
	mu   sync.Mutex
	path string
}

func NewFileRepo(dataDir string) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &FileRepo{path: filepath.Join(dataDir, "save.json")}, nil
}

// Load reads the snapshot. A missing or unparseable file is not an
// error: the game must remain playable from a garbled save, so both
// degrade to found=false.
func (r *FileRepo) Load() (*state.GameState, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var st state.GameState
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, false, nil
	}
	return &st, true, nil
}

func (r *FileRepo) Save(st *state.GameState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
