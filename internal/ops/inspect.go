package ops

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"runeclicker/internal/state"
)

// SaveSummary is the operator-facing digest of a save file.
type SaveSummary struct {
	Money         float64 `json:"money"`
	RebirthPoints float64 `json:"rebirth_points"`
	Gems          int64   `json:"gems"`
	GoldRP        int64   `json:"gold_rp"`
	ClicksTotal   int64   `json:"clicks_total"`
	Rebirths      int64   `json:"rebirths"`
	OnlineSeconds int64   `json:"online_seconds"`
	LastSaveAt    int64   `json:"last_save_at"`
	DevMode       bool    `json:"dev_mode"`
}

// InspectSave reads a data directory's save file and summarizes it
// without normalizing or mutating anything.
func InspectSave(dataDir string) (SaveSummary, error) {
	path := filepath.Join(dataDir, SaveFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return SaveSummary{}, fmt.Errorf("read save: %w", err)
	}

	var st state.GameState
	if err := json.Unmarshal(b, &st); err != nil {
		return SaveSummary{}, fmt.Errorf("decode save: %w", err)
	}

	return SaveSummary{
		Money:         st.Money,
		RebirthPoints: st.RebirthPoints,
		Gems:          st.Gems,
		GoldRP:        st.GoldRP,
		ClicksTotal:   st.ClicksTotal,
		Rebirths:      st.Stats.Rebirths,
		OnlineSeconds: st.Stats.OnlineSeconds,
		LastSaveAt:    st.LastSaveAt,
		DevMode:       st.DevMode,
	}, nil
}
