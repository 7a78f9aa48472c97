package balance

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	var b Balance
	b.ApplyDefaults()
	if b != Default() {
		t.Fatalf("zero balance should default completely, got %+v", b)
	}

	b = Balance{RebirthThreshold: 2000, OfflineEfficiency: 1.5}
	b.ApplyDefaults()
	if b.RebirthThreshold != 2000 {
		t.Fatal("explicit value overwritten")
	}
	if b.OfflineEfficiency != 0.5 {
		t.Fatalf("out-of-range efficiency not defaulted: %v", b.OfflineEfficiency)
	}
	if b.TickMillis != 1000 {
		t.Fatalf("gap not filled: tick=%d", b.TickMillis)
	}
}

func TestLoad(t *testing.T) {
	t.Run("partial file keeps defaults for the rest", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "balance.yml")
		content := "rebirth_threshold: 250\nrune_pack_gem_cost: 3\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.RebirthThreshold != 250 || cfg.RunePackGemCost != 3 {
			t.Fatalf("file values lost: %+v", cfg)
		}
		if cfg.MaxOfflineSeconds != 21600 || cfg.OfflineEfficiency != 0.5 {
			t.Fatalf("defaults not applied: %+v", cfg)
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestFromEnvPresets(t *testing.T) {
	t.Setenv("DIFFICULTY", "casual")
	if got := FromEnv(); got != Casual() {
		t.Fatalf("casual preset not applied: %+v", got)
	}

	t.Setenv("DIFFICULTY", "hard")
	if got := FromEnv(); got != Hard() {
		t.Fatalf("hard preset not applied: %+v", got)
	}
}

func TestFromEnvOverridesBeatPreset(t *testing.T) {
	t.Setenv("DIFFICULTY", "hard")
	t.Setenv("REBIRTH_THRESHOLD", "4242")

	cfg := FromEnv()
	if cfg.RebirthThreshold != 4242 {
		t.Fatalf("override lost under preset: %v", cfg.RebirthThreshold)
	}
	if cfg.RunePackGemCost != Hard().RunePackGemCost {
		t.Fatalf("preset baseline lost: %+v", cfg)
	}
	if cfg.MaxOfflineSeconds != Hard().MaxOfflineSeconds {
		t.Fatalf("preset baseline lost: %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DIFFICULTY", "")
	t.Setenv("REBIRTH_THRESHOLD", "4242")
	t.Setenv("TICK_MILLIS", "250")

	cfg := FromEnv()
	if cfg.RebirthThreshold != 4242 {
		t.Fatalf("threshold override lost: %v", cfg.RebirthThreshold)
	}
	if cfg.TickMillis != 250 {
		t.Fatalf("tick override lost: %d", cfg.TickMillis)
	}
	if cfg.RunePackGemCost != 10 {
		t.Fatalf("unset knob should default: %d", cfg.RunePackGemCost)
	}
}
