package balance

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML balance file and patches gaps with defaults.
func Load(path string) (Balance, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, err
	}
	var cfg Balance
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Balance{}, err
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// FromEnv loads balance configuration from environment variables. A
// DIFFICULTY preset picks the baseline; per-knob variables then patch
// it, so overrides win over the preset.
func FromEnv() Balance {
	cfg := Default()
	switch os.Getenv("DIFFICULTY") {
	case "casual":
		cfg = Casual()
	case "hard":
		cfg = Hard()
	}

	if v := getEnvFloat("REBIRTH_THRESHOLD"); v > 0 {
		cfg.RebirthThreshold = v
	}
	if v := getEnvInt("TICK_MILLIS"); v > 0 {
		cfg.TickMillis = v
	}
	if v := getEnvInt("MAX_OFFLINE_SECONDS"); v > 0 {
		cfg.MaxOfflineSeconds = int64(v)
	}
	if v := getEnvFloat("OFFLINE_EFFICIENCY"); v > 0 && v <= 1 {
		cfg.OfflineEfficiency = v
	}
	if v := getEnvInt("RUNE_PACK_GEM_COST"); v > 0 {
		cfg.RunePackGemCost = int64(v)
	}
	if v := getEnvInt("TRADER_REFRESH_SECONDS"); v > 0 {
		cfg.TraderRefreshSeconds = int64(v)
	}

	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
