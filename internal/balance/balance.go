// Package balance holds gameplay tuning knobs. Catalog entries define
// what exists; balance defines how fast the numbers move.
package balance

// Balance holds gameplay balance configuration.
type Balance struct {
	// Rebirth
	RebirthThreshold float64 `yaml:"rebirth_threshold" json:"rebirth_threshold"`
	RebirthDivisor   float64 `yaml:"rebirth_divisor" json:"rebirth_divisor"`

	// Tick
	TickMillis int `yaml:"tick_millis" json:"tick_millis"`

	// Offline catch-up
	MaxOfflineSeconds int64   `yaml:"max_offline_seconds" json:"max_offline_seconds"`
	OfflineEfficiency float64 `yaml:"offline_efficiency" json:"offline_efficiency"`

	// Rune packs
	RunePackGemCost int64 `yaml:"rune_pack_gem_cost" json:"rune_pack_gem_cost"`

	// Trader
	TraderRefreshSeconds int64 `yaml:"trader_refresh_seconds" json:"trader_refresh_seconds"`
}

// Default returns the default balance configuration.
func Default() Balance {
	return Balance{
		RebirthThreshold:     1000,
		RebirthDivisor:       1000,
		TickMillis:           1000,
		MaxOfflineSeconds:    21600,
		OfflineEfficiency:    0.5,
		RunePackGemCost:      10,
		TraderRefreshSeconds: 3600,
	}
}

// Casual returns an easier preset.
func Casual() Balance {
	cfg := Default()
	cfg.RebirthThreshold = 500
	cfg.RunePackGemCost = 5
	cfg.OfflineEfficiency = 0.75
	return cfg
}

// Hard returns a harder preset for experienced players.
func Hard() Balance {
	cfg := Default()
	cfg.RebirthThreshold = 2500
	cfg.RunePackGemCost = 15
	cfg.MaxOfflineSeconds = 10800
	return cfg
}

// ApplyDefaults patches zero values so a partial config file still
// yields a playable game.
func (b *Balance) ApplyDefaults() {
	def := Default()
	if b.RebirthThreshold <= 0 {
		b.RebirthThreshold = def.RebirthThreshold
	}
	if b.RebirthDivisor <= 0 {
		b.RebirthDivisor = def.RebirthDivisor
	}
	if b.TickMillis <= 0 {
		b.TickMillis = def.TickMillis
	}
	if b.MaxOfflineSeconds <= 0 {
		b.MaxOfflineSeconds = def.MaxOfflineSeconds
	}
	if b.OfflineEfficiency <= 0 || b.OfflineEfficiency > 1 {
		b.OfflineEfficiency = def.OfflineEfficiency
	}
	if b.RunePackGemCost <= 0 {
		b.RunePackGemCost = def.RunePackGemCost
	}
	if b.TraderRefreshSeconds <= 0 {
		b.TraderRefreshSeconds = def.TraderRefreshSeconds
	}
}
