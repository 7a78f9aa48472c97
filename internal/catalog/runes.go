package catalog

// RuneTierCount covers the six droppable rarities plus the craft-only
// Secret tier at the last index.
const (
	RuneTierCount   = 7
	SecretTierIndex = 6
)

// RuneTier describes one basic rune rarity. DropRate is expressed out
// of 1000; rates across the table need not sum to 1000, so a pack roll
// landing past the cumulative mass grants nothing.
type RuneTier struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	DropRate   int     `json:"drop_rate"`
	MoneyBonus float64 `json:"money_bonus"` // additive per rune owned
	GemBonus   float64 `json:"gem_bonus"`   // additive gem chance per rune owned
	RPBonus    float64 `json:"rp_bonus"`    // additive rebirth point bonus per rune owned
}

var defaultRuneTiers = [RuneTierCount]RuneTier{
	{ID: "common", Name: "Common", DropRate: 500, MoneyBonus: 0.01},
	{ID: "uncommon", Name: "Uncommon", DropRate: 250, MoneyBonus: 0.03},
	{ID: "rare", Name: "Rare", DropRate: 120, MoneyBonus: 0.08, GemBonus: 0.0005},
	{ID: "epic", Name: "Epic", DropRate: 50, MoneyBonus: 0.20, GemBonus: 0.001, RPBonus: 0.01},
	{ID: "legendary", Name: "Legendary", DropRate: 15, MoneyBonus: 0.60, GemBonus: 0.003, RPBonus: 0.03},
	{ID: "mythic", Name: "Mythic", DropRate: 4, MoneyBonus: 2.0, GemBonus: 0.01, RPBonus: 0.10},
	// Secret runes never drop from packs. They are crafted by consuming
	// one of every basic and elemental rune.
	{ID: "secret", Name: "Secret", DropRate: 0, MoneyBonus: 10.0, GemBonus: 0.05, RPBonus: 0.50},
}

// ElementalRune produces a fixed amount of its element's resource on
// every tick.
type ElementalRune struct {
	Element           Element `json:"element"`
	Name              string  `json:"name"`
	ProductionPerTick float64 `json:"production_per_tick"`
}

var defaultElementalRunes = [ElementCount]ElementalRune{
	{Element: Air, Name: "Gale Rune", ProductionPerTick: 1},
	{Element: Earth, Name: "Stone Rune", ProductionPerTick: 1},
	{Element: Water, Name: "Tide Rune", ProductionPerTick: 1},
	{Element: Fire, Name: "Ember Rune", ProductionPerTick: 1},
	{Element: Light, Name: "Dawn Rune", ProductionPerTick: 0.5},
	{Element: Dark, Name: "Dusk Rune", ProductionPerTick: 0.5},
}
