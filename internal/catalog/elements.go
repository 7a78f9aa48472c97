package catalog

// Element indexes the fixed six-element pantheon. Order is stable and
// index-aligned with GameState's elemental arrays.
type Element int

const (
	Air Element = iota
	Earth
	Water
	Fire
	Light
	Dark

	ElementCount = 6
)

var elementNames = [ElementCount]string{"air", "earth", "water", "fire", "light", "dark"}

func (e Element) String() string {
	if e < 0 || int(e) >= ElementCount {
		return "unknown"
	}
	return elementNames[e]
}

// ElementByName resolves a lowercase element name. Returns false for
// anything outside the pantheon.
func ElementByName(name string) (Element, bool) {
	for i, n := range elementNames {
		if n == name {
			return Element(i), true
		}
	}
	return 0, false
}

// PrestigeBonusType is the permanent per-level effect an element's
// prestige path grants.
type PrestigeBonusType string

const (
	PrestigeAutoSpeed  PrestigeBonusType = "auto_speed"
	PrestigeAutoIncome PrestigeBonusType = "auto_income"
	PrestigeClickPower PrestigeBonusType = "click_power"
	PrestigePackLuck   PrestigeBonusType = "pack_luck"
	PrestigeRPGain     PrestigeBonusType = "rp_gain"
	PrestigeDiscount   PrestigeBonusType = "upgrade_discount"
)

// PrestigeTrack defines one element's prestige requirement curve and
// its permanent bonus.
type PrestigeTrack struct {
	Element         Element           `json:"element"`
	BonusType       PrestigeBonusType `json:"bonus_type"`
	BonusPerLevel   float64           `json:"bonus_per_level"` // percent per level
	BaseRequirement float64           `json:"base_requirement"`
	ScalingFactor   float64           `json:"scaling_factor"`
}

// Requirement returns the resource amount needed to prestige the
// element from the given level.
func (t PrestigeTrack) Requirement(level int) float64 {
	req := t.BaseRequirement
	for i := 0; i < level; i++ {
		req *= t.ScalingFactor
	}
	return req
}

var defaultPrestigeTracks = [ElementCount]PrestigeTrack{
	{Element: Air, BonusType: PrestigeAutoSpeed, BonusPerLevel: 5, BaseRequirement: 100000, ScalingFactor: 5},
	{Element: Earth, BonusType: PrestigeAutoIncome, BonusPerLevel: 10, BaseRequirement: 100000, ScalingFactor: 5},
	{Element: Water, BonusType: PrestigePackLuck, BonusPerLevel: 4, BaseRequirement: 100000, ScalingFactor: 5},
	{Element: Fire, BonusType: PrestigeClickPower, BonusPerLevel: 10, BaseRequirement: 100000, ScalingFactor: 5},
	{Element: Light, BonusType: PrestigeRPGain, BonusPerLevel: 8, BaseRequirement: 100000, ScalingFactor: 5},
	{Element: Dark, BonusType: PrestigeDiscount, BonusPerLevel: 2, BaseRequirement: 100000, ScalingFactor: 5},
}
