package catalog

// UpgradeType selects how an upgrade charges and what it modifies.
type UpgradeType string

const (
	// UpgradeClick adds to the base money-per-click rate.
	UpgradeClick UpgradeType = "click"
	// UpgradeTick adds to the base money-per-tick rate.
	UpgradeTick UpgradeType = "tick"
	// UpgradeUnlock gates a feature behind a fixed tri-currency bundle
	// (money, rebirth points, gems) instead of the scaling price curve.
	UpgradeUnlock UpgradeType = "unlock"
)

// Unlock bundle cost. Unlock-type upgrades consume exactly this
// regardless of their nominal price.
const (
	UnlockMoneyCost = 1000.0
	UnlockRPCost    = 1.0
	UnlockGemCost   = 1
)

// Upgrade is a static upgrade definition. Catalog order is stable:
// the index drives the price growth band.
type Upgrade struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Type       UpgradeType `json:"type"`
	BasePrice  float64     `json:"base_price"`
	MaxAmount  int         `json:"max_amount"`
	ClickBonus float64     `json:"click_bonus"`
	TickBonus  float64     `json:"tick_bonus"`
	Unlocks    string      `json:"unlocks,omitempty"`
}

// Feature keys granted by Unlock-type upgrades.
const (
	FeatureGemRefinery = "gem_refinery"
	FeatureElements    = "elements"
	FeatureGoldSkills  = "gold_skills"
)

var defaultUpgrades = []Upgrade{
	{ID: "cursor", Name: "Sharper Cursor", Type: UpgradeClick, BasePrice: 10, MaxAmount: 1000, ClickBonus: 1},
	{ID: "gloves", Name: "Lucky Gloves", Type: UpgradeClick, BasePrice: 100, MaxAmount: 1000, ClickBonus: 5},
	{ID: "intern", Name: "Coin Intern", Type: UpgradeTick, BasePrice: 50, MaxAmount: 1000, TickBonus: 1},
	{ID: "printer", Name: "Money Printer", Type: UpgradeTick, BasePrice: 500, MaxAmount: 1000, TickBonus: 10},
	{ID: "forge", Name: "Click Forge", Type: UpgradeClick, BasePrice: 5000, MaxAmount: 500, ClickBonus: 50},
	{ID: "vault", Name: "Interest Vault", Type: UpgradeTick, BasePrice: 25000, MaxAmount: 500, TickBonus: 100},
	{ID: "laser", Name: "Click Laser", Type: UpgradeClick, BasePrice: 200000, MaxAmount: 250, ClickBonus: 500},
	{ID: "dynamo", Name: "Coin Dynamo", Type: UpgradeTick, BasePrice: 1000000, MaxAmount: 250, TickBonus: 2500},
	{ID: "unlock_gems", Name: "Gem Refinery", Type: UpgradeUnlock, BasePrice: 1000, MaxAmount: 1, Unlocks: FeatureGemRefinery},
	{ID: "unlock_elements", Name: "Elemental Altar", Type: UpgradeUnlock, BasePrice: 1000, MaxAmount: 1, Unlocks: FeatureElements},
	{ID: "unlock_goldskills", Name: "Golden Archive", Type: UpgradeUnlock, BasePrice: 1000, MaxAmount: 1, Unlocks: FeatureGoldSkills},
}

// RebirthUpgradeEffect selects the special behaviour of a rebirth-tier
// upgrade level.
type RebirthUpgradeEffect string

const (
	RebirthClickBonus  RebirthUpgradeEffect = "click_bonus"
	RebirthTickBonus   RebirthUpgradeEffect = "tick_bonus"
	RebirthAutoClicker RebirthUpgradeEffect = "auto_clicker"
	RebirthClickMult   RebirthUpgradeEffect = "click_multiplier"
	RebirthRPMult      RebirthUpgradeEffect = "rp_multiplier"
)

// RebirthUpgrade is a rebirth-tier upgrade definition, priced in
// rebirth points. Index drives the coarse price growth band.
type RebirthUpgrade struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Effect     RebirthUpgradeEffect `json:"effect"`
	BasePrice  float64              `json:"base_price"`
	MaxAmount  int                  `json:"max_amount"`
	ClickBonus float64              `json:"click_bonus"`
	TickBonus  float64              `json:"tick_bonus"`
}

var defaultRebirthUpgrades = []RebirthUpgrade{
	{ID: "rb_click", Name: "Rebirth Power", Effect: RebirthClickBonus, BasePrice: 1, MaxAmount: 100, ClickBonus: 10},
	{ID: "rb_tick", Name: "Rebirth Engine", Effect: RebirthTickBonus, BasePrice: 2, MaxAmount: 100, TickBonus: 25},
	{ID: "rb_auto", Name: "Auto Clicker", Effect: RebirthAutoClicker, BasePrice: 5, MaxAmount: 50},
	{ID: "rb_clickmult", Name: "Click Resonance", Effect: RebirthClickMult, BasePrice: 10, MaxAmount: 20},
	{ID: "rb_rpmult", Name: "Point Compounder", Effect: RebirthRPMult, BasePrice: 25, MaxAmount: 1},
}
