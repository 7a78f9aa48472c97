package catalog

// AchievementRequirement names the lifetime stat an achievement tracks.
type AchievementRequirement string

const (
	ReqClicks      AchievementRequirement = "clicks"
	ReqMoneyEarned AchievementRequirement = "money_earned"
	ReqRebirths    AchievementRequirement = "rebirths"
	ReqGemsFound   AchievementRequirement = "gems_found"
	ReqPacksOpened AchievementRequirement = "packs_opened"
)

// Achievement is a tiered achievement definition. Tier t (1-based)
// requires BaseValue × TierScale^(t-1) of the tracked stat. Every tier
// held contributes 1% to the global money multiplier; GemBonusPerTier
// additionally feeds the gem-chance sum for gem-flavoured achievements.
type Achievement struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	Requirement     AchievementRequirement `json:"requirement"`
	BaseValue       float64                `json:"base_value"`
	TierScale       float64                `json:"tier_scale"`
	MaxTier         int                    `json:"max_tier"`
	GemBonusPerTier float64                `json:"gem_bonus_per_tier"`
}

// RequirementForTier returns the stat value needed to hold the given
// 1-based tier.
func (a Achievement) RequirementForTier(tier int) float64 {
	req := a.BaseValue
	for i := 1; i < tier; i++ {
		req *= a.TierScale
	}
	return req
}

var defaultAchievements = []Achievement{
	{ID: "ach_clicks", Name: "Finger Workout", Requirement: ReqClicks, BaseValue: 100, TierScale: 10, MaxTier: 8},
	{ID: "ach_money", Name: "Deep Pockets", Requirement: ReqMoneyEarned, BaseValue: 1000, TierScale: 100, MaxTier: 10},
	{ID: "ach_rebirths", Name: "Born Again", Requirement: ReqRebirths, BaseValue: 1, TierScale: 3, MaxTier: 6},
	{ID: "ach_gems", Name: "Gem Hoarder", Requirement: ReqGemsFound, BaseValue: 10, TierScale: 5, MaxTier: 6, GemBonusPerTier: 0.001},
	{ID: "ach_packs", Name: "Pack Addict", Requirement: ReqPacksOpened, BaseValue: 5, TierScale: 4, MaxTier: 5},
}
