package catalog

// TraderRewardType selects the currency a trader offer pays out.
type TraderRewardType string

const (
	TraderRewardGems  TraderRewardType = "gems"
	TraderRewardMoney TraderRewardType = "money"
	TraderRewardRP    TraderRewardType = "rp"
	TraderRewardRune  TraderRewardType = "rune"
)

// TraderOffer is one entry of the fixed offer pool. Cost is paid in an
// elemental resource; RuneTier is only meaningful for rune rewards.
type TraderOffer struct {
	ID           string           `json:"id"`
	CostElement  Element          `json:"cost_element"`
	CostAmount   float64          `json:"cost_amount"`
	RewardType   TraderRewardType `json:"reward_type"`
	RewardAmount float64          `json:"reward_amount"`
	RuneTier     int              `json:"rune_tier,omitempty"`
}

// TraderOfferCount is how many offers a refresh samples from the pool.
const TraderOfferCount = 3

var defaultTraderOffers = []TraderOffer{
	{ID: "tr_air_gems", CostElement: Air, CostAmount: 5000, RewardType: TraderRewardGems, RewardAmount: 2},
	{ID: "tr_earth_money", CostElement: Earth, CostAmount: 2500, RewardType: TraderRewardMoney, RewardAmount: 50000},
	{ID: "tr_water_rp", CostElement: Water, CostAmount: 7500, RewardType: TraderRewardRP, RewardAmount: 5},
	{ID: "tr_fire_rune", CostElement: Fire, CostAmount: 10000, RewardType: TraderRewardRune, RewardAmount: 1, RuneTier: 2},
	{ID: "tr_light_gems", CostElement: Light, CostAmount: 4000, RewardType: TraderRewardGems, RewardAmount: 1},
	{ID: "tr_dark_rune", CostElement: Dark, CostAmount: 20000, RewardType: TraderRewardRune, RewardAmount: 1, RuneTier: 3},
	{ID: "tr_fire_money", CostElement: Fire, CostAmount: 1000, RewardType: TraderRewardMoney, RewardAmount: 15000},
	{ID: "tr_water_gems", CostElement: Water, CostAmount: 12000, RewardType: TraderRewardGems, RewardAmount: 4},
}
