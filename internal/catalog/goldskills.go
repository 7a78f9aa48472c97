package catalog

// GoldSkillEffect selects what a gold skill level improves.
type GoldSkillEffect string

const (
	SkillClickPower GoldSkillEffect = "click_power"
	SkillGemGain    GoldSkillEffect = "gem_gain"
	SkillRPGain     GoldSkillEffect = "rp_gain"
	SkillPackLuck   GoldSkillEffect = "pack_luck"
	// SkillAscension is the top-tier meta skill: it rescales the
	// percentage-above-1 part of every other gold skill bonus.
	SkillAscension GoldSkillEffect = "ascension"
)

// GoldSkill is a node in the prerequisite-gated skill DAG. Cost is in
// gold rebirth points per level; Requires lists node ids that must
// hold at least one level before this node can be taken.
type GoldSkill struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Effect   GoldSkillEffect `json:"effect"`
	PerLevel float64         `json:"per_level"`
	Cost     int64           `json:"cost"`
	MaxLevel int             `json:"max_level"`
	Requires []string        `json:"requires,omitempty"`
}

var defaultGoldSkills = []GoldSkill{
	{ID: "gs_touch", Name: "Golden Touch", Effect: SkillClickPower, PerLevel: 0.10, Cost: 1, MaxLevel: 10},
	{ID: "gs_polish", Name: "Gem Polish", Effect: SkillGemGain, PerLevel: 0.25, Cost: 1, MaxLevel: 5, Requires: []string{"gs_touch"}},
	{ID: "gs_alchemy", Name: "Point Alchemy", Effect: SkillRPGain, PerLevel: 0.10, Cost: 2, MaxLevel: 5, Requires: []string{"gs_touch"}},
	{ID: "gs_insight", Name: "Pack Insight", Effect: SkillPackLuck, PerLevel: 0.05, Cost: 2, MaxLevel: 5, Requires: []string{"gs_polish"}},
	{ID: "gs_ascension", Name: "Golden Ascension", Effect: SkillAscension, PerLevel: 0.50, Cost: 5, MaxLevel: 3, Requires: []string{"gs_polish", "gs_alchemy"}},
}
