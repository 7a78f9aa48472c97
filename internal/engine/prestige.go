package engine

import "runeclicker/internal/catalog"

// PrestigeResult reports an elemental prestige attempt.
type PrestigeResult struct {
	OK              bool    `json:"ok"`
	Reason          string  `json:"reason,omitempty"`
	Element         string  `json:"element"`
	NewLevel        int     `json:"new_level"`
	NextRequirement float64 `json:"next_requirement"`
}

// PrestigeElement advances one element's one-way prestige counter.
// Only that element's resource pool resets; everything else stands.
func (e *Engine) PrestigeElement(el catalog.Element) PrestigeResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	track, ok := e.cat.PrestigeTrack(el)
	if !ok {
		return PrestigeResult{Reason: "unknown element"}
	}

	now := e.clock.Now()
	st := e.st.Clone()

	if !st.HasFeature(e.cat, catalog.FeatureElements) {
		return PrestigeResult{Element: el.String(), Reason: "elements locked"}
	}

	level := st.ElementalPrestige[el]
	req := track.Requirement(level)
	if st.ElementalResources[el] < req {
		return PrestigeResult{Element: el.String(), Reason: "insufficient resources", NextRequirement: req}
	}

	st.ElementalResources[el] = 0
	st.ElementalPrestige[el] = level + 1

	e.commit(st, now)
	return PrestigeResult{
		OK:              true,
		Element:         el.String(),
		NewLevel:        level + 1,
		NextRequirement: track.Requirement(level + 1),
	}
}

// SkillResult reports a gold skill unlock attempt.
type SkillResult struct {
	OK       bool   `json:"ok"`
	Reason   string `json:"reason,omitempty"`
	ID       string `json:"id"`
	NewLevel int    `json:"new_level"`
	GoldRP   int64  `json:"gold_rp"`
}

// UnlockGoldSkill takes exactly one level of a skill node. A node is
// unlockable iff the gold RP cost is covered, the node is below its
// max level, and every prerequisite holds at least one level.
func (e *Engine) UnlockGoldSkill(id string) SkillResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	def, ok := e.cat.GoldSkill(id)
	if !ok {
		return SkillResult{ID: id, Reason: "unknown skill"}
	}

	now := e.clock.Now()
	st := e.st.Clone()

	if !st.HasFeature(e.cat, catalog.FeatureGoldSkills) {
		return SkillResult{ID: id, Reason: "gold skills locked"}
	}
	if st.GoldSkills[id] >= def.MaxLevel {
		return SkillResult{ID: id, Reason: "maxed out"}
	}
	for _, reqID := range def.Requires {
		if st.GoldSkills[reqID] <= 0 {
			return SkillResult{ID: id, Reason: "requires " + reqID}
		}
	}
	if st.GoldRP < def.Cost {
		return SkillResult{ID: id, Reason: "insufficient gold RP"}
	}

	st.GoldRP -= def.Cost
	st.GoldSkills[id]++

	e.commit(st, now)
	return SkillResult{OK: true, ID: id, NewLevel: st.GoldSkills[id], GoldRP: st.GoldRP}
}
