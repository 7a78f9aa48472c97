package catalog

// Catalog bundles every static definition table. It is read-only at
// runtime and never serialized with game state.
type Catalog struct {
	Upgrades        []Upgrade
	RebirthUpgrades []RebirthUpgrade
	RuneTiers       [RuneTierCount]RuneTier
	ElementalRunes  [ElementCount]ElementalRune
	PrestigeTracks  [ElementCount]PrestigeTrack
	Achievements    []Achievement
	GoldSkills      []GoldSkill
	WorldEvents     []WorldEvent
	TraderOffers    []TraderOffer

	upgradeIndex   map[string]int
	rebirthIndex   map[string]int
	goldSkillIndex map[string]int
	eventIndex     map[string]int
	traderIndex    map[string]int
}

// Default returns the compiled-in catalog.
func Default() *Catalog {
	c := &Catalog{
		Upgrades:        defaultUpgrades,
		RebirthUpgrades: defaultRebirthUpgrades,
		RuneTiers:       defaultRuneTiers,
		ElementalRunes:  defaultElementalRunes,
		PrestigeTracks:  defaultPrestigeTracks,
		Achievements:    defaultAchievements,
		GoldSkills:      defaultGoldSkills,
		WorldEvents:     defaultWorldEvents,
		TraderOffers:    defaultTraderOffers,
	}
	c.buildIndexes()
	return c
}

func (c *Catalog) buildIndexes() {
	c.upgradeIndex = make(map[string]int, len(c.Upgrades))
	for i, u := range c.Upgrades {
		c.upgradeIndex[u.ID] = i
	}
	c.rebirthIndex = make(map[string]int, len(c.RebirthUpgrades))
	for i, u := range c.RebirthUpgrades {
		c.rebirthIndex[u.ID] = i
	}
	c.goldSkillIndex = make(map[string]int, len(c.GoldSkills))
	for i, s := range c.GoldSkills {
		c.goldSkillIndex[s.ID] = i
	}
	c.eventIndex = make(map[string]int, len(c.WorldEvents))
	for i, ev := range c.WorldEvents {
		c.eventIndex[ev.ID] = i
	}
	c.traderIndex = make(map[string]int, len(c.TraderOffers))
	for i, o := range c.TraderOffers {
		c.traderIndex[o.ID] = i
	}
}

// UpgradeIndex returns the catalog position of an upgrade id. The
// position drives the price growth band.
func (c *Catalog) UpgradeIndex(id string) (int, bool) {
	i, ok := c.upgradeIndex[id]
	return i, ok
}

func (c *Catalog) Upgrade(id string) (Upgrade, bool) {
	i, ok := c.upgradeIndex[id]
	if !ok {
		return Upgrade{}, false
	}
	return c.Upgrades[i], true
}

func (c *Catalog) RebirthUpgradeIndex(id string) (int, bool) {
	i, ok := c.rebirthIndex[id]
	return i, ok
}

func (c *Catalog) RebirthUpgrade(id string) (RebirthUpgrade, bool) {
	i, ok := c.rebirthIndex[id]
	if !ok {
		return RebirthUpgrade{}, false
	}
	return c.RebirthUpgrades[i], true
}

func (c *Catalog) GoldSkill(id string) (GoldSkill, bool) {
	i, ok := c.goldSkillIndex[id]
	if !ok {
		return GoldSkill{}, false
	}
	return c.GoldSkills[i], true
}

func (c *Catalog) WorldEvent(id string) (WorldEvent, bool) {
	i, ok := c.eventIndex[id]
	if !ok {
		return WorldEvent{}, false
	}
	return c.WorldEvents[i], true
}

func (c *Catalog) TraderOffer(id string) (TraderOffer, bool) {
	i, ok := c.traderIndex[id]
	if !ok {
		return TraderOffer{}, false
	}
	return c.TraderOffers[i], true
}

func (c *Catalog) PrestigeTrack(e Element) (PrestigeTrack, bool) {
	if e < 0 || int(e) >= ElementCount {
		return PrestigeTrack{}, false
	}
	return c.PrestigeTracks[e], true
}
