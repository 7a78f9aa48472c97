package engine

import (
	"math"

	"runeclicker/internal/catalog"
	"runeclicker/internal/state"
)

// TradeResult reports a trader deal.
type TradeResult struct {
	OK           bool    `json:"ok"`
	Reason       string  `json:"reason,omitempty"`
	OfferID      string  `json:"offer_id"`
	Deals        int64   `json:"deals"`
	ResourceCost float64 `json:"resource_cost"`
}

// TraderOffers returns the ids of the current offer set.
func (e *Engine) TraderOffers() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.st.TraderOffers))
	copy(out, e.st.TraderOffers)
	return out
}

// RefreshTrader forces a new offer sample ahead of the deadline.
func (e *Engine) RefreshTrader() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	st := e.st.Clone()
	e.refreshTraderLocked(st, now.Unix())
	e.commit(st, now)

	out := make([]string, len(st.TraderOffers))
	copy(out, st.TraderOffers)
	return out
}

// refreshTraderLocked samples a fresh offer set and re-arms the refresh
// deadline. Callers hold the engine lock and commit afterwards.
func (e *Engine) refreshTraderLocked(st *state.GameState, nowUnix int64) {
	sampled := e.rolls.SampleOffers(e.cat.TraderOffers, catalog.TraderOfferCount)
	st.TraderOffers = st.TraderOffers[:0]
	for _, o := range sampled {
		st.TraderOffers = append(st.TraderOffers, o.ID)
	}
	st.TraderRefreshAt = nowUnix + e.bal.TraderRefreshSeconds
}

// AcceptTraderOffer executes one deal of the offer at the given slot.
func (e *Engine) AcceptTraderOffer(slot int) TradeResult {
	return e.acceptTrade(slot, false)
}

// AcceptTraderOfferAll repeats the deal as many times as the elemental
// resource pool covers, as a single transition.
func (e *Engine) AcceptTraderOfferAll(slot int) TradeResult {
	return e.acceptTrade(slot, true)
}

func (e *Engine) acceptTrade(slot int, all bool) TradeResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	st := e.st.Clone()

	if !st.HasFeature(e.cat, catalog.FeatureElements) {
		return TradeResult{Reason: "elements locked"}
	}
	if slot < 0 || slot >= len(st.TraderOffers) {
		return TradeResult{Reason: "no such offer"}
	}
	offer, ok := e.cat.TraderOffer(st.TraderOffers[slot])
	if !ok {
		return TradeResult{OfferID: st.TraderOffers[slot], Reason: "unknown offer"}
	}

	have := st.ElementalResources[offer.CostElement]
	deals := int64(1)
	if all {
		deals = int64(math.Floor(have / offer.CostAmount))
	}
	if deals < 1 || have < offer.CostAmount*float64(deals) {
		return TradeResult{OfferID: offer.ID, Reason: "insufficient " + offer.CostElement.String()}
	}

	cost := offer.CostAmount * float64(deals)
	st.ElementalResources[offer.CostElement] -= cost

	switch offer.RewardType {
	case catalog.TraderRewardGems:
		grantGems(st, int64(offer.RewardAmount)*deals)
	case catalog.TraderRewardMoney:
		gained := offer.RewardAmount * float64(deals)
		st.Money += gained
		st.CurrentStats().MoneyEarned += gained
	case catalog.TraderRewardRP:
		st.RebirthPoints += offer.RewardAmount * float64(deals)
	case catalog.TraderRewardRune:
		grantRune(st, offer.RuneTier, int64(offer.RewardAmount)*deals)
	}

	stats := st.CurrentStats()
	stats.TraderDeals += deals

	e.updateAchievements(st)
	e.commit(st, now)
	return TradeResult{OK: true, OfferID: offer.ID, Deals: deals, ResourceCost: cost}
}
