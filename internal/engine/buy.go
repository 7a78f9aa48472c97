package engine

import (
	"runeclicker/internal/bonus"
	"runeclicker/internal/catalog"
	"runeclicker/internal/econ"
	"runeclicker/internal/state"
)

// PurchaseResult reports an upgrade purchase. A declined purchase is a
// normal outcome, not an error: OK is false and state is unchanged.
type PurchaseResult struct {
	OK       bool    `json:"ok"`
	Reason   string  `json:"reason,omitempty"`
	ID       string  `json:"id"`
	Count    int     `json:"count"`
	Cost     float64 `json:"cost"`
	Amount   int     `json:"amount"`
	NewPrice float64 `json:"new_price"`
}

func declined(id, reason string) PurchaseResult {
	return PurchaseResult{ID: id, Reason: reason}
}

// BuyUpgrade purchases one unit of an ordinary upgrade.
func (e *Engine) BuyUpgrade(id string) PurchaseResult {
	return e.buyUpgrade(id, false)
}

// BuyUpgradeMax purchases as many units as the money budget allows,
// applied as a single state transition.
func (e *Engine) BuyUpgradeMax(id string) PurchaseResult {
	return e.buyUpgrade(id, true)
}

func (e *Engine) buyUpgrade(id string, max bool) PurchaseResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.cat.UpgradeIndex(id)
	if !ok {
		return declined(id, "unknown upgrade")
	}
	def := e.cat.Upgrades[idx]

	now := e.clock.Now()
	st := e.st.Clone()
	u := st.Upgrade(id)

	if def.Type == catalog.UpgradeUnlock {
		return e.buyUnlock(st, def, u)
	}

	if u.Amount >= u.MaxAmount {
		return declined(id, "maxed out")
	}

	totals := bonus.Compute(st, e.cat, now)
	growth := econ.PriceGrowth(idx)

	count, cost := purchaseCount(def.BasePrice, u.Amount, u.MaxAmount, st.Money, growth, totals.UpgradeDiscount, max)
	if count == 0 {
		return declined(id, "insufficient money")
	}

	st.Money -= cost
	u.Amount += count
	u.Price = econ.ScalePrice(def.BasePrice, u.Amount, growth)
	st.MoneyPerClick += def.ClickBonus * float64(count)
	st.MoneyPerTick += def.TickBonus * float64(count)

	e.commit(st, now)
	return PurchaseResult{OK: true, ID: id, Count: count, Cost: cost, Amount: u.Amount, NewPrice: u.Price}
}

// buyUnlock handles Unlock-type items: a fixed tri-currency bundle,
// capped at one, hidden until a gem has ever been held.
func (e *Engine) buyUnlock(st *state.GameState, def catalog.Upgrade, u *state.UpgradeState) PurchaseResult {
	if !st.GemEverHeld {
		return declined(def.ID, "locked")
	}
	if u.Amount >= 1 {
		return declined(def.ID, "already unlocked")
	}
	if st.Money < catalog.UnlockMoneyCost || st.RebirthPoints < catalog.UnlockRPCost || st.Gems < catalog.UnlockGemCost {
		return declined(def.ID, "insufficient resources")
	}

	st.Money -= catalog.UnlockMoneyCost
	st.RebirthPoints -= catalog.UnlockRPCost
	st.Gems -= catalog.UnlockGemCost
	u.Amount = 1

	e.commit(st, e.clock.Now())
	return PurchaseResult{OK: true, ID: def.ID, Count: 1, Cost: catalog.UnlockMoneyCost, Amount: 1, NewPrice: u.Price}
}

// BuyRebirthUpgrade purchases one level of a rebirth-tier upgrade.
func (e *Engine) BuyRebirthUpgrade(id string) PurchaseResult {
	return e.buyRebirthUpgrade(id, false)
}

// BuyRebirthUpgradeMax spends as many rebirth points as possible on
// the upgrade in one transition.
func (e *Engine) BuyRebirthUpgradeMax(id string) PurchaseResult {
	return e.buyRebirthUpgrade(id, true)
}

func (e *Engine) buyRebirthUpgrade(id string, max bool) PurchaseResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.cat.RebirthUpgradeIndex(id)
	if !ok {
		return declined(id, "unknown upgrade")
	}
	def := e.cat.RebirthUpgrades[idx]

	now := e.clock.Now()
	st := e.st.Clone()
	u := st.RebirthUpgrade(id)

	if u.Amount >= u.MaxAmount {
		return declined(id, "maxed out")
	}

	totals := bonus.Compute(st, e.cat, now)
	growth := econ.RebirthPriceGrowth(idx)

	count, cost := purchaseCount(def.BasePrice, u.Amount, u.MaxAmount, st.RebirthPoints, growth, totals.UpgradeDiscount, max)
	if count == 0 {
		return declined(id, "insufficient rebirth points")
	}

	st.RebirthPoints -= cost
	u.Amount += count
	u.Price = econ.ScalePrice(def.BasePrice, u.Amount, growth)
	st.MoneyPerClick += def.ClickBonus * float64(count)
	st.MoneyPerTick += def.TickBonus * float64(count)

	e.commit(st, now)
	return PurchaseResult{OK: true, ID: id, Count: count, Cost: cost, Amount: u.Amount, NewPrice: u.Price}
}

// purchaseCount resolves how many units to buy and the aggregate
// discounted cost. Single purchases and buy-max share the same price
// path so they stay equivalent.
func purchaseCount(base float64, owned, maxAmount int, budget, growth, discount float64, max bool) (int, float64) {
	if discount <= 0 {
		discount = 1
	}
	if max {
		count, cost := econ.MaxAffordable(base, owned, maxAmount, budget/discount, growth)
		return count, cost * discount
	}
	price := econ.ScalePrice(base, owned, growth) * discount
	if budget < price || owned >= maxAmount {
		return 0, 0
	}
	return 1, price
}
