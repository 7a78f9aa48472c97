package engine

import (
	"fmt"

	"runeclicker/internal/catalog"
)

// Grant is the developer backdoor: it adds currency or items directly.
// Mutations land in whichever stats tree dev mode selects, and invalid
// input returns an error without touching state.
func (e *Engine) Grant(kind string, amount float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount <= 0 {
		return fmt.Errorf("engine: grant %s: amount must be positive", kind)
	}

	now := e.clock.Now()
	st := e.st.Clone()

	switch kind {
	case "money":
		st.Money += amount
		st.CurrentStats().MoneyEarned += amount
	case "gems":
		grantGems(st, int64(amount))
	case "rp":
		st.RebirthPoints += amount
	case "gold_rp":
		st.GoldRP += int64(amount)
	default:
		if el, ok := catalog.ElementByName(kind); ok {
			grantElementalRune(st, el, int64(amount))
			break
		}
		if tier, ok := runeTierByID(e.cat, kind); ok {
			grantRune(st, tier, int64(amount))
			break
		}
		return fmt.Errorf("engine: grant: unknown kind %q", kind)
	}

	e.updateAchievements(st)
	e.commit(st, now)
	return nil
}

func runeTierByID(cat *catalog.Catalog, id string) (int, bool) {
	for i, tier := range cat.RuneTiers {
		if tier.ID == id {
			return i, true
		}
	}
	return 0, false
}
