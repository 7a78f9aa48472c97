// Package roll implements the discrete random draws: gem chance, rune
// packs, world event selection and trader offer sampling.
package roll

import (
	"math/rand"

	"runeclicker/internal/catalog"
)

// Roller wraps an unshared pseudo-random source. Each engine owns its
// own Roller; there is no package-level roll state.
type Roller struct {
	rng *rand.Rand
}

// New builds a Roller around the given source. Pass nil for a
// time-seeded default.
func New(src rand.Source) *Roller {
	if src == nil {
		return &Roller{rng: rand.New(rand.NewSource(rand.Int63()))}
	}
	return &Roller{rng: rand.New(src)}
}

// GemRoll draws once per click: success iff the uniform draw lands
// under the composed chance.
func (r *Roller) GemRoll(chance float64) bool {
	if chance <= 0 {
		return false
	}
	return r.rng.Float64() < chance
}

// Chance is a generic bounded probability draw.
func (r *Roller) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.rng.Float64() < p
}

// RunePack draws a uniform integer in [0,1000) and walks the rarity
// table cumulatively in table order; the first bucket containing the
// draw wins. Rates need not sum to 1000; a draw past the cumulative
// mass grants nothing (-1). The Secret tier has rate 0 and can never
// drop here.
func (r *Roller) RunePack(tiers [catalog.RuneTierCount]catalog.RuneTier) int {
	draw := r.rng.Intn(1000)
	cum := 0
	for i, tier := range tiers {
		cum += tier.DropRate
		if draw < cum {
			return i
		}
	}
	return -1
}

// PickEvent uniformly chooses among the eligible events. Returns false
// when nothing is eligible.
func (r *Roller) PickEvent(eligible []catalog.WorldEvent) (catalog.WorldEvent, bool) {
	if len(eligible) == 0 {
		return catalog.WorldEvent{}, false
	}
	return eligible[r.rng.Intn(len(eligible))], true
}

// SampleOffers uniformly samples n pool entries without replacement.
func (r *Roller) SampleOffers(pool []catalog.TraderOffer, n int) []catalog.TraderOffer {
	if n > len(pool) {
		n = len(pool)
	}
	idx := r.rng.Perm(len(pool))[:n]
	out := make([]catalog.TraderOffer, 0, n)
	for _, i := range idx {
		out = append(out, pool[i])
	}
	return out
}
