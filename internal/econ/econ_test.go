package econ

import (
	"math"
	"testing"
)

func TestScalePrice(t *testing.T) {
	t.Run("floors the scaled price", func(t *testing.T) {
		if got := ScalePrice(10, 0, 2.0); got != 10 {
			t.Fatalf("owned=0: got %v want 10", got)
		}
		if got := ScalePrice(10, 3, 2.0); got != 80 {
			t.Fatalf("owned=3: got %v want 80", got)
		}
		// 10 × 2.5^2 = 62.5 → 62
		if got := ScalePrice(10, 2, 2.5); got != 62 {
			t.Fatalf("owned=2 mult=2.5: got %v want 62", got)
		}
	})

	t.Run("strictly increases while below float saturation", func(t *testing.T) {
		prev := ScalePrice(10, 0, 2.0)
		for owned := 1; owned < 50; owned++ {
			next := ScalePrice(10, owned, 2.0)
			if next <= prev {
				t.Fatalf("price not increasing at owned=%d: %v then %v", owned, prev, next)
			}
			prev = next
		}
	})
}

func TestPriceGrowthBands(t *testing.T) {
	cases := []struct {
		index int
		want  float64
	}{
		{0, 2.0}, {1, 2.0},
		{2, 2.5}, {3, 2.5},
		{4, 3.0}, {6, 3.0},
		{7, 3.5}, {10, 3.5},
	}
	for _, tc := range cases {
		if got := PriceGrowth(tc.index); got != tc.want {
			t.Errorf("PriceGrowth(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
}

func TestRebirthPriceGrowthBands(t *testing.T) {
	cases := []struct {
		index int
		want  float64
	}{
		{0, 2.0}, {2, 2.0},
		{3, 3.0}, {5, 3.0},
		{6, 3.5}, {9, 3.5},
	}
	for _, tc := range cases {
		if got := RebirthPriceGrowth(tc.index); got != tc.want {
			t.Errorf("RebirthPriceGrowth(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
}

func TestMaxAffordable(t *testing.T) {
	t.Run("matches sequential single purchases", func(t *testing.T) {
		budget := 1000.0
		wantCount, wantCost := 0, 0.0
		owned := 0
		remaining := budget
		for {
			p := ScalePrice(10, owned, 2.0)
			if p > remaining {
				break
			}
			remaining -= p
			wantCost += p
			owned++
			wantCount++
		}

		count, cost := MaxAffordable(10, 0, 1000, budget, 2.0)
		if count != wantCount || cost != wantCost {
			t.Fatalf("got count=%d cost=%v, want count=%d cost=%v", count, cost, wantCount, wantCost)
		}
	})

	t.Run("respects the max amount cap", func(t *testing.T) {
		count, _ := MaxAffordable(10, 8, 10, math.MaxFloat64/2, 2.0)
		if count != 2 {
			t.Fatalf("got count=%d, want 2", count)
		}
	})

	t.Run("zero when the first unit is unaffordable", func(t *testing.T) {
		count, cost := MaxAffordable(10, 0, 100, 9, 2.0)
		if count != 0 || cost != 0 {
			t.Fatalf("got count=%d cost=%v, want 0, 0", count, cost)
		}
	})
}

func TestCompose(t *testing.T) {
	if got := Compose(); got != 1 {
		t.Fatalf("empty compose = %v, want 1", got)
	}
	if got := Compose(2, 3, 0.5); got != 3 {
		t.Fatalf("Compose(2,3,0.5) = %v, want 3", got)
	}
}

func TestClickCountMultiplier(t *testing.T) {
	if got := ClickCountMultiplier(500, 0); got != 1 {
		t.Fatalf("level 0 should be neutral, got %v", got)
	}
	// level 1: (clicks+1)^0.01
	want := math.Pow(1000, 0.01)
	if got := ClickCountMultiplier(999, 1); math.Abs(got-want) > 1e-12 {
		t.Fatalf("level 1 got %v, want %v", got, want)
	}
	// level 3 exponent is 0.03
	want = math.Pow(1000, 0.03)
	if got := ClickCountMultiplier(999, 3); math.Abs(got-want) > 1e-12 {
		t.Fatalf("level 3 got %v, want %v", got, want)
	}
}

func TestRebirthPointMultiplier(t *testing.T) {
	if got := RebirthPointMultiplier(100, 0); got != 1 {
		t.Fatalf("level 0 should be neutral, got %v", got)
	}
	want := 1 + math.Log(101)*0.05
	if got := RebirthPointMultiplier(100, 1); math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got := RebirthPointMultiplier(0, 1); got != 1 {
		t.Fatalf("rp=0 should be neutral even at level 1, got %v", got)
	}
}
