// Package leaderboard holds the competitive ranking contract. The
// engine produces Snapshots; a Repository stores them and answers
// ranked queries per category.
package leaderboard

import "context"

// Category selects which snapshot column a ranking sorts by.
type Category string

const (
	CategoryMoney Category = "money"
	CategoryTiers Category = "tiers"
	CategoryClick Category = "click"
)

// Categories lists every supported ranking in display order.
var Categories = []Category{CategoryMoney, CategoryTiers, CategoryClick}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryMoney, CategoryTiers, CategoryClick:
		return true
	}
	return false
}

// Snapshot is one player's submitted standing. Values are derived from
// authentic lifetime stats; dev-mode sessions never produce one.
type Snapshot struct {
	UserID             string  `json:"user_id"`
	AllTimeMoneyEarned float64 `json:"all_time_money_earned"`
	TotalTiers         int     `json:"total_tiers"`
	MoneyPerClick      float64 `json:"money_per_click"`
	OnlineSeconds      int64   `json:"online_seconds"`
	SubmittedAt        int64   `json:"submitted_at"`
}

// Entry is one ranked row.
type Entry struct {
	Rank     int      `json:"rank"`
	Snapshot Snapshot `json:"snapshot"`
}

// Repository stores snapshots keyed by user and serves rankings.
// Submit replaces the user's previous snapshot wholesale.
type Repository interface {
	Submit(ctx context.Context, snap Snapshot) error
	TopEntries(ctx context.Context, cat Category, limit int) ([]Entry, error)
	RankOf(ctx context.Context, cat Category, userID string) (int, bool, error)
}

func sortValue(cat Category, s Snapshot) float64 {
	switch cat {
	case CategoryTiers:
		return float64(s.TotalTiers)
	case CategoryClick:
		return s.MoneyPerClick
	default:
		return s.AllTimeMoneyEarned
	}
}
