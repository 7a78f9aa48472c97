package leaderboard

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresRepo stores snapshots in a single upserted table.
type PostgresRepo struct {
	db *sql.DB
}

// OpenPostgres connects, pings and prepares the schema.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("leaderboard: ping postgres: %w", err)
	}
	r := &PostgresRepo{db: db}
	if err := r.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *PostgresRepo) Close() error { return r.db.Close() }

func (r *PostgresRepo) ensureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS leaderboard_snapshots (
			user_id         TEXT PRIMARY KEY,
			money_earned    DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_tiers     INTEGER NOT NULL DEFAULT 0,
			money_per_click DOUBLE PRECISION NOT NULL DEFAULT 0,
			online_seconds  BIGINT NOT NULL DEFAULT 0,
			submitted_at    BIGINT NOT NULL DEFAULT 0
		)`)
	if err != nil {
		return fmt.Errorf("leaderboard: ensure schema: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Submit(ctx context.Context, snap Snapshot) error {
	if snap.UserID == "" {
		return ErrMissingUser
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO leaderboard_snapshots
			(user_id, money_earned, total_tiers, money_per_click, online_seconds, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			money_earned    = EXCLUDED.money_earned,
			total_tiers     = EXCLUDED.total_tiers,
			money_per_click = EXCLUDED.money_per_click,
			online_seconds  = EXCLUDED.online_seconds,
			submitted_at    = EXCLUDED.submitted_at`,
		snap.UserID, snap.AllTimeMoneyEarned, snap.TotalTiers, snap.MoneyPerClick, snap.OnlineSeconds, snap.SubmittedAt)
	if err != nil {
		return fmt.Errorf("leaderboard: submit %s: %w", snap.UserID, err)
	}
	return nil
}

// sortColumn maps a category to its table column. Categories are a
// closed set, so this never sees untrusted input in the query text.
func sortColumn(cat Category) (string, error) {
	switch cat {
	case CategoryMoney:
		return "money_earned", nil
	case CategoryTiers:
		return "total_tiers", nil
	case CategoryClick:
		return "money_per_click", nil
	}
	return "", ErrUnknownCategory
}

func (r *PostgresRepo) TopEntries(ctx context.Context, cat Category, limit int) ([]Entry, error) {
	col, err := sortColumn(cat)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT user_id, money_earned, total_tiers, money_per_click, online_seconds, submitted_at
		FROM leaderboard_snapshots
		ORDER BY %s DESC, user_id ASC
		LIMIT $1`, col), limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: top %s: %w", cat, err)
	}
	defer rows.Close()

	var out []Entry
	rank := 0
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.UserID, &s.AllTimeMoneyEarned, &s.TotalTiers, &s.MoneyPerClick, &s.OnlineSeconds, &s.SubmittedAt); err != nil {
			return nil, fmt.Errorf("leaderboard: scan: %w", err)
		}
		rank++
		out = append(out, Entry{Rank: rank, Snapshot: s})
	}
	return out, rows.Err()
}

func (r *PostgresRepo) RankOf(ctx context.Context, cat Category, userID string) (int, bool, error) {
	col, err := sortColumn(cat)
	if err != nil {
		return 0, false, err
	}
	var rank int
	err = r.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT rank FROM (
			SELECT user_id, RANK() OVER (ORDER BY %s DESC, user_id ASC) AS rank
			FROM leaderboard_snapshots
		) ranked WHERE user_id = $1`, col), userID).Scan(&rank)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("leaderboard: rank of %s: %w", userID, err)
	}
	return rank, true, nil
}
