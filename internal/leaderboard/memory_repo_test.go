package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRepo(t *testing.T) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()
	ctx := context.Background()
	snaps := []Snapshot{
		{UserID: "alice", AllTimeMoneyEarned: 5000, TotalTiers: 2, MoneyPerClick: 40},
		{UserID: "bob", AllTimeMoneyEarned: 9000, TotalTiers: 8, MoneyPerClick: 10},
		{UserID: "cara", AllTimeMoneyEarned: 1000, TotalTiers: 8, MoneyPerClick: 99},
	}
	for _, s := range snaps {
		require.NoError(t, repo.Submit(ctx, s))
	}
	return repo
}

func TestMemoryRepoRankings(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	t.Run("money category sorts by lifetime earnings", func(t *testing.T) {
		entries, err := repo.TopEntries(ctx, CategoryMoney, 10)
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "bob", entries[0].Snapshot.UserID)
		assert.Equal(t, 1, entries[0].Rank)
		assert.Equal(t, "cara", entries[2].Snapshot.UserID)
	})

	t.Run("tier ties break by user id", func(t *testing.T) {
		entries, err := repo.TopEntries(ctx, CategoryTiers, 10)
		require.NoError(t, err)
		assert.Equal(t, "bob", entries[0].Snapshot.UserID)
		assert.Equal(t, "cara", entries[1].Snapshot.UserID)
	})

	t.Run("click category and limit", func(t *testing.T) {
		entries, err := repo.TopEntries(ctx, CategoryClick, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "cara", entries[0].Snapshot.UserID)
	})
}

func TestMemoryRepoRankOf(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	rank, found, err := repo.RankOf(ctx, CategoryMoney, "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, rank)

	_, found, err = repo.RankOf(ctx, CategoryMoney, "nobody")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryRepoSubmitReplaces(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Submit(ctx, Snapshot{UserID: "cara", AllTimeMoneyEarned: 99_999}))
	rank, found, err := repo.RankOf(ctx, CategoryMoney, "cara")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, rank)
}

func TestMemoryRepoErrors(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	assert.ErrorIs(t, repo.Submit(ctx, Snapshot{}), ErrMissingUser)

	_, err := repo.TopEntries(ctx, Category("bogus"), 10)
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, _, err = repo.RankOf(ctx, Category("bogus"), "alice")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
