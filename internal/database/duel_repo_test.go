package database

import (
	"context"
	"testing"

	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuelRepo_GetAndUpsert(t *testing.T) {
	db := SetupTestDB(t)

	ctx := context.Background()
	repo := newDuelRepo(db.conn)

	t.Run("should return nil when record does not exist", func(t *testing.T) {
		rec, err := repo.Get(ctx, entity.DuelKey("U1", "G1"))

		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("should insert then update the same key", func(t *testing.T) {
		rec := entity.NewDuelRecord("U1", "G1")
		rec.Wins = 1
		require.NoError(t, repo.Upsert(ctx, rec))

		rec.Wins = 2
		rec.Draws = 1
		require.NoError(t, repo.Upsert(ctx, rec))

		got, err := repo.Get(ctx, "U1@G1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "U1", got.UserID)
		assert.Equal(t, "G1", got.GuildID)
		assert.Equal(t, 2, got.Wins)
		assert.Equal(t, 0, got.Losses)
		assert.Equal(t, 1, got.Draws)
		assert.False(t, got.UpdatedAt.IsZero())
	})

	t.Run("should keep guilds apart", func(t *testing.T) {
		other := entity.NewDuelRecord("U1", "G2")
		other.Losses = 5
		require.NoError(t, repo.Upsert(ctx, other))

		first, err := repo.Get(ctx, "U1@G1")
		require.NoError(t, err)
		second, err := repo.Get(ctx, "U1@G2")
		require.NoError(t, err)

		assert.Equal(t, 0, first.Losses)
		assert.Equal(t, 5, second.Losses)
	})
}

func TestDuelRepo_Top(t *testing.T) {
	db := SetupTestDB(t)

	ctx := context.Background()
	repo := newDuelRepo(db.conn)

	for i, wins := range []int{3, 10, 7} {
		rec := entity.NewDuelRecord([]string{"A", "B", "C"}[i], "G1")
		rec.Wins = wins
		require.NoError(t, repo.Upsert(ctx, rec))
	}

	top, err := repo.Top(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].UserID)
	assert.Equal(t, "C", top[1].UserID)
}
