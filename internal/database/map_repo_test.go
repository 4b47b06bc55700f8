package database

import (
	"context"
	"testing"

	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRepo_ListOrdersByRotation(t *testing.T) {
	db := SetupTestDB(t)

	ctx := context.Background()
	repo := newMapRepo(db.conn)

	for _, m := range []*entity.Map{
		{Name: "화산심장", Emote: "🌋", RotationOrder: 1},
		{Name: "팔라이스트라", Emote: "🏛️", RotationOrder: 0},
		{Name: "절정의 구름", RotationOrder: 2},
	} {
		require.NoError(t, repo.Upsert(ctx, m))
		assert.NotZero(t, m.ID)
	}

	maps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, maps, 3)

	assert.Equal(t, "팔라이스트라", maps[0].Name)
	assert.Equal(t, "🏛️", maps[0].Emote)
	assert.Equal(t, "화산심장", maps[1].Name)
	assert.Equal(t, "절정의 구름", maps[2].Name)
	assert.Equal(t, "", maps[2].Emote)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMapRepo_UpsertReplacesByName(t *testing.T) {
	db := SetupTestDB(t)

	ctx := context.Background()
	repo := newMapRepo(db.conn)

	require.NoError(t, repo.Upsert(ctx, &entity.Map{Name: "붉은 사막", RotationOrder: 0}))
	require.NoError(t, repo.Upsert(ctx, &entity.Map{Name: "붉은 사막", Emote: "🏜️", RotationOrder: 3}))

	maps, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, "🏜️", maps[0].Emote)
	assert.Equal(t, 3, maps[0].RotationOrder)
}

func TestMapRepo_EmptyTable(t *testing.T) {
	db := SetupTestDB(t)

	repo := newMapRepo(db.conn)

	maps, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, maps)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}
