package database

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/ccradio/rotation-bot/internal/domain/service"
	"github.com/ccradio/rotation-bot/migrator/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestDuel_ConcurrentResolutionsKeepEveryResult(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *DB
	}{
		{
			name:  "should keep every result in memory",
			setup: SetupTestDB,
		},
		{
			name: "should keep every result on disk",
			setup: func(t *testing.T) *DB {
				db, err := New(filepath.Join(t.TempDir(), "duels.db"))
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })
				require.NoError(t, sqlite.Migrate(db.DB()))
				return db
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := tt.setup(t)
			svc := service.NewInstance(NewInstance(db), nil, nil, t.TempDir(), zaptest.NewLogger(t))
			ctx := context.Background()

			const duels = 50
			var wg sync.WaitGroup
			errs := make(chan error, duels)
			for i := 0; i < duels; i++ {
				challenger, opponent := "a", "b"
				if i%2 == 1 {
					challenger, opponent = opponent, challenger
				}

				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := svc.Duel.Duel(ctx, "G", challenger, opponent)
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)

			for err := range errs {
				require.NoError(t, err)
			}

			a, err := svc.Duel.Stats(ctx, "G", "a")
			require.NoError(t, err)
			b, err := svc.Duel.Stats(ctx, "G", "b")
			require.NoError(t, err)

			assert.Equal(t, duels, a.Total())
			assert.Equal(t, duels, b.Total())
			assert.Equal(t, a.Wins, b.Losses)
			assert.Equal(t, a.Losses, b.Wins)
			assert.Equal(t, a.Draws, b.Draws)
			assert.Equal(t, 2, countRows(t, db, "duel_stats"))
		})
	}
}
