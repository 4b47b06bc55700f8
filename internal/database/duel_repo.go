package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
)

type duelRepo struct {
	db dbConn
}

func newDuelRepo(db dbConn) contract.DuelRepo {
	return &duelRepo{db: db}
}

func (r *duelRepo) Get(ctx context.Context, userKey string) (*entity.DuelRecord, error) {
	rec := &entity.DuelRecord{}
	query := `
		SELECT user_key, user_id, guild_id, wins, losses, draws, updated_at
		FROM duel_stats
		WHERE user_key = ?
	`

	err := r.db.QueryRowContext(ctx, query, userKey).Scan(
		&rec.UserKey,
		&rec.UserID,
		&rec.GuildID,
		&rec.Wins,
		&rec.Losses,
		&rec.Draws,
		&rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get duel record: %w", err)
	}

	return rec, nil
}

func (r *duelRepo) Upsert(ctx context.Context, rec *entity.DuelRecord) error {
	query := `
		INSERT INTO duel_stats (user_key, user_id, guild_id, wins, losses, draws, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_key) DO UPDATE SET
			wins = excluded.wins,
			losses = excluded.losses,
			draws = excluded.draws,
			updated_at = excluded.updated_at
	`

	rec.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query,
		rec.UserKey,
		rec.UserID,
		rec.GuildID,
		rec.Wins,
		rec.Losses,
		rec.Draws,
		rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert duel record: %w", err)
	}

	return nil
}

func (r *duelRepo) Top(ctx context.Context, limit int) ([]*entity.DuelRecord, error) {
	query := `
		SELECT user_key, user_id, guild_id, wins, losses, draws, updated_at
		FROM duel_stats
		ORDER BY wins DESC, losses ASC, user_key ASC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list duel records: %w", err)
	}
	defer rows.Close()

	var recs []*entity.DuelRecord
	for rows.Next() {
		rec := &entity.DuelRecord{}
		err := rows.Scan(
			&rec.UserKey,
			&rec.UserID,
			&rec.GuildID,
			&rec.Wins,
			&rec.Losses,
			&rec.Draws,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duel record: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}
