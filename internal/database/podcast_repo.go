package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
)

type podcastRepo struct {
	db dbConn
}

func newPodcastRepo(db dbConn) contract.PodcastRepo {
	return &podcastRepo{db: db}
}

func (r *podcastRepo) ListByDate(ctx context.Context, date string) ([]*entity.Podcast, error) {
	query := `
		SELECT date, id, script, voice, audio_path
		FROM daily_podcasts
		WHERE date = ?
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list podcasts: %w", err)
	}
	defer rows.Close()

	var podcasts []*entity.Podcast
	for rows.Next() {
		p := &entity.Podcast{}
		if err := rows.Scan(&p.Date, &p.ID, &p.Script, &p.Voice, &p.AudioPath); err != nil {
			return nil, fmt.Errorf("failed to scan podcast: %w", err)
		}
		podcasts = append(podcasts, p)
	}

	return podcasts, rows.Err()
}

func (r *podcastRepo) Save(ctx context.Context, p *entity.Podcast) error {
	query := `
		INSERT OR REPLACE INTO daily_podcasts (date, id, script, voice, audio_path)
		VALUES (?, ?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, p.Date, p.ID, p.Script, p.Voice, p.AudioPath); err != nil {
		return fmt.Errorf("failed to save podcast: %w", err)
	}
	return nil
}

func (r *podcastRepo) Random(ctx context.Context, date string) (*entity.Podcast, error) {
	query := `
		SELECT date, id, script, voice, audio_path
		FROM daily_podcasts
		WHERE date = ?
		ORDER BY RANDOM()
		LIMIT 1
	`
	return r.getOne(ctx, query, date)
}

func (r *podcastRepo) GetByVoice(ctx context.Context, date, voice string) (*entity.Podcast, error) {
	query := `
		SELECT date, id, script, voice, audio_path
		FROM daily_podcasts
		WHERE date = ? AND voice = ?
		ORDER BY id ASC
		LIMIT 1
	`
	return r.getOne(ctx, query, date, voice)
}

func (r *podcastRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Podcast, error) {
	p := &entity.Podcast{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&p.Date, &p.ID, &p.Script, &p.Voice, &p.AudioPath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get podcast: %w", err)
	}
	return p, nil
}

func (r *podcastRepo) DeleteByDate(ctx context.Context, date string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM daily_podcasts WHERE date = ?`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete podcasts: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n, nil
}
