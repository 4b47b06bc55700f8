package database

import (
	"context"
	"fmt"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
)

type jobRepo struct {
	db dbConn
}

func newJobRepo(db dbConn) contract.JobRepo {
	return &jobRepo{db: db}
}

func (r *jobRepo) ListSeeds(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM job_seeds ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list job seeds: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan job seed: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

func (r *jobRepo) CountSeeds(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM job_seeds`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count job seeds: %w", err)
	}
	return count, nil
}

func (r *jobRepo) AddSeed(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO job_seeds (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("failed to add job seed: %w", err)
	}
	return nil
}

func (r *jobRepo) ListRecommendations(ctx context.Context, date string) ([]*entity.JobRecommendation, error) {
	query := `
		SELECT date, job_name, comment
		FROM daily_job_recommendations
		WHERE date = ?
		ORDER BY rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list job recommendations: %w", err)
	}
	defer rows.Close()

	var recs []*entity.JobRecommendation
	for rows.Next() {
		rec := &entity.JobRecommendation{}
		if err := rows.Scan(&rec.Date, &rec.JobName, &rec.Comment); err != nil {
			return nil, fmt.Errorf("failed to scan job recommendation: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}

func (r *jobRepo) SaveRecommendation(ctx context.Context, rec *entity.JobRecommendation) error {
	query := `
		INSERT OR REPLACE INTO daily_job_recommendations (date, job_name, comment)
		VALUES (?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, rec.Date, rec.JobName, rec.Comment); err != nil {
		return fmt.Errorf("failed to save job recommendation: %w", err)
	}
	return nil
}
