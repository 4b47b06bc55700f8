package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
)

type tipRepo struct {
	db dbConn
}

func newTipRepo(db dbConn) contract.TipRepo {
	return &tipRepo{db: db}
}

func (r *tipRepo) List(ctx context.Context) ([]*entity.Tip, error) {
	query := `
		SELECT id, category, keyword, content, created_at
		FROM tips
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}
	defer rows.Close()

	var tips []*entity.Tip
	for rows.Next() {
		tip := &entity.Tip{}
		if err := rows.Scan(&tip.ID, &tip.Category, &tip.Keyword, &tip.Content, &tip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tip: %w", err)
		}
		tips = append(tips, tip)
	}

	return tips, rows.Err()
}

func (r *tipRepo) Create(ctx context.Context, tip *entity.Tip) error {
	query := `
		INSERT INTO tips (category, keyword, content)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, tip.Category, tip.Keyword, tip.Content)
	if err != nil {
		return fmt.Errorf("failed to create tip: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	tip.ID = id
	return nil
}

// Delete reports whether a row was removed.
func (r *tipRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tips WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete tip: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

// Random picks a tip, restricted to keyword matches when keyword is set.
func (r *tipRepo) Random(ctx context.Context, keyword string) (*entity.Tip, error) {
	query := `
		SELECT id, category, keyword, content, created_at
		FROM tips
		WHERE ? = '' OR keyword LIKE '%' || ? || '%' OR category = ?
		ORDER BY RANDOM()
		LIMIT 1
	`

	tip := &entity.Tip{}
	err := r.db.QueryRowContext(ctx, query, keyword, keyword, keyword).Scan(
		&tip.ID, &tip.Category, &tip.Keyword, &tip.Content, &tip.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get random tip: %w", err)
	}

	return tip, nil
}
