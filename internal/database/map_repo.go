package database

import (
	"context"
	"fmt"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
)

type mapRepo struct {
	db dbConn
}

func newMapRepo(db dbConn) contract.MapRepo {
	return &mapRepo{db: db}
}

func (r *mapRepo) List(ctx context.Context) ([]*entity.Map, error) {
	query := `
		SELECT id, name, emote, rotation_order
		FROM maps
		ORDER BY rotation_order ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	defer rows.Close()

	var maps []*entity.Map
	for rows.Next() {
		m := &entity.Map{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Emote, &m.RotationOrder); err != nil {
			return nil, fmt.Errorf("failed to scan map: %w", err)
		}
		maps = append(maps, m)
	}

	return maps, rows.Err()
}

func (r *mapRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM maps`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count maps: %w", err)
	}
	return count, nil
}

// Upsert inserts the map or replaces the row holding the same name or order.
func (r *mapRepo) Upsert(ctx context.Context, m *entity.Map) error {
	query := `
		INSERT OR REPLACE INTO maps (name, emote, rotation_order)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, m.Name, m.Emote, m.RotationOrder)
	if err != nil {
		return fmt.Errorf("failed to upsert map: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	m.ID = id
	return nil
}
