package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
)

type horoscopeRepo struct {
	db dbConn
}

func newHoroscopeRepo(db dbConn) contract.HoroscopeRepo {
	return &horoscopeRepo{db: db}
}

func (r *horoscopeRepo) Get(ctx context.Context, date, sign string) (*entity.Horoscope, error) {
	h := &entity.Horoscope{}
	query := `
		SELECT date, sign, content
		FROM horoscopes
		WHERE date = ? AND sign = ?
	`

	err := r.db.QueryRowContext(ctx, query, date, sign).Scan(&h.Date, &h.Sign, &h.Content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get horoscope: %w", err)
	}

	return h, nil
}

func (r *horoscopeRepo) Save(ctx context.Context, h *entity.Horoscope) error {
	query := `
		INSERT OR REPLACE INTO horoscopes (date, sign, content)
		VALUES (?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query, h.Date, h.Sign, h.Content); err != nil {
		return fmt.Errorf("failed to save horoscope: %w", err)
	}
	return nil
}
