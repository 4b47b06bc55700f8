package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/ccradio/rotation-bot/internal/rotation"
	"go.uber.org/zap"
)

type mapService struct {
	dm     contract.DataManager
	logger *zap.Logger
}

func newMapService(dm contract.DataManager, logger *zap.Logger) *mapService {
	return &mapService{
		dm:     dm,
		logger: logger,
	}
}

// SeedFromFile fills the maps and job seed tables from the YAML file when
// they are empty. Tables that already hold rows are left untouched.
func (s *mapService) SeedFromFile(ctx context.Context, path string) error {
	seed, err := readSeedFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Warn("seed file not found, skipping", zap.String("path", path))
		return nil
	}
	if err != nil {
		return err
	}

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		mapCount, err := tx.Map().Count(ctx)
		if err != nil {
			return err
		}
		if mapCount == 0 {
			for i, m := range seed.Maps {
				if err := tx.Map().Upsert(ctx, &entity.Map{Name: m.Name, Emote: m.Emote, RotationOrder: i}); err != nil {
					return err
				}
			}
			s.logger.Info("seeded maps", zap.Int("count", len(seed.Maps)))
		}

		jobCount, err := tx.Job().CountSeeds(ctx)
		if err != nil {
			return err
		}
		if jobCount == 0 {
			for _, name := range seed.Jobs {
				if err := tx.Job().AddSeed(ctx, name); err != nil {
					return err
				}
			}
			s.logger.Info("seeded jobs", zap.Int("count", len(seed.Jobs)))
		}

		return nil
	})
}

// LoadClock builds the rotation clock from the maps table.
func (s *mapService) LoadClock(ctx context.Context, interval time.Duration, epoch time.Time) (*rotation.Clock, error) {
	maps, err := s.dm.Map().List(ctx)
	if err != nil {
		return nil, err
	}
	if len(maps) == 0 {
		return nil, fmt.Errorf("%w: no maps configured", domain.ErrInvalidArgument)
	}

	seq := make([]rotation.Map, 0, len(maps))
	for _, m := range maps {
		seq = append(seq, m.ToRotation())
	}

	return rotation.NewClock(seq, interval, epoch)
}

func (s *mapService) List(ctx context.Context) ([]*entity.Map, error) {
	return s.dm.Map().List(ctx)
}

func (s *mapService) Upsert(ctx context.Context, item *entity.Map) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("%w: map name is required", domain.ErrInvalidArgument)
	}
	if item.RotationOrder < 0 {
		return fmt.Errorf("%w: rotation order must not be negative", domain.ErrInvalidArgument)
	}
	return s.dm.Map().Upsert(ctx, item)
}
