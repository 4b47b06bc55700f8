package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
)

type tipService struct {
	dm contract.DataManager
}

func newTipService(dm contract.DataManager) *tipService {
	return &tipService{dm: dm}
}

func (s *tipService) List(ctx context.Context) ([]*entity.Tip, error) {
	return s.dm.Tip().List(ctx)
}

func (s *tipService) Create(ctx context.Context, tip *entity.Tip) error {
	tip.Category = strings.TrimSpace(tip.Category)
	tip.Keyword = strings.TrimSpace(tip.Keyword)
	tip.Content = strings.TrimSpace(tip.Content)

	if tip.Category == "" || tip.Keyword == "" || tip.Content == "" {
		return fmt.Errorf("%w: category, keyword and content are required", domain.ErrInvalidArgument)
	}
	return s.dm.Tip().Create(ctx, tip)
}

func (s *tipService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.dm.Tip().Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: tip %d", domain.ErrNotFound, id)
	}
	return nil
}

// Random returns a random tip, matched against keyword when it is set.
func (s *tipService) Random(ctx context.Context, keyword string) (*entity.Tip, error) {
	tip, err := s.dm.Tip().Random(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return nil, err
	}
	if tip == nil {
		return nil, fmt.Errorf("%w: no tip for %q", domain.ErrNotFound, keyword)
	}
	return tip, nil
}
