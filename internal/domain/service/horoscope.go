package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ccradio/rotation-bot/internal/ai"
	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type horoscopeService struct {
	dm     contract.DataManager
	text   contract.TextGenerator
	logger *zap.Logger
	now    func() time.Time
	group  singleflight.Group
}

func newHoroscopeService(dm contract.DataManager, text contract.TextGenerator, logger *zap.Logger) *horoscopeService {
	return &horoscopeService{
		dm:     dm,
		text:   text,
		logger: logger,
		now:    time.Now,
	}
}

// GetDaily returns today's reading for sign, given as the English key or the
// Korean name. A cache miss generates all twelve signs at once.
func (s *horoscopeService) GetDaily(ctx context.Context, sign string) (*entity.Horoscope, error) {
	zs, ok := domain.FindZodiacSign(sign)
	if !ok {
		return nil, fmt.Errorf("%w: unknown zodiac sign %q", domain.ErrInvalidArgument, sign)
	}

	date := domain.DateKey(s.now())
	h, err := s.dm.Horoscope().Get(ctx, date, zs.Key)
	if err != nil {
		return nil, err
	}
	if h != nil {
		return h, nil
	}

	if err := s.Warmup(ctx, date); err != nil {
		return nil, err
	}

	h, err = s.dm.Horoscope().Get(ctx, date, zs.Key)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, fmt.Errorf("%w: no horoscope for %s on %s", domain.ErrNotFound, zs.Key, date)
	}
	return h, nil
}

// Warmup generates the readings for date unless every sign is already stored.
func (s *horoscopeService) Warmup(ctx context.Context, date string) error {
	_, err, _ := s.group.Do(date, func() (any, error) {
		ctx, cancel := detached(ctx)
		defer cancel()
		return nil, s.generate(ctx, date)
	})
	return err
}

func (s *horoscopeService) generate(ctx context.Context, date string) error {
	complete, err := s.isComplete(ctx, date)
	if err != nil || complete {
		return err
	}
	if s.text == nil {
		return domain.ErrAIDisabled
	}

	jobs, err := s.dm.Job().ListSeeds(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return fmt.Errorf("%w: no job seeds", domain.ErrNotFound)
	}
	maps, err := mapNames(ctx, s.dm)
	if err != nil {
		return err
	}

	shuffled := seededShuffle(jobs, date)
	assignments := make([]ai.SignJob, 0, len(domain.ZodiacSigns))
	for i, sign := range domain.ZodiacSigns {
		assignments = append(assignments, ai.SignJob{Sign: sign.Key, Job: shuffled[i%len(shuffled)]})
	}

	prompt, err := ai.HoroscopePrompt(ai.HoroscopeInput{Date: date, Maps: maps, Assignments: assignments})
	if err != nil {
		return err
	}

	s.logger.Info("generating horoscopes", zap.String("date", date))
	answer, err := s.text.GenerateText(ctx, prompt)
	if err != nil {
		return fmt.Errorf("failed to generate horoscopes: %w", err)
	}

	var readings map[string]string
	if err := ai.DecodeJSON(answer, &readings); err != nil {
		return err
	}

	saved := 0
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, sign := range domain.ZodiacSigns {
			content, ok := readings[sign.Key]
			if !ok || content == "" {
				continue
			}
			if err := tx.Horoscope().Save(ctx, &entity.Horoscope{Date: date, Sign: sign.Key, Content: content}); err != nil {
				return err
			}
			saved++
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("saved horoscopes", zap.String("date", date), zap.Int("count", saved))
	return nil
}

func (s *horoscopeService) isComplete(ctx context.Context, date string) (bool, error) {
	for _, sign := range domain.ZodiacSigns {
		h, err := s.dm.Horoscope().Get(ctx, date, sign.Key)
		if err != nil {
			return false, err
		}
		if h == nil {
			return false, nil
		}
	}
	return true, nil
}

// generateTimeout bounds a shared generation once it is detached from the
// caller that started it.
const generateTimeout = 10 * time.Minute

// detached keeps the values of ctx but drops its cancellation, so a caller
// leaving a singleflight group does not abort the work for the others.
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), generateTimeout)
}

func mapNames(ctx context.Context, dm contract.DataManager) ([]string, error) {
	maps, err := dm.Map().List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(maps))
	for _, m := range maps {
		names = append(names, m.Name)
	}
	return names, nil
}
