package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ccradio/rotation-bot/internal/ai"
	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type jobService struct {
	dm     contract.DataManager
	text   contract.TextGenerator
	logger *zap.Logger
	now    func() time.Time
	group  singleflight.Group
}

func newJobService(dm contract.DataManager, text contract.TextGenerator, logger *zap.Logger) *jobService {
	return &jobService{
		dm:     dm,
		text:   text,
		logger: logger,
		now:    time.Now,
	}
}

func (s *jobService) GetDaily(ctx context.Context) ([]*entity.JobRecommendation, error) {
	date := domain.DateKey(s.now())
	recs, err := s.dm.Job().ListRecommendations(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(recs) > 0 {
		return recs, nil
	}

	if err := s.Warmup(ctx, date); err != nil {
		return nil, err
	}
	return s.dm.Job().ListRecommendations(ctx, date)
}

func (s *jobService) Warmup(ctx context.Context, date string) error {
	_, err, _ := s.group.Do(date, func() (any, error) {
		ctx, cancel := detached(ctx)
		defer cancel()
		return nil, s.generate(ctx, date)
	})
	return err
}

func (s *jobService) generate(ctx context.Context, date string) error {
	existing, err := s.dm.Job().ListRecommendations(ctx, date)
	if err != nil || len(existing) > 0 {
		return err
	}
	if s.text == nil {
		return domain.ErrAIDisabled
	}

	seeds, err := s.dm.Job().ListSeeds(ctx)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		return fmt.Errorf("%w: no job seeds", domain.ErrNotFound)
	}

	// seeded separately from the horoscope job assignment
	jobs := pick(seeds, "jobs:"+date, domain.DailyJobCount)
	prompt, err := ai.JobPrompt(ai.JobInput{Date: date, Jobs: jobs})
	if err != nil {
		return err
	}

	s.logger.Info("generating job recommendations", zap.String("date", date), zap.Strings("jobs", jobs))
	answer, err := s.text.GenerateText(ctx, prompt)
	if err != nil {
		return fmt.Errorf("failed to generate job recommendations: %w", err)
	}

	var comments map[string]string
	if err := ai.DecodeJSON(answer, &comments); err != nil {
		return err
	}

	return s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		saved := 0
		for _, job := range jobs {
			comment, ok := comments[job]
			if !ok || comment == "" {
				continue
			}
			rec := &entity.JobRecommendation{Date: date, JobName: job, Comment: comment}
			if err := tx.Job().SaveRecommendation(ctx, rec); err != nil {
				return err
			}
			saved++
		}
		if saved == 0 {
			return errors.New("model returned no comment for the picked jobs")
		}
		return nil
	})
}
