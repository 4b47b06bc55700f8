package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/discord"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// boundarySlack moves the announcement lookup past the boundary in case the
// job fires slightly early.
const boundarySlack = time.Second

type Scheduler struct {
	cron      *gocron.Scheduler
	clock     contract.RotationClock
	horoscope contract.HoroscopeService
	job       contract.JobService
	podcast   contract.PodcastService
	announcer contract.Announcer
	logger    *zap.Logger
	now       func() time.Time
}

// NewScheduler wires the daily warmup and the rotation announcements. A nil
// announcer disables announcements.
func NewScheduler(clock contract.RotationClock, svc *Instance, announcer contract.Announcer, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:      gocron.NewScheduler(domain.KST),
		clock:     clock,
		horoscope: svc.Horoscope,
		job:       svc.Job,
		podcast:   svc.Podcast,
		announcer: announcer,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.cron.Every(1).Day().At("00:00").Do(s.Warmup, ctx); err != nil {
		return fmt.Errorf("failed to schedule daily warmup: %w", err)
	}

	if s.announcer != nil {
		next := s.clock.CurrentAndNext(s.now()).Current.End
		if _, err := s.cron.Every(s.clock.Interval()).StartAt(next).Do(s.Announce, ctx); err != nil {
			return fmt.Errorf("failed to schedule announcements: %w", err)
		}
		s.logger.Info("rotation announcements scheduled", zap.Time("first", next))
	}

	s.cron.StartAsync()
	s.logger.Info("scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}

// Warmup fills today's daily content. Each part fails independently.
func (s *Scheduler) Warmup(ctx context.Context) {
	date := domain.DateKey(s.now())
	log := s.logger.With(zap.String("date", date))
	log.Info("daily warmup started")

	if err := s.horoscope.Warmup(ctx, date); err != nil {
		log.Error("horoscope warmup failed", zap.Error(err))
	}
	if err := s.job.Warmup(ctx, date); err != nil {
		log.Error("job warmup failed", zap.Error(err))
	}
	if err := s.podcast.EnsureDaily(ctx, date); err != nil {
		log.Error("podcast warmup failed", zap.Error(err))
	}
}

// Announce posts the map that has just become active.
func (s *Scheduler) Announce(ctx context.Context) {
	snap := s.clock.CurrentAndNext(s.now().Add(boundarySlack))
	if err := s.announcer.Announce(ctx, discord.FormatAnnouncement(snap)); err != nil {
		s.logger.Error("rotation announcement failed", zap.Error(err))
		return
	}
	s.logger.Info("rotation announced", zap.String("map", snap.Current.Map.Name))
}
