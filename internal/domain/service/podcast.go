package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ccradio/rotation-bot/internal/ai"
	"github.com/ccradio/rotation-bot/internal/audio"
	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	podcastMapCount = 4
	podcastJobCount = 6
)

const fallbackScript = "대본 생성 중 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."

type podcastScript struct {
	ID     int    `json:"id"`
	Script string `json:"script"`
	Voice  string `json:"voice"`
}

type podcastService struct {
	dm       contract.DataManager
	text     contract.TextGenerator
	speech   contract.SpeechSynthesizer
	audioDir string
	logger   *zap.Logger
	now      func() time.Time
	group    singleflight.Group
}

func newPodcastService(dm contract.DataManager, text contract.TextGenerator, speech contract.SpeechSynthesizer, audioDir string, logger *zap.Logger) *podcastService {
	return &podcastService{
		dm:       dm,
		text:     text,
		speech:   speech,
		audioDir: audioDir,
		logger:   logger,
		now:      time.Now,
	}
}

// AudioFile is the on-disk location of the podcast's wav file.
func (s *podcastService) AudioFile(p *entity.Podcast) string {
	return filepath.Join(s.audioDir, p.FileName())
}

// EnsureDaily makes sure date has scripts and that every script has audio.
// Audio failures are logged per file and do not fail the call.
func (s *podcastService) EnsureDaily(ctx context.Context, date string) error {
	_, err, _ := s.group.Do(date, func() (any, error) {
		ctx, cancel := detached(ctx)
		defer cancel()
		return nil, s.ensure(ctx, date)
	})
	return err
}

func (s *podcastService) ensure(ctx context.Context, date string) error {
	podcasts, err := s.dm.Podcast().ListByDate(ctx, date)
	if err != nil {
		return err
	}

	if len(podcasts) == 0 {
		if s.text == nil {
			return domain.ErrAIDisabled
		}

		scripts := s.generateScripts(ctx, date)
		err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			for _, sc := range scripts {
				p := &entity.Podcast{
					Date:      date,
					ID:        sc.ID,
					Script:    sc.Script,
					Voice:     sc.Voice,
					AudioPath: fmt.Sprintf("/audio/podcast_%s_%d.wav", date, sc.ID),
				}
				if err := tx.Podcast().Save(ctx, p); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}

		podcasts, err = s.dm.Podcast().ListByDate(ctx, date)
		if err != nil {
			return err
		}
		s.logger.Info("saved podcast scripts", zap.String("date", date), zap.Int("count", len(podcasts)))
	}

	for _, p := range podcasts {
		s.ensureAudio(ctx, p)
	}
	return nil
}

func (s *podcastService) ensureAudio(ctx context.Context, p *entity.Podcast) {
	path := s.AudioFile(p)
	if _, err := os.Stat(path); err == nil {
		return
	}
	if s.speech == nil {
		s.logger.Warn("speech synthesis disabled, audio missing", zap.String("file", path))
		return
	}

	log := s.logger.With(zap.String("date", p.Date), zap.Int("id", p.ID), zap.String("voice", p.Voice))
	log.Info("synthesising podcast audio")

	pcm, err := s.speech.Synthesize(ctx, p.Script, p.Voice)
	if err != nil {
		log.Error("failed to synthesise podcast audio", zap.Error(err))
		return
	}

	format := audio.Format{
		SampleRate: domain.SpeechSampleRate,
		BitDepth:   domain.SpeechBitDepth,
		Channels:   domain.SpeechChannels,
	}
	if err := audio.WriteWAV(path, pcm, format); err != nil {
		log.Error("failed to write podcast audio", zap.Error(err))
		return
	}
	log.Info("podcast audio saved", zap.String("file", path))
}

// generateScripts never fails: a model error yields a single apology script.
func (s *podcastService) generateScripts(ctx context.Context, date string) []podcastScript {
	scripts, err := s.requestScripts(ctx, date)
	if err != nil {
		s.logger.Error("podcast script generation failed", zap.String("date", date), zap.Error(err))
		return []podcastScript{{ID: 1, Script: fallbackScript, Voice: domain.VoiceCharon}}
	}
	return scripts
}

func (s *podcastService) requestScripts(ctx context.Context, date string) ([]podcastScript, error) {
	maps, err := mapNames(ctx, s.dm)
	if err != nil {
		return nil, err
	}
	jobs, err := s.dm.Job().ListSeeds(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]ai.VoiceProfile, 0, len(domain.PodcastVoices))
	for _, v := range domain.PodcastVoices {
		profiles = append(profiles, ai.VoiceProfiles[v])
	}

	prompt, err := ai.PodcastPrompt(ai.PodcastInput{
		Date:     date,
		Maps:     pick(maps, "podcast-maps:"+date, podcastMapCount),
		Jobs:     pick(jobs, "podcast-jobs:"+date, podcastJobCount),
		Profiles: profiles,
	})
	if err != nil {
		return nil, err
	}

	answer, err := s.text.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var scripts []podcastScript
	if err := ai.DecodeJSON(answer, &scripts); err != nil {
		return nil, err
	}

	valid := scripts[:0]
	seen := make(map[int]bool, len(scripts))
	for _, sc := range scripts {
		if sc.Script == "" || sc.ID < 1 || seen[sc.ID] {
			continue
		}
		if !slices.Contains(domain.PodcastVoices, sc.Voice) {
			sc.Voice = domain.VoiceCharon
		}
		seen[sc.ID] = true
		valid = append(valid, sc)
	}
	if len(valid) == 0 {
		return nil, errors.New("model returned no usable scripts")
	}
	return valid, nil
}

func (s *podcastService) Random(ctx context.Context) (*entity.Podcast, error) {
	date := domain.DateKey(s.now())
	if err := s.EnsureDaily(ctx, date); err != nil {
		return nil, err
	}

	p, err := s.dm.Podcast().Random(ctx, date)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: no podcast for %s", domain.ErrNotFound, date)
	}
	return p, nil
}

func (s *podcastService) ByVoice(ctx context.Context, voice string) (*entity.Podcast, error) {
	if !slices.Contains(domain.PodcastVoices, voice) {
		return nil, fmt.Errorf("%w: unknown voice %q", domain.ErrInvalidArgument, voice)
	}

	date := domain.DateKey(s.now())
	if err := s.EnsureDaily(ctx, date); err != nil {
		return nil, err
	}

	p, err := s.dm.Podcast().GetByVoice(ctx, date, voice)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: no %s podcast for %s", domain.ErrNotFound, voice, date)
	}
	return p, nil
}

// Regenerate drops the scripts and audio of date and builds them again.
func (s *podcastService) Regenerate(ctx context.Context, date string) error {
	podcasts, err := s.dm.Podcast().ListByDate(ctx, date)
	if err != nil {
		return err
	}
	for _, p := range podcasts {
		if err := os.Remove(s.AudioFile(p)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to remove podcast audio", zap.String("file", s.AudioFile(p)), zap.Error(err))
		}
	}

	deleted, err := s.dm.Podcast().DeleteByDate(ctx, date)
	if err != nil {
		return err
	}
	s.logger.Info("deleted podcasts", zap.String("date", date), zap.Int64("count", deleted))

	return s.EnsureDaily(ctx, date)
}
