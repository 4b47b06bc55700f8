package service

import (
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"go.uber.org/zap"
)

type Instance struct {
	Map       contract.MapService
	Horoscope contract.HoroscopeService
	Job       contract.JobService
	Podcast   contract.PodcastService
	Duel      contract.DuelService
	Tip       contract.TipService
}

// NewInstance builds every service. text and speech may be nil when AI is
// not configured; the AI-backed services then report domain.ErrAIDisabled.
func NewInstance(dm contract.DataManager, text contract.TextGenerator, speech contract.SpeechSynthesizer, audioDir string, logger *zap.Logger) *Instance {
	return &Instance{
		Map:       newMapService(dm, logger.Named("map")),
		Horoscope: newHoroscopeService(dm, text, logger.Named("horoscope")),
		Job:       newJobService(dm, text, logger.Named("job")),
		Podcast:   newPodcastService(dm, text, speech, audioDir, logger.Named("podcast")),
		Duel:      newDuelService(dm, logger.Named("duel")),
		Tip:       newTipService(dm),
	}
}
