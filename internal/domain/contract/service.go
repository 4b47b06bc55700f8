package contract

//go:generate mockgen -source=service.go -destination=../../../mocks/service_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/ccradio/rotation-bot/internal/rotation"
)

// RotationClock is the read-only query surface of rotation.Clock.
type RotationClock interface {
	Maps() []rotation.Map
	Interval() time.Duration
	CurrentAndNext(t time.Time) rotation.Snapshot
	EnumerateFrom(t time.Time, count int) ([]rotation.Window, error)
	NextOccurrences(name string, t time.Time, count int) ([]rotation.Occurrence, error)
}

type MapService interface {
	SeedFromFile(ctx context.Context, path string) error
	LoadClock(ctx context.Context, interval time.Duration, epoch time.Time) (*rotation.Clock, error)
	List(ctx context.Context) ([]*entity.Map, error)
	Upsert(ctx context.Context, item *entity.Map) error
}

type HoroscopeService interface {
	GetDaily(ctx context.Context, sign string) (*entity.Horoscope, error)
	Warmup(ctx context.Context, date string) error
}

type JobService interface {
	GetDaily(ctx context.Context) ([]*entity.JobRecommendation, error)
	Warmup(ctx context.Context, date string) error
}

type PodcastService interface {
	EnsureDaily(ctx context.Context, date string) error
	Random(ctx context.Context) (*entity.Podcast, error)
	ByVoice(ctx context.Context, voice string) (*entity.Podcast, error)
	Regenerate(ctx context.Context, date string) error
	AudioFile(p *entity.Podcast) string
}

type DuelService interface {
	Duel(ctx context.Context, guildID, challengerID, opponentID string) (*entity.DuelResult, error)
	Stats(ctx context.Context, guildID, userID string) (*entity.DuelRecord, error)
	Top(ctx context.Context, limit int) ([]*entity.DuelRecord, error)
}

type TipService interface {
	List(ctx context.Context) ([]*entity.Tip, error)
	Create(ctx context.Context, tip *entity.Tip) error
	Delete(ctx context.Context, id int64) error
	Random(ctx context.Context, keyword string) (*entity.Tip, error)
}
