package contract

//go:generate mockgen -source=repo.go -destination=../../../mocks/repo_mock.go -package=mocks

import (
	"context"

	"github.com/ccradio/rotation-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Map() MapRepo
	Horoscope() HoroscopeRepo
	Job() JobRepo
	Podcast() PodcastRepo
	Duel() DuelRepo
	Tip() TipRepo
}

// MapRepo defines the contract for map repository
type MapRepo interface {
	List(ctx context.Context) ([]*entity.Map, error)
	Count(ctx context.Context) (int, error)
	Upsert(ctx context.Context, item *entity.Map) error
}

// HoroscopeRepo defines the contract for horoscope repository
type HoroscopeRepo interface {
	Get(ctx context.Context, date, sign string) (*entity.Horoscope, error)
	Save(ctx context.Context, h *entity.Horoscope) error
}

// JobRepo defines the contract for job seeds and daily job recommendations
type JobRepo interface {
	ListSeeds(ctx context.Context) ([]string, error)
	CountSeeds(ctx context.Context) (int, error)
	AddSeed(ctx context.Context, name string) error
	ListRecommendations(ctx context.Context, date string) ([]*entity.JobRecommendation, error)
	SaveRecommendation(ctx context.Context, rec *entity.JobRecommendation) error
}

// PodcastRepo defines the contract for podcast repository
type PodcastRepo interface {
	ListByDate(ctx context.Context, date string) ([]*entity.Podcast, error)
	Save(ctx context.Context, p *entity.Podcast) error
	Random(ctx context.Context, date string) (*entity.Podcast, error)
	GetByVoice(ctx context.Context, date, voice string) (*entity.Podcast, error)
	DeleteByDate(ctx context.Context, date string) (int64, error)
}

// DuelRepo defines the contract for duel stats repository
type DuelRepo interface {
	Get(ctx context.Context, userKey string) (*entity.DuelRecord, error)
	Upsert(ctx context.Context, rec *entity.DuelRecord) error
	Top(ctx context.Context, limit int) ([]*entity.DuelRecord, error)
}

// TipRepo defines the contract for tip repository
type TipRepo interface {
	List(ctx context.Context) ([]*entity.Tip, error)
	Create(ctx context.Context, tip *entity.Tip) error
	Delete(ctx context.Context, id int64) (bool, error)
	Random(ctx context.Context, keyword string) (*entity.Tip, error)
}
