package service

import (
	"context"
	"testing"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type allMocks struct {
	mockDataManager   *mocks.MockDataManager
	mockMapRepo       *mocks.MockMapRepo
	mockHoroscopeRepo *mocks.MockHoroscopeRepo
	mockJobRepo       *mocks.MockJobRepo
	mockPodcastRepo   *mocks.MockPodcastRepo
	mockDuelRepo      *mocks.MockDuelRepo
	mockTipRepo       *mocks.MockTipRepo
	mockText          *mocks.MockTextGenerator
	mockSpeech        *mocks.MockSpeechSynthesizer
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	mapRepo := mocks.NewMockMapRepo(ctrl)
	dm.EXPECT().Map().Return(mapRepo).AnyTimes()

	horoscopeRepo := mocks.NewMockHoroscopeRepo(ctrl)
	dm.EXPECT().Horoscope().Return(horoscopeRepo).AnyTimes()

	jobRepo := mocks.NewMockJobRepo(ctrl)
	dm.EXPECT().Job().Return(jobRepo).AnyTimes()

	podcastRepo := mocks.NewMockPodcastRepo(ctrl)
	dm.EXPECT().Podcast().Return(podcastRepo).AnyTimes()

	duelRepo := mocks.NewMockDuelRepo(ctrl)
	dm.EXPECT().Duel().Return(duelRepo).AnyTimes()

	tipRepo := mocks.NewMockTipRepo(ctrl)
	dm.EXPECT().Tip().Return(tipRepo).AnyTimes()

	// transactions run inline against the same mocks
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		}).AnyTimes()

	m = allMocks{
		mockDataManager:   dm,
		mockMapRepo:       mapRepo,
		mockHoroscopeRepo: horoscopeRepo,
		mockJobRepo:       jobRepo,
		mockPodcastRepo:   podcastRepo,
		mockDuelRepo:      duelRepo,
		mockTipRepo:       tipRepo,
		mockText:          mocks.NewMockTextGenerator(ctrl),
		mockSpeech:        mocks.NewMockSpeechSynthesizer(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, m.mockText, m.mockSpeech, t.TempDir(), zaptest.NewLogger(t))
	require.NotNil(t, instance)

	return
}
