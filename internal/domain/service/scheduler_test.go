package service

import (
	"context"
	"testing"
	"time"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/rotation"
	"github.com/ccradio/rotation-bot/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type schedulerMocks struct {
	clock     *mocks.MockRotationClock
	horoscope *mocks.MockHoroscopeService
	job       *mocks.MockJobService
	podcast   *mocks.MockPodcastService
	announcer *mocks.MockAnnouncer
}

func newSchedulerTest(t *testing.T, withAnnouncer bool) (*Scheduler, schedulerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := schedulerMocks{
		clock:     mocks.NewMockRotationClock(ctrl),
		horoscope: mocks.NewMockHoroscopeService(ctrl),
		job:       mocks.NewMockJobService(ctrl),
		podcast:   mocks.NewMockPodcastService(ctrl),
		announcer: mocks.NewMockAnnouncer(ctrl),
	}

	svc := &Instance{Horoscope: m.horoscope, Job: m.job, Podcast: m.podcast}
	var s *Scheduler
	if withAnnouncer {
		s = NewScheduler(m.clock, svc, m.announcer, zaptest.NewLogger(t))
	} else {
		s = NewScheduler(m.clock, svc, nil, zaptest.NewLogger(t))
	}
	s.now = fixedNow
	return s, m
}

func TestScheduler_Warmup(t *testing.T) {
	s, m := newSchedulerTest(t, false)

	m.horoscope.EXPECT().Warmup(gomock.Any(), testDate).Return(domain.ErrAIDisabled).Times(1)
	m.job.EXPECT().Warmup(gomock.Any(), testDate).Return(nil).Times(1)
	m.podcast.EXPECT().EnsureDaily(gomock.Any(), testDate).Return(nil).Times(1)

	// a failing part does not stop the rest
	s.Warmup(context.Background())
}

func TestScheduler_Announce(t *testing.T) {
	s, m := newSchedulerTest(t, true)

	snap := rotation.Snapshot{
		Current: rotation.Current{Map: rotation.Map{Name: "화산심장"}, End: testNow.Add(90 * time.Minute)},
		Next:    rotation.Next{Map: rotation.Map{Name: "붉은 사막"}, Start: testNow.Add(90 * time.Minute)},
	}
	m.clock.EXPECT().CurrentAndNext(testNow.Add(boundarySlack)).Return(snap).Times(1)
	m.announcer.EXPECT().Announce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg string) error {
			assert.Contains(t, msg, "화산심장")
			assert.Contains(t, msg, "붉은 사막")
			return nil
		}).Times(1)

	s.Announce(context.Background())
}

func TestScheduler_StartStop(t *testing.T) {
	t.Run("should schedule announcements at the next boundary", func(t *testing.T) {
		s, m := newSchedulerTest(t, true)

		end := time.Now().Add(time.Hour)
		m.clock.EXPECT().CurrentAndNext(gomock.Any()).
			Return(rotation.Snapshot{Current: rotation.Current{End: end}}).Times(1)
		m.clock.EXPECT().Interval().Return(90 * time.Minute).Times(1)

		require.NoError(t, s.Start(context.Background()))
		assert.Len(t, s.cron.Jobs(), 2)
		s.Stop()
	})

	t.Run("should only warm up without an announcer", func(t *testing.T) {
		s, _ := newSchedulerTest(t, false)

		require.NoError(t, s.Start(context.Background()))
		assert.Len(t, s.cron.Jobs(), 1)
		s.Stop()
	})
}
