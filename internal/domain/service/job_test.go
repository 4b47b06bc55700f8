package service

import (
	"context"
	"testing"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

func Test_jobService_GetDaily(t *testing.T) {
	seeds := []string{"나이트", "전사", "암흑기사", "건브레이커", "백마도사"}
	picked := pick(seeds, "jobs:"+testDate, domain.DailyJobCount)
	cached := []*entity.JobRecommendation{{Date: testDate, JobName: "전사", Comment: "돌격"}}

	tests := []struct {
		name      string
		noAI      bool
		buildMock func(mocks allMocks)
		wantLen   int
		wantErr   error
		anyErr    bool
	}{
		{
			name: "Should return cached recommendations",
			buildMock: func(mocks allMocks) {
				mocks.mockJobRepo.EXPECT().ListRecommendations(gomock.Any(), testDate).Return(cached, nil).Times(1)
			},
			wantLen: 1,
		},
		{
			name: "Should generate three recommendations on a miss",
			buildMock: func(mocks allMocks) {
				stored := make([]*entity.JobRecommendation, 0, len(picked))
				for _, j := range picked {
					stored = append(stored, &entity.JobRecommendation{Date: testDate, JobName: j, Comment: "c"})
				}
				gomock.InOrder(
					mocks.mockJobRepo.EXPECT().ListRecommendations(gomock.Any(), testDate).Return(nil, nil),
					mocks.mockJobRepo.EXPECT().ListRecommendations(gomock.Any(), testDate).Return(nil, nil),
					mocks.mockJobRepo.EXPECT().ListRecommendations(gomock.Any(), testDate).Return(stored, nil),
				)
				mocks.mockJobRepo.EXPECT().ListSeeds(gomock.Any()).Return(seeds, nil).Times(1)
				mocks.mockText.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, prompt string) (string, error) {
						answer := "{"
						for i, j := range picked {
							assert.Contains(t, prompt, "- "+j)
							if i > 0 {
								answer += ","
							}
							answer += `"` + j + `": "c"`
						}
						return answer + "}", nil
					}).Times(1)
				mocks.mockJobRepo.EXPECT().SaveRecommendation(gomock.Any(), gomock.Any()).Return(nil).Times(len(picked))
			},
			wantLen: domain.DailyJobCount,
		},
		{
			name: "Should fail when the model ignores every job",
			buildMock: func(mocks allMocks) {
				mocks.mockJobRepo.EXPECT().ListRecommendations(gomock.Any(), testDate).Return(nil, nil).Times(2)
				mocks.mockJobRepo.EXPECT().ListSeeds(gomock.Any()).Return(seeds, nil).Times(1)
				mocks.mockText.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return(`{"없는직업": "c"}`, nil).Times(1)
			},
			anyErr: true,
		},
		{
			name: "Should fail when AI is disabled",
			noAI: true,
			buildMock: func(mocks allMocks) {
				mocks.mockJobRepo.EXPECT().ListRecommendations(gomock.Any(), testDate).Return(nil, nil).Times(2)
			},
			wantErr: domain.ErrAIDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			s := newJobService(m.mockDataManager, m.mockText, zaptest.NewLogger(t))
			if tt.noAI {
				s = newJobService(m.mockDataManager, nil, zaptest.NewLogger(t))
			}
			s.now = fixedNow

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			got, err := s.GetDaily(context.Background())
			if tt.anyErr {
				require.Error(t, err)
				return
			}
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func Test_jobService_WarmupOutlivesCallerCancel(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	m.mockJobRepo.EXPECT().ListRecommendations(gomock.Any(), testDate).
		DoAndReturn(func(ctx context.Context, _ string) ([]*entity.JobRecommendation, error) {
			assert.NoError(t, ctx.Err())
			return []*entity.JobRecommendation{{Date: testDate, JobName: "전사"}}, nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newJobService(m.mockDataManager, m.mockText, zaptest.NewLogger(t))
	require.NoError(t, s.Warmup(ctx, testDate))
}
