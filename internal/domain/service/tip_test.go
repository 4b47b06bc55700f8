package service

import (
	"context"
	"testing"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_tipService_Create(t *testing.T) {
	tests := []struct {
		name      string
		tip       *entity.Tip
		buildMock func(mocks allMocks)
		wantErr   error
	}{
		{
			name: "Should trim and create",
			tip:  &entity.Tip{Category: " 맵 ", Keyword: "화산심장", Content: " 폭발 주의 "},
			buildMock: func(mocks allMocks) {
				mocks.mockTipRepo.EXPECT().
					Create(gomock.Any(), &entity.Tip{Category: "맵", Keyword: "화산심장", Content: "폭발 주의"}).
					DoAndReturn(func(_ context.Context, tip *entity.Tip) error {
						tip.ID = 7
						return nil
					}).Times(1)
			},
		},
		{
			name:    "Should require content",
			tip:     &entity.Tip{Category: "맵", Keyword: "화산심장", Content: "  "},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "Should require keyword",
			tip:     &entity.Tip{Category: "맵", Content: "x"},
			wantErr: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			err := newTipService(m.mockDataManager).Create(context.Background(), tt.tip)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), tt.tip.ID)
		})
	}
}

func Test_tipService_Delete(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTipService(m.mockDataManager)

	m.mockTipRepo.EXPECT().Delete(gomock.Any(), int64(1)).Return(true, nil).Times(1)
	m.mockTipRepo.EXPECT().Delete(gomock.Any(), int64(2)).Return(false, nil).Times(1)
	m.mockTipRepo.EXPECT().Delete(gomock.Any(), int64(3)).Return(false, assert.AnError).Times(1)

	require.NoError(t, s.Delete(context.Background(), 1))
	require.ErrorIs(t, s.Delete(context.Background(), 2), domain.ErrNotFound)
	require.ErrorIs(t, s.Delete(context.Background(), 3), assert.AnError)
}

func Test_tipService_Random(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newTipService(m.mockDataManager)
	tip := &entity.Tip{ID: 1, Keyword: "화산심장"}

	m.mockTipRepo.EXPECT().Random(gomock.Any(), "화산").Return(tip, nil).Times(1)
	m.mockTipRepo.EXPECT().Random(gomock.Any(), "").Return(nil, nil).Times(1)

	got, err := s.Random(context.Background(), " 화산 ")
	require.NoError(t, err)
	assert.Equal(t, tip, got)

	_, err = s.Random(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
