package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/ccradio/rotation-bot/internal/domain"
	"github.com/ccradio/rotation-bot/internal/domain/contract"
	"github.com/ccradio/rotation-bot/internal/domain/entity"
	"go.uber.org/zap"
)

type duelService struct {
	dm     contract.DataManager
	roll   func() int
	logger *zap.Logger
}

func newDuelService(dm contract.DataManager, logger *zap.Logger) *duelService {
	return &duelService{
		dm:     dm,
		roll:   func() int { return rand.IntN(domain.DuelMaxRoll) + 1 },
		logger: logger,
	}
}

// Duel rolls for both members and records the result for each of them in
// one transaction.
func (s *duelService) Duel(ctx context.Context, guildID, challengerID, opponentID string) (*entity.DuelResult, error) {
	if strings.TrimSpace(challengerID) == "" || strings.TrimSpace(opponentID) == "" {
		return nil, fmt.Errorf("%w: both duelists are required", domain.ErrInvalidArgument)
	}
	if challengerID == opponentID {
		return nil, fmt.Errorf("%w: cannot duel yourself", domain.ErrInvalidArgument)
	}

	result := &entity.DuelResult{
		ChallengerRoll: s.roll(),
		OpponentRoll:   s.roll(),
	}
	switch {
	case result.ChallengerRoll > result.OpponentRoll:
		result.Outcome = entity.DuelWin
	case result.ChallengerRoll < result.OpponentRoll:
		result.Outcome = entity.DuelLoss
	default:
		result.Outcome = entity.DuelDraw
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		challenger, err := loadDuelRecord(ctx, tx, guildID, challengerID)
		if err != nil {
			return err
		}
		opponent, err := loadDuelRecord(ctx, tx, guildID, opponentID)
		if err != nil {
			return err
		}

		switch result.Outcome {
		case entity.DuelWin:
			challenger.Wins++
			opponent.Losses++
		case entity.DuelLoss:
			challenger.Losses++
			opponent.Wins++
		default:
			challenger.Draws++
			opponent.Draws++
		}

		if err := tx.Duel().Upsert(ctx, challenger); err != nil {
			return err
		}
		if err := tx.Duel().Upsert(ctx, opponent); err != nil {
			return err
		}

		result.Challenger = challenger
		result.Opponent = opponent
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record duel: %w", err)
	}

	s.logger.Debug("duel resolved",
		zap.String("guild_id", guildID),
		zap.String("challenger", challengerID),
		zap.String("opponent", opponentID),
		zap.String("outcome", string(result.Outcome)),
	)
	return result, nil
}

// Stats returns an empty record for members who never fought.
func (s *duelService) Stats(ctx context.Context, guildID, userID string) (*entity.DuelRecord, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user is required", domain.ErrInvalidArgument)
	}
	return loadDuelRecord(ctx, s.dm, guildID, userID)
}

func (s *duelService) Top(ctx context.Context, limit int) ([]*entity.DuelRecord, error) {
	if limit <= 0 || limit > domain.MaxDuelLeaderboard {
		limit = domain.MaxDuelLeaderboard
	}
	return s.dm.Duel().Top(ctx, limit)
}

func loadDuelRecord(ctx context.Context, dm contract.DataManager, guildID, userID string) (*entity.DuelRecord, error) {
	rec, err := dm.Duel().Get(ctx, entity.DuelKey(userID, guildID))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return entity.NewDuelRecord(userID, guildID), nil
	}
	return rec, nil
}
