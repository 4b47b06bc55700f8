package database

import (
	"context"
	"fmt"

	"github.com/ccradio/rotation-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db            *DB
	mapRepo       contract.MapRepo
	horoscopeRepo contract.HoroscopeRepo
	jobRepo       contract.JobRepo
	podcastRepo   contract.PodcastRepo
	duelRepo      contract.DuelRepo
	tipRepo       contract.TipRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := repoInstancesWithConn(db.conn)
	i.db = db
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		mapRepo:       newMapRepo(db),
		horoscopeRepo: newHoroscopeRepo(db),
		jobRepo:       newJobRepo(db),
		podcastRepo:   newPodcastRepo(db),
		duelRepo:      newDuelRepo(db),
		tipRepo:       newTipRepo(db),
	}
}

func (i *instance) Map() contract.MapRepo {
	return i.mapRepo
}

func (i *instance) Horoscope() contract.HoroscopeRepo {
	return i.horoscopeRepo
}

func (i *instance) Job() contract.JobRepo {
	return i.jobRepo
}

func (i *instance) Podcast() contract.PodcastRepo {
	return i.podcastRepo
}

func (i *instance) Duel() contract.DuelRepo {
	return i.duelRepo
}

func (i *instance) Tip() contract.TipRepo {
	return i.tipRepo
}

// WithTransaction executes a function within a database transaction.
// The DataManager passed to fn is bound to the transaction and must not be
// used after fn returns.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
