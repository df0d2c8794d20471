package services

import (
	"context"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"time"
)

type seenCleanupRepository interface {
	RemoveOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// SeenCleaner prunes seen-state entries past the retention window once a day,
// keeping the store from growing without bound. Retention must be configured
// well beyond the recency window so no posting still eligible by recency can
// ever be re-reported.
type SeenCleaner struct {
	seen            seenCleanupRepository
	cron            *cron.Cron
	retentionInDays int
}

func NewSeenCleaner(seen seenCleanupRepository, retentionInDays int) (*SeenCleaner, error) {

	if retentionInDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	sc := &SeenCleaner{
		seen:            seen,
		cron:            cron.New(),
		retentionInDays: retentionInDays,
	}

	_, err := sc.cron.AddFunc("0 0 * * *", sc.cleanOldEntries)
	if err != nil {
		return nil, err
	}

	sc.cron.Start()
	log.Infof("seen cleaner started, retention in days: %d", sc.retentionInDays)
	return sc, nil
}

func (sc *SeenCleaner) Stop() {
	sc.cron.Stop()
}

func (sc *SeenCleaner) cleanOldEntries() {
	cutoff := time.Now().Add(-time.Duration(sc.retentionInDays) * 24 * time.Hour)
	rowsAffected, err := sc.seen.RemoveOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Errorf("Failed to clean old seen entries: %v", err)
	} else {
		log.Infof("Old seen entries were cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
