package repositories

import (
	"context"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/avinsharma/job-scout/internal/logger"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"time"
)

type SeenPostings struct {
	db *gorm.DB
}

func NewSeenPostingsRepository(db *gorm.DB) *SeenPostings {
	return &SeenPostings{db: db}
}

// Load returns the set of identifiers already reported in past runs. A missing
// or unreadable store yields an empty set, never an error: availability wins
// over strict loss-prevention here, the worst case is a duplicate notification.
func (s *SeenPostings) Load(ctx context.Context) map[string]struct{} {

	var seen []models.SeenPosting
	if err := s.db.WithContext(ctx).Find(&seen).Error; err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load seen postings, treating as empty: %v", err)
		return map[string]struct{}{}
	}

	keys := make(map[string]struct{}, len(seen))
	for _, posting := range seen {
		keys[posting.Key] = struct{}{}
	}
	return keys
}

// Save persists the full identifier set in one transaction. Identifiers
// already present keep their original ReportedAt so retention pruning still
// sees their true age.
func (s *SeenPostings) Save(ctx context.Context, keys map[string]struct{}) error {

	if len(keys) == 0 {
		return nil
	}

	now := time.Now().UTC()
	entries := make([]models.SeenPosting, 0, len(keys))
	for key := range keys {
		entries = append(entries, models.SeenPosting{Key: key, ReportedAt: now})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			CreateInBatches(entries, 200).Error
	})
}

func (s *SeenPostings) RemoveOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.SeenPosting{}, "reported_at < ?", cutoff)
	return res.RowsAffected, res.Error
}
