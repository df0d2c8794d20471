package services

import (
	"context"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/avinsharma/job-scout/internal/logger"
	"github.com/avinsharma/job-scout/internal/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SourceAdapter is what every board client must look like to the collector:
// a thin fetch+parse returning normalized postings for one site.
type SourceAdapter interface {
	Source() models.Source
	Fetch(ctx context.Context, query string) ([]models.Posting, error)
}

// Collector fans in all configured adapters. An adapter failure contributes
// zero postings and is logged; it never aborts the whole run.
type Collector struct {
	adapters []SourceAdapter
}

func NewCollector(adapters ...SourceAdapter) *Collector {
	return &Collector{adapters: adapters}
}

func (c *Collector) Collect(ctx context.Context, query string) []models.Posting {

	var postings []models.Posting

	for _, adapter := range c.adapters {
		fetched, err := adapter.Fetch(ctx, query)
		if err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeBoard).
				Errorf("failed to fetch postings from %v: %v", adapter.Source(), err)
			continue
		}
		metrics.CollectedPostingsCounter.WithLabelValues(string(adapter.Source())).
			Add(float64(len(fetched)))
		postings = append(postings, fetched...)
	}

	return postings
}

func (c *Collector) CollectFrom(ctx context.Context, source models.Source, query string) ([]models.Posting, error) {

	for _, adapter := range c.adapters {
		if adapter.Source() != source {
			continue
		}
		fetched, err := adapter.Fetch(ctx, query)
		if err != nil {
			return nil, errors.Wrapf(err, "fetching postings from %v", source)
		}
		metrics.CollectedPostingsCounter.WithLabelValues(string(source)).
			Add(float64(len(fetched)))
		return fetched, nil
	}

	return nil, errors.Errorf("no adapter configured for source %v", source)
}
