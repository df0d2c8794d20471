package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/avinsharma/job-scout/internal/events"
	"github.com/avinsharma/job-scout/internal/logger"
	"github.com/avinsharma/job-scout/internal/metrics"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
)

type seenRepository interface {
	Load(ctx context.Context) map[string]struct{}
	Save(ctx context.Context, keys map[string]struct{}) error
}

// Notifier delivers one formatted posting and reports success or failure.
// The runner consumes only that outcome to decide whether to mark the
// posting's identifier as seen.
type Notifier interface {
	Notify(ctx context.Context, posting models.AnnotatedPosting) error
}

// Runner owns the periodic scrape cycle: collect → pipeline → notify →
// persist seen identifiers. It also serves on-demand single-source scans
// requested through the event bus.
type Runner struct {
	bus             EventBus.Bus
	collector       *Collector
	pipeline        *Pipeline
	seen            seenRepository
	notifier        Notifier
	query           string
	scrapeInterval  time.Duration
	scanResultLimit int
}

func NewRunner(bus EventBus.Bus, collector *Collector, pipeline *Pipeline, seen seenRepository,
	notifier Notifier, query string, scrapeInterval time.Duration, scanResultLimit int) (*Runner, error) {

	if scrapeInterval <= 0 {
		return nil, errors.New("scrape interval must be greater than zero")
	}

	r := &Runner{
		bus:             bus,
		collector:       collector,
		pipeline:        pipeline,
		seen:            seen,
		notifier:        notifier,
		query:           query,
		scrapeInterval:  scrapeInterval,
		scanResultLimit: scanResultLimit,
	}

	if err := bus.Subscribe(events.ScanRequestedTopic, r.onScanRequested); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Runner) Run(ctx context.Context) {
	for {
		startTime := time.Now()
		log.Infof("running scrape cycle at %v", startTime)

		if err := r.RunCycle(ctx); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
				Errorf("scrape cycle finished with error: %v", err)
		}

		executionTime := time.Since(startTime)
		metrics.CycleDuration.Observe(executionTime.Seconds())
		log.Infof("scrape cycle ended after %v", executionTime)

		var sleepTime time.Duration
		if executionTime <= r.scrapeInterval {
			sleepTime = r.scrapeInterval - executionTime
		}

		log.Infof("next scrape cycle time is %v", time.Now().Add(sleepTime))

		select {
		case <-ctx.Done():
			return
		case <-time.After(sleepTime):
		}
	}
}

// RunCycle performs one full cycle. A posting's identifier is recorded as
// seen only after its notification was confirmed delivered; a failed delivery
// leaves the identifier unrecorded so the posting is retried next run. A
// failed final save is returned as the cycle's error: the next run may then
// show duplicates, which beats silently losing state inconsistency.
func (r *Runner) RunCycle(ctx context.Context) error {

	start := time.Now()
	postings := r.collector.Collect(ctx, r.query)
	metrics.CycleStepDuration.WithLabelValues("collect").Observe(time.Since(start).Seconds())
	log.Infof("collected %v raw postings", len(postings))

	seen := r.seen.Load(ctx)

	start = time.Now()
	results := r.pipeline.Run(ctx, postings, seen)
	metrics.CycleStepDuration.WithLabelValues("pipeline").Observe(time.Since(start).Seconds())
	log.Infof("%v new relevant postings after pipeline", len(results))

	delivered := 0
	for _, posting := range results {
		if err := r.notifier.Notify(ctx, posting); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
				Errorf("failed to deliver posting %v: %v", posting.Key(), err)
			continue
		}
		seen[posting.Key()] = struct{}{}
		delivered++
		metrics.ReportedPostingsCounter.Inc()
	}

	log.Infof("delivered %v postings", delivered)

	if err := r.seen.Save(ctx, seen); err != nil {
		return errors.Wrap(err, "persisting seen postings")
	}

	return nil
}

func (r *Runner) onScanRequested(event events.ScanRequested) {
	go r.runScan(event)
}

func (r *Runner) runScan(event events.ScanRequested) {

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	postings, err := r.collector.CollectFrom(ctx, event.Source, r.query)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeBoard).
			Errorf("on-demand scan of %v failed: %v", event.Source, err)
		r.bus.Publish(events.ScanCompletedTopic, events.ScanCompleted{
			ChatID: event.ChatID,
			Source: event.Source,
		})
		return
	}

	// on-demand results are an advisory view: nothing is excluded as seen and
	// nothing gets marked
	results := r.pipeline.Run(ctx, postings, map[string]struct{}{})
	if r.scanResultLimit > 0 && len(results) > r.scanResultLimit {
		results = results[:r.scanResultLimit]
	}

	r.bus.Publish(events.ScanCompletedTopic, events.ScanCompleted{
		ChatID:   event.ChatID,
		Source:   event.Source,
		Postings: results,
	})
}
