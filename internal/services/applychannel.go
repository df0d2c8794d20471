package services

import (
	"context"
	"fmt"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/avinsharma/job-scout/internal/logger"
	"github.com/avinsharma/job-scout/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"io"
	"net/http"
	"strings"
	"time"
)

// PageFetcher is the injectable capability behind the resolver's only network
// side effect, so channel resolution stays testable without live requests.
type PageFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

type HTTPPageFetcher struct {
	client *http.Client
}

func NewHTTPPageFetcher(timeout time.Duration) *HTTPPageFetcher {
	return &HTTPPageFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPPageFetcher) FetchText(ctx context.Context, url string) (string, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %v", err)
	}

	return string(body), nil
}

type applyRule struct {
	matches func(posting models.Posting) bool
	resolve func(ctx context.Context, posting models.Posting) (models.ApplyChannel, bool)
}

// ApplyChannelResolver infers how a user would apply from link shape and
// source identity. The label is a UX hint, not a guarantee; callers must
// treat it as advisory.
type ApplyChannelResolver struct {
	fetcher PageFetcher
	cache   *gocache.Cache
	rules   []applyRule
}

func NewApplyChannelResolver(fetcher PageFetcher) *ApplyChannelResolver {

	r := &ApplyChannelResolver{
		fetcher: fetcher,
		cache:   gocache.New(10*time.Minute, 20*time.Minute),
	}

	r.rules = []applyRule{
		{
			matches: func(p models.Posting) bool {
				return p.Source == models.SourceLinkedIn || strings.Contains(p.Link, "linkedin")
			},
			resolve: r.probeLinkedIn,
		},
		{
			matches: func(p models.Posting) bool {
				return p.Source == models.SourceInternshala || strings.Contains(p.Link, "internshala")
			},
			resolve: fixedChannel(models.ApplyViaInternshala),
		},
		{
			matches: func(p models.Posting) bool {
				return (p.Source == models.SourceIndeed || strings.Contains(p.Link, "indeed")) &&
					strings.Contains(strings.ToLower(p.Link), "apply")
			},
			resolve: fixedChannel(models.ApplyViaIndeed),
		},
		{
			matches: func(p models.Posting) bool {
				return p.Source == models.SourceNaukri || strings.Contains(p.Link, "naukri")
			},
			resolve: fixedChannel(models.ApplyViaNaukri),
		},
	}

	return r
}

// Resolve walks the rules in priority order; the first rule that both matches
// and decides wins. A matching rule may decline (the LinkedIn probe when the
// page carries no recognizable marker), in which case evaluation continues.
func (r *ApplyChannelResolver) Resolve(ctx context.Context, posting models.Posting) models.ApplyChannel {

	for _, rule := range r.rules {
		if !rule.matches(posting) {
			continue
		}
		if channel, ok := rule.resolve(ctx, posting); ok {
			return channel
		}
	}

	return models.ApplyExternalUnknown
}

func fixedChannel(channel models.ApplyChannel) func(context.Context, models.Posting) (models.ApplyChannel, bool) {
	return func(context.Context, models.Posting) (models.ApplyChannel, bool) {
		return channel, true
	}
}

// probeLinkedIn fetches the posting page and looks for the easy-apply marker.
// Fetch failure degrades to a link-text heuristic for this one posting; it
// never aborts the batch.
func (r *ApplyChannelResolver) probeLinkedIn(ctx context.Context, posting models.Posting) (models.ApplyChannel, bool) {

	if posting.Link == "" {
		return models.ApplyExternalLikely, true
	}

	if cached, found := r.cache.Get(posting.Link); found {
		verdict := cached.(linkedInVerdict)
		return verdict.channel, verdict.decided
	}

	start := time.Now()
	text, err := r.fetcher.FetchText(ctx, posting.Link)
	metrics.CycleStepDuration.WithLabelValues("apply_probe").Observe(time.Since(start).Seconds())

	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeProbe).
			Errorf("apply probe failed for %v, falling back to link heuristic: %v", posting.Link, err)
		if strings.Contains(strings.ToLower(posting.Link), "apply") {
			return models.ApplyEasyLikely, true
		}
		return models.ApplyExternalLikely, true
	}

	verdict := classifyLinkedInPage(text)
	if err := r.cache.Add(posting.Link, verdict, gocache.DefaultExpiration); err != nil {
		log.Debugf("failed to cache apply probe verdict: %v", err)
	}

	return verdict.channel, verdict.decided
}

type linkedInVerdict struct {
	channel models.ApplyChannel
	decided bool
}

func classifyLinkedInPage(text string) linkedInVerdict {

	lowered := strings.ToLower(text)

	if strings.Contains(lowered, "easy apply") || strings.Contains(lowered, "easy-apply") {
		return linkedInVerdict{models.ApplyEasyLinkedIn, true}
	}

	if strings.Contains(lowered, "apply on company site") || strings.Contains(lowered, "apply on company website") {
		return linkedInVerdict{models.ApplyExternalSite, true}
	}

	// page fetched fine but carries neither marker, let later rules decide
	return linkedInVerdict{"", false}
}
