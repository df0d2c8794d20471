package services

import (
	"context"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/avinsharma/job-scout/internal/metrics"
	"sort"
)

// Pipeline turns a batch of raw postings into a ranked, deduplicated,
// annotated, unseen-only list. It has no side effects: reporting the results
// and persisting their identifiers is the caller's job, so that a delivery
// failure causes a retry on the next run instead of a silent drop.
type Pipeline struct {
	recency  *RecencyFilter
	scorer   *Scorer
	resolver *ApplyChannelResolver
	minScore int
}

func NewPipeline(recency *RecencyFilter, scorer *Scorer, resolver *ApplyChannelResolver, minScore int) *Pipeline {
	return &Pipeline{
		recency:  recency,
		scorer:   scorer,
		resolver: resolver,
		minScore: minScore,
	}
}

func (p *Pipeline) Run(ctx context.Context, postings []models.Posting, seen map[string]struct{}) []models.AnnotatedPosting {

	annotated := make([]models.AnnotatedPosting, 0, len(postings))
	for _, posting := range postings {
		if !p.recency.IsRecent(posting) {
			metrics.SuppressedPostingsCounter.WithLabelValues("stale").Inc()
			continue
		}
		annotated = append(annotated, p.annotate(ctx, posting))
	}

	// rank before dedup so the highest-scored duplicate survives; stable to
	// keep the original relative order among equal scores
	sort.SliceStable(annotated, func(i, j int) bool {
		return annotated[i].Score > annotated[j].Score
	})

	unique := make([]models.AnnotatedPosting, 0, len(annotated))
	byKey := make(map[string]struct{}, len(annotated))
	for _, posting := range annotated {
		key := posting.Key()
		if _, dup := byKey[key]; dup {
			metrics.SuppressedPostingsCounter.WithLabelValues("duplicate").Inc()
			continue
		}
		byKey[key] = struct{}{}
		unique = append(unique, posting)
	}

	results := make([]models.AnnotatedPosting, 0, len(unique))
	for _, posting := range unique {
		if _, wasSeen := seen[posting.Key()]; wasSeen {
			metrics.SuppressedPostingsCounter.WithLabelValues("seen").Inc()
			continue
		}
		if posting.Score < p.minScore {
			metrics.SuppressedPostingsCounter.WithLabelValues("low_score").Inc()
			continue
		}
		results = append(results, posting)
	}

	return results
}

func (p *Pipeline) annotate(ctx context.Context, posting models.Posting) models.AnnotatedPosting {

	score, matched := p.scorer.Score(posting)

	return models.AnnotatedPosting{
		Posting:      posting,
		Score:        score,
		MatchedTerms: matched,
		Experience:   ClassifyExperience(posting),
		ApplyChannel: p.resolver.Resolve(ctx, posting),
	}
}
