package services

import (
	"context"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"testing"
)

func newTestPipeline(minScore int) *Pipeline {
	return NewPipeline(
		newTestRecencyFilter(7),
		NewScorer(testProfile()),
		NewApplyChannelResolver(&mockPageFetcher{err: errors.New("offline")}),
		minScore,
	)
}

func Test_Pipeline_DuplicateLinks_HigherScoredSurvivesOnce(t *testing.T) {

	pipeline := newTestPipeline(1)

	postings := []models.Posting{
		{Title: "Docker admin", Link: "https://x/1", Source: models.SourceNaukri},
		{Title: "DevOps Engineer", Snippet: "docker kubernetes", Link: "https://x/1", Source: models.SourceNaukri},
	}

	results := pipeline.Run(context.Background(), postings, map[string]struct{}{})

	assert.Len(t, results, 1)
	assert.Equal(t, "https://x/1", results[0].Link)
	assert.Equal(t, "DevOps Engineer", results[0].Title)
}

func Test_Pipeline_SeenPostingsAreExcluded(t *testing.T) {

	pipeline := newTestPipeline(1)

	postings := []models.Posting{
		{Title: "DevOps Engineer", Link: "https://x/1", Source: models.SourceNaukri},
	}
	seen := map[string]struct{}{"https://x/1": {}}

	results := pipeline.Run(context.Background(), postings, seen)
	assert.Empty(t, results)
}

func Test_Pipeline_SecondRunWithRecordedSeenStateIsEmpty(t *testing.T) {

	pipeline := newTestPipeline(1)

	postings := []models.Posting{
		{Title: "DevOps Engineer", Link: "https://x/1", Source: models.SourceNaukri},
		{Title: "Cloud Engineer", Link: "https://x/2", Source: models.SourceLinkedIn},
	}

	seen := map[string]struct{}{}
	first := pipeline.Run(context.Background(), postings, seen)
	assert.Len(t, first, 2)

	// the caller reports the results, then records their identifiers
	for _, posting := range first {
		seen[posting.Key()] = struct{}{}
	}

	second := pipeline.Run(context.Background(), postings, seen)
	assert.Empty(t, second)
}

func Test_Pipeline_OutputSortedByScoreDescending(t *testing.T) {

	pipeline := newTestPipeline(1)

	postings := []models.Posting{
		{Title: "Docker admin", Link: "https://x/1", Source: models.SourceNaukri},
		{Title: "DevOps Engineer Intern", Snippet: "docker kubernetes aws", Link: "https://x/2", Source: models.SourceNaukri},
		{Title: "Kubernetes operator", Link: "https://x/3", Source: models.SourceNaukri},
	}

	results := pipeline.Run(context.Background(), postings, map[string]struct{}{})

	scores := lo.Map(results, func(p models.AnnotatedPosting, _ int) int { return p.Score })
	assert.IsNonIncreasing(t, scores)
	assert.Equal(t, "https://x/2", results[0].Link)
}

func Test_Pipeline_TiesKeepOriginalRelativeOrder(t *testing.T) {

	pipeline := newTestPipeline(1)

	postings := []models.Posting{
		{Title: "Docker role A", Link: "https://x/1", Source: models.SourceNaukri},
		{Title: "Docker role B", Link: "https://x/2", Source: models.SourceNaukri},
	}

	results := pipeline.Run(context.Background(), postings, map[string]struct{}{})

	assert.Len(t, results, 2)
	assert.Equal(t, "https://x/1", results[0].Link)
	assert.Equal(t, "https://x/2", results[1].Link)
}

func Test_Pipeline_BelowThresholdExcluded(t *testing.T) {

	pipeline := newTestPipeline(1)

	// no profile terms and no source weight: scores exactly 0
	postings := []models.Posting{
		{Title: "Sales Manager", Link: "https://x/1", Source: models.SourceIndeed},
	}

	results := pipeline.Run(context.Background(), postings, map[string]struct{}{})
	assert.Empty(t, results)
}

func Test_Pipeline_StalePostingsExcluded(t *testing.T) {

	pipeline := newTestPipeline(1)

	postings := []models.Posting{
		{Title: "DevOps Engineer", Link: "https://x/1", Source: models.SourceNaukri, PostedText: "30 days ago"},
	}

	results := pipeline.Run(context.Background(), postings, map[string]struct{}{})
	assert.Empty(t, results)
}

func Test_Pipeline_PostingWithAllOptionalFieldsAbsentIsUsable(t *testing.T) {

	pipeline := newTestPipeline(0)

	results := pipeline.Run(context.Background(), []models.Posting{{}}, map[string]struct{}{})

	assert.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Score)
	assert.Equal(t, models.ExperienceUnknown, results[0].Experience)
	assert.Equal(t, models.ApplyExternalUnknown, results[0].ApplyChannel)
	assert.Equal(t, "|", results[0].Key())
}

func Test_Pipeline_IdentifierFallbackChain(t *testing.T) {

	withID := models.Posting{ID: "abc", Link: "https://x/1", Title: "T", Company: "C"}
	assert.Equal(t, "abc", withID.Key())

	withLink := models.Posting{Link: "https://x/1", Title: "T", Company: "C"}
	assert.Equal(t, "https://x/1", withLink.Key())

	composite := models.Posting{Title: "T", Company: "C"}
	assert.Equal(t, "T|C", composite.Key())
}
