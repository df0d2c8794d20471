package services

import (
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"testing"
)

func testProfile() Profile {
	return Profile{
		RolePhrases: map[string]int{
			"devops engineer": 3,
			"cloud engineer":  3,
		},
		SkillKeywords: map[string]int{
			"docker":     1,
			"kubernetes": 1,
			"aws":        1,
		},
		InternBonus: 2,
		SourceWeights: map[string]int{
			"naukri":   1,
			"linkedin": 1,
		},
	}
}

func Test_Scorer_AnnotatesExampleCorrectly(t *testing.T) {

	scorer := NewScorer(testProfile())

	posting := models.Posting{
		Title:   "DevOps Engineer Intern",
		Company: "Acme",
		Snippet: "Looking for fresher with Docker and Kubernetes skills",
		Source:  models.SourceNaukri,
	}

	score, matched := scorer.Score(posting)

	// role 3 + docker 1 + kubernetes 1 + intern bonus 2 + naukri 1
	assert.Equal(t, 8, score)
	assert.Equal(t, []string{"devops engineer", "docker", "intern", "kubernetes"}, matched)
}

func Test_Scorer_AddingRolePhraseStrictlyIncreasesScore(t *testing.T) {

	scorer := NewScorer(testProfile())

	without := models.Posting{Title: "Backend Developer", Snippet: "docker"}
	with := without
	with.Snippet = "docker, cloud engineer"

	scoreWithout, _ := scorer.Score(without)
	scoreWith, _ := scorer.Score(with)

	assert.Greater(t, scoreWith, scoreWithout)
}

func Test_Scorer_IsPure(t *testing.T) {

	scorer := NewScorer(testProfile())

	posting := models.Posting{Title: "Cloud Engineer", Snippet: "aws kubernetes", Source: models.SourceLinkedIn}

	firstScore, firstMatched := scorer.Score(posting)
	secondScore, secondMatched := scorer.Score(posting)

	assert.Equal(t, firstScore, secondScore)
	assert.Equal(t, firstMatched, secondMatched)
}

func Test_Scorer_EmptyPostingScoresSourceWeightOnly(t *testing.T) {

	scorer := NewScorer(testProfile())

	score, matched := scorer.Score(models.Posting{})
	assert.Equal(t, 0, score)
	assert.Empty(t, matched)

	score, matched = scorer.Score(models.Posting{Source: models.SourceNaukri})
	assert.Equal(t, 1, score)
	assert.Empty(t, matched)
}

func Test_Scorer_MatchesSubstringsInsideWords(t *testing.T) {

	scorer := NewScorer(testProfile())

	// substring matching is deliberate: triage, not final filtering
	score, matched := scorer.Score(models.Posting{Snippet: "dockerization experience"})
	assert.Equal(t, 1, score)
	assert.Equal(t, []string{"docker"}, matched)
}
