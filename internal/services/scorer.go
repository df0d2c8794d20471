package services

import (
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/samber/lo"
	"sort"
	"strings"
)

// Profile is the fixed resume profile the scorer runs against, passed in
// explicitly so tests and alternative deployments can build their own.
type Profile struct {
	RolePhrases   map[string]int
	SkillKeywords map[string]int
	InternBonus   int
	SourceWeights map[string]int
}

// Scorer computes an integer relevance score and the matched terms for a
// posting. Matching is plain substring over a lowercase blob: low precision,
// high recall, postings are human-reviewed downstream anyway.
type Scorer struct {
	profile Profile
}

func NewScorer(profile Profile) *Scorer {
	return &Scorer{profile: profile}
}

func (s *Scorer) Score(posting models.Posting) (int, []string) {

	blob := strings.ToLower(strings.Join([]string{
		posting.Title,
		posting.Company,
		posting.Snippet,
		posting.Location,
		posting.PostedText,
	}, " "))

	score := 0
	matched := map[string]struct{}{}

	for phrase, weight := range s.profile.RolePhrases {
		if strings.Contains(blob, phrase) {
			score += weight
			matched[phrase] = struct{}{}
		}
	}

	for keyword, weight := range s.profile.SkillKeywords {
		if strings.Contains(blob, keyword) {
			score += weight
			matched[keyword] = struct{}{}
		}
	}

	if strings.Contains(blob, "intern") {
		score += s.profile.InternBonus
		matched["intern"] = struct{}{}
	}

	score += s.profile.SourceWeights[strings.ToLower(string(posting.Source))]

	terms := lo.Keys(matched)
	sort.Strings(terms)

	return score, terms
}
