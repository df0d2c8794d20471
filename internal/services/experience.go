package services

import (
	"github.com/avinsharma/job-scout/internal/domain/models"
	"regexp"
	"strconv"
	"strings"
)

type experienceRule struct {
	level   models.ExperienceLevel
	pattern *regexp.Regexp
}

// Ordered by priority: the first matching rule wins, categories are never
// combined, so "senior devops fresher" still classifies as Fresher/Entry.
var experienceRules = []experienceRule{
	{models.ExperienceFresher, regexp.MustCompile(`(?i)\b(fresher|entry level|entry-level|0-1 year|0-6 month|0-6 months|intern)\b`)},
	{models.ExperienceJunior, regexp.MustCompile(`(?i)\b(junior|associate|jr\.|0-2 years|1-2 years)\b`)},
	{models.ExperienceMid, regexp.MustCompile(`(?i)\b(2-5 years|2 years|3 years|4 years|mid[- ]level)\b`)},
	{models.ExperienceSenior, regexp.MustCompile(`(?i)\b(5\+ years|5 years|senior|lead|principal)\b`)},
}

var yearsPattern = regexp.MustCompile(`(\d+)\+?\s*[-–]?\s*(\d+)?\s*years?`)

// ClassifyExperience infers a coarse seniority bucket from the posting text.
// Pure function: same input, same output.
func ClassifyExperience(posting models.Posting) models.ExperienceLevel {

	text := strings.ToLower(posting.Title + " " + posting.Snippet)

	for _, rule := range experienceRules {
		if rule.pattern.MatchString(text) {
			return rule.level
		}
	}

	if match := yearsPattern.FindStringSubmatch(text); match != nil {
		years, err := strconv.Atoi(match[1])
		if err == nil {
			switch {
			case years <= 1:
				return models.ExperienceFresher
			case years <= 2:
				return models.ExperienceJunior
			case years <= 5:
				return models.ExperienceMid
			default:
				return models.ExperienceSenior
			}
		}
	}

	return models.ExperienceUnknown
}
