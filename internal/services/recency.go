package services

import (
	"github.com/avinsharma/job-scout/internal/domain/models"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var daysAgoPattern = regexp.MustCompile(`(\d+)\s+day`)

var freshTokens = []string{"today", "just", "hour", "minute"}

// RecencyFilter decides whether a posting is fresh enough. A structured
// timestamp wins over free text; a posting with no temporal signal at all is
// included rather than silently dropped.
type RecencyFilter struct {
	windowDays int
	now        func() time.Time
}

func NewRecencyFilter(windowDays int) *RecencyFilter {
	return &RecencyFilter{windowDays: windowDays, now: time.Now}
}

func (f *RecencyFilter) IsRecent(posting models.Posting) bool {

	if posting.PostedAt != nil {
		cutoff := f.now().UTC().AddDate(0, 0, -f.windowDays)
		return !posting.PostedAt.Before(cutoff)
	}

	text := strings.ToLower(posting.PostedText)
	if text == "" {
		return true
	}

	if match := daysAgoPattern.FindStringSubmatch(text); match != nil {
		days, err := strconv.Atoi(match[1])
		if err == nil {
			return days <= f.windowDays
		}
	}

	for _, token := range freshTokens {
		if strings.Contains(text, token) {
			return true
		}
	}

	return true
}
