package models

import (
	"errors"
	"time"
)

type Source string

const (
	SourceLinkedIn    Source = "linkedin"
	SourceIndeed      Source = "indeed"
	SourceNaukri      Source = "naukri"
	SourceInternshala Source = "internshala"
)

func AllSources() []Source {
	return []Source{SourceLinkedIn, SourceIndeed, SourceNaukri, SourceInternshala}
}

func ToSource(s string) (Source, error) {
	switch s {
	case string(SourceLinkedIn):
		return SourceLinkedIn, nil
	case string(SourceIndeed):
		return SourceIndeed, nil
	case string(SourceNaukri):
		return SourceNaukri, nil
	case string(SourceInternshala):
		return SourceInternshala, nil
	default:
		return "", errors.New("invalid source")
	}
}

// Posting is the normalized record every board adapter produces. Every field
// except Source may be absent; downstream logic degrades instead of failing.
type Posting struct {
	ID         string
	Title      string
	Company    string
	Location   string
	Snippet    string
	PostedText string
	PostedAt   *time.Time
	Source     Source
	Link       string
}

// Key returns the dedup identity of the posting: ID when present, otherwise
// link, otherwise a title|company composite. The same chain is used both for
// in-run dedup and for recording an identifier as seen.
func (p Posting) Key() string {
	if p.ID != "" {
		return p.ID
	}
	if p.Link != "" {
		return p.Link
	}
	return p.Title + "|" + p.Company
}

// AnnotatedPosting is a Posting extended with one pipeline run's decisions.
// Immutable after annotation.
type AnnotatedPosting struct {
	Posting
	Score        int
	MatchedTerms []string
	Experience   ExperienceLevel
	ApplyChannel ApplyChannel
}
