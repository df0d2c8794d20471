package notifier

import (
	"fmt"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"html"
	"strings"
	"unicode/utf8"
)

const snippetMaxLen = 800

func relevanceLabel(score int) string {
	switch {
	case score >= 6:
		return "🔴 High match"
	case score >= 3:
		return "🟠 Good match"
	default:
		return "🟢 Possible match"
	}
}

// FormatPosting renders one annotated posting as a Telegram HTML message.
// All free-text fields are escaped; the snippet is length-bounded.
func FormatPosting(posting models.AnnotatedPosting) string {

	title := posting.Title
	if title == "" {
		title = "Untitled"
	}
	company := posting.Company
	if company == "" {
		company = "N/A"
	}
	location := posting.Location
	if location == "" {
		location = "N/A"
	}

	snippet := posting.Snippet
	if len(snippet) > snippetMaxLen {
		// cut on a rune boundary, Telegram rejects invalid UTF-8
		cut := snippetMaxLen
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
		snippet = snippet[:cut]
	}

	matches := strings.Join(posting.MatchedTerms, ", ")
	if matches == "" {
		matches = "—"
	}

	experience := posting.Experience
	if experience == "" {
		experience = models.ExperienceUnknown
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", html.EscapeString(title))
	fmt.Fprintf(&b, "%s — %s\n", html.EscapeString(company), html.EscapeString(location))
	fmt.Fprintf(&b, "<i>%s</i> • %s\n\n", html.EscapeString(string(posting.Source)), html.EscapeString(posting.PostedText))
	if snippet != "" {
		fmt.Fprintf(&b, "%s\n\n", html.EscapeString(snippet))
	}
	fmt.Fprintf(&b, "<b>Relevance:</b> %s (score %d)\n", relevanceLabel(posting.Score), posting.Score)
	fmt.Fprintf(&b, "<b>Matched:</b> %s\n", html.EscapeString(matches))
	fmt.Fprintf(&b, "<b>Experience:</b> %s\n", html.EscapeString(string(experience)))
	fmt.Fprintf(&b, "<b>How to apply:</b> %s\n", html.EscapeString(string(posting.ApplyChannel)))

	if posting.Link != "" {
		fmt.Fprintf(&b, "\n↪ <a href=\"%s\">View / Apply</a>", html.EscapeString(posting.Link))
	}

	return b.String()
}
