package notifier

import (
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
	"unicode/utf8"
)

func Test_FormatPosting_EscapesHtmlInFreeText(t *testing.T) {

	posting := models.AnnotatedPosting{
		Posting: models.Posting{
			Title:   "Senior <DevOps> Engineer",
			Company: "A&B Ltd",
			Snippet: "Work with <script>alert(1)</script>",
			Source:  models.SourceNaukri,
		},
		Score: 3,
	}

	message := FormatPosting(posting)

	assert.Contains(t, message, "Senior &lt;DevOps&gt; Engineer")
	assert.Contains(t, message, "A&amp;B Ltd")
	assert.NotContains(t, message, "<script>")
}

func Test_FormatPosting_MissingFieldsGetPlaceholders(t *testing.T) {

	message := FormatPosting(models.AnnotatedPosting{})

	assert.Contains(t, message, "Untitled")
	assert.Contains(t, message, "N/A — N/A")
	assert.Contains(t, message, "<b>Matched:</b> —")
	assert.Contains(t, message, "<b>Experience:</b> Unknown")
	assert.NotContains(t, message, "<a href")
}

func Test_FormatPosting_LongSnippetIsTruncated(t *testing.T) {

	posting := models.AnnotatedPosting{
		Posting: models.Posting{Snippet: strings.Repeat("a", 2000)},
	}

	message := FormatPosting(posting)
	assert.Contains(t, message, strings.Repeat("a", 800))
	assert.NotContains(t, message, strings.Repeat("a", 801))
}

func Test_FormatPosting_TruncationNeverSplitsARune(t *testing.T) {

	// multibyte characters straddle the cap, the cut must back up to a boundary
	posting := models.AnnotatedPosting{
		Posting: models.Posting{Snippet: strings.Repeat("a", 799) + strings.Repeat("🚀", 10)},
	}

	message := FormatPosting(posting)
	assert.True(t, utf8.ValidString(message))
	assert.Contains(t, message, strings.Repeat("a", 799))
	assert.NotContains(t, message, "🚀")
}

func Test_FormatPosting_RelevanceLabelBoundaries(t *testing.T) {

	assert.Equal(t, "🔴 High match", relevanceLabel(6))
	assert.Equal(t, "🟠 Good match", relevanceLabel(5))
	assert.Equal(t, "🟠 Good match", relevanceLabel(3))
	assert.Equal(t, "🟢 Possible match", relevanceLabel(2))
	assert.Equal(t, "🟢 Possible match", relevanceLabel(0))
}

func Test_FormatPosting_LinkRenderedAsAnchor(t *testing.T) {

	posting := models.AnnotatedPosting{
		Posting: models.Posting{Link: "https://example.com/jobs?id=1&ref=2"},
	}

	message := FormatPosting(posting)
	assert.Contains(t, message, `<a href="https://example.com/jobs?id=1&amp;ref=2">View / Apply</a>`)
}

func Test_FormatPosting_MatchedTermsJoined(t *testing.T) {

	posting := models.AnnotatedPosting{
		MatchedTerms: []string{"devops engineer", "docker", "kubernetes"},
	}

	message := FormatPosting(posting)
	assert.Contains(t, message, "<b>Matched:</b> devops engineer, docker, kubernetes")
}
