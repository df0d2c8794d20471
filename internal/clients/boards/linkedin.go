package boards

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const linkedInBaseURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"

const linkedInPageSize = 25

// LinkedIn scrapes the guest-accessible job search endpoint. No session or
// auth is involved; pages that require login simply return fewer cards.
type LinkedIn struct {
	client     *Client
	location   string
	pagesLimit int
}

func NewLinkedIn(client *Client, location string) *LinkedIn {
	return &LinkedIn{client: client, location: location, pagesLimit: 2}
}

func (l *LinkedIn) Source() models.Source {
	return models.SourceLinkedIn
}

func (l *LinkedIn) Fetch(ctx context.Context, query string) ([]models.Posting, error) {

	var postings []models.Posting

	for page := 0; page < l.pagesLimit; page++ {

		params := url.Values{}
		params.Set("keywords", query)
		params.Set("location", l.location)
		params.Set("start", strconv.Itoa(page*linkedInPageSize))

		doc, err := l.client.fetchDocument(ctx, linkedInBaseURL+"?"+params.Encode())
		if err != nil {
			if len(postings) > 0 {
				return postings, nil
			}
			return nil, fmt.Errorf("fetching linkedin page %d: %w", page, err)
		}

		cards := doc.Find("li")
		if cards.Length() == 0 {
			break
		}

		cards.Each(func(_ int, card *goquery.Selection) {
			posting, ok := l.parseCard(card)
			if ok {
				postings = append(postings, posting)
			}
		})
	}

	return postings, nil
}

func (l *LinkedIn) parseCard(card *goquery.Selection) (models.Posting, bool) {

	title := strings.TrimSpace(card.Find(".base-search-card__title").First().Text())
	company := strings.TrimSpace(card.Find(".base-search-card__subtitle").First().Text())
	location := strings.TrimSpace(card.Find(".job-search-card__location").First().Text())
	link, _ := card.Find("a.base-card__full-link").First().Attr("href")

	if title == "" && company == "" && link == "" {
		return models.Posting{}, false
	}

	var postedAt *time.Time
	var postedText string

	if dateTag := card.Find("time").First(); dateTag.Length() > 0 {
		datetime, hasAttr := dateTag.Attr("datetime")
		if hasAttr {
			postedText = datetime
		} else {
			postedText = strings.TrimSpace(dateTag.Text())
		}
		if parsed, err := time.Parse("2006-01-02", datetime); hasAttr && err == nil {
			postedAt = &parsed
		}
	}

	id := link
	if id == "" {
		id = fmt.Sprintf("linkedin::%s::%s", title, company)
	}

	return models.Posting{
		ID:         id,
		Title:      title,
		Company:    company,
		Location:   location,
		Link:       link,
		Source:     models.SourceLinkedIn,
		PostedText: postedText,
		PostedAt:   postedAt,
	}, true
}
