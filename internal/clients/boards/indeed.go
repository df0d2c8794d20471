package boards

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"net/url"
	"strings"
)

const indeedBaseURL = "https://in.indeed.com"

type Indeed struct {
	client   *Client
	location string
}

func NewIndeed(client *Client, location string) *Indeed {
	return &Indeed{client: client, location: location}
}

func (i *Indeed) Source() models.Source {
	return models.SourceIndeed
}

func (i *Indeed) Fetch(ctx context.Context, query string) ([]models.Posting, error) {

	params := url.Values{}
	params.Set("q", query)
	params.Set("l", i.location)

	doc, err := i.client.fetchDocument(ctx, indeedBaseURL+"/jobs?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching indeed listings: %w", err)
	}

	var postings []models.Posting

	doc.Find("div.job_seen_beacon").Each(func(_ int, listing *goquery.Selection) {

		title := strings.TrimSpace(listing.Find("h2.jobTitle").First().Text())
		company := strings.TrimSpace(listing.Find("span.companyName").First().Text())
		href, hasLink := listing.Find("a").First().Attr("href")

		if title == "" || company == "" || !hasLink {
			return
		}

		snippet := strings.TrimSpace(listing.Find("div.job-snippet").First().Text())
		postedText := strings.TrimSpace(listing.Find("span.date").First().Text())

		postings = append(postings, models.Posting{
			Title:      title,
			Company:    company,
			Snippet:    snippet,
			PostedText: postedText,
			Link:       indeedBaseURL + href,
			Source:     models.SourceIndeed,
		})
	})

	return postings, nil
}
