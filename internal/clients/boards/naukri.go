package boards

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"strings"
)

const naukriBaseURL = "https://www.naukri.com"

type Naukri struct {
	client *Client
}

func NewNaukri(client *Client) *Naukri {
	return &Naukri{client: client}
}

func (n *Naukri) Source() models.Source {
	return models.SourceNaukri
}

func (n *Naukri) Fetch(ctx context.Context, query string) ([]models.Posting, error) {

	slug := strings.ReplaceAll(strings.ToLower(query), " ", "-")

	doc, err := n.client.fetchDocument(ctx, fmt.Sprintf("%s/%s-jobs", naukriBaseURL, slug))
	if err != nil {
		return nil, fmt.Errorf("fetching naukri listings: %w", err)
	}

	var postings []models.Posting

	doc.Find("article.jobTuple").Each(func(_ int, listing *goquery.Selection) {

		titleTag := listing.Find("a.title").First()
		title := strings.TrimSpace(titleTag.Text())
		company := strings.TrimSpace(listing.Find("a.subTitle").First().Text())
		link, hasLink := titleTag.Attr("href")

		if title == "" || company == "" || !hasLink {
			return
		}

		snippet := strings.TrimSpace(listing.Find(".job-description").First().Text())
		postedText := strings.TrimSpace(listing.Find(".postedDate").First().Text())

		postings = append(postings, models.Posting{
			Title:      title,
			Company:    company,
			Snippet:    snippet,
			PostedText: postedText,
			Link:       link,
			Source:     models.SourceNaukri,
		})
	})

	return postings, nil
}
