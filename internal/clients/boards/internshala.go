package boards

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"net/url"
	"strings"
)

const internshalaBaseURL = "https://internshala.com"

type Internshala struct {
	client   *Client
	location string
}

func NewInternshala(client *Client, location string) *Internshala {
	return &Internshala{client: client, location: location}
}

func (i *Internshala) Source() models.Source {
	return models.SourceInternshala
}

func (i *Internshala) Fetch(ctx context.Context, query string) ([]models.Posting, error) {

	params := url.Values{}
	params.Set("q", query)
	params.Set("location", i.location)

	doc, err := i.client.fetchDocument(ctx, internshalaBaseURL+"/internships?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetching internshala listings: %w", err)
	}

	var postings []models.Posting

	doc.Find("div.individual_internship").Each(func(_ int, listing *goquery.Selection) {

		title := strings.TrimSpace(listing.Find("h3.heading_4_5").First().Text())
		company := strings.TrimSpace(listing.Find("p.company_name").First().Text())
		href, hasLink := listing.Find("a.view_detail_button").First().Attr("href")

		if title == "" || company == "" || !hasLink {
			return
		}

		postedText := strings.TrimSpace(listing.Find(".posted_by_container").First().Text())

		postings = append(postings, models.Posting{
			Title:      title,
			Company:    company,
			PostedText: postedText,
			Link:       internshalaBaseURL + href,
			Source:     models.SourceInternshala,
		})
	})

	return postings, nil
}
