package boards

import (
	"bytes"
	"context"
	"github.com/avinsharma/job-scout/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

type mockHTTPClient struct {
	respond  func(req *http.Request) (*http.Response, error)
	requests []*http.Request
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.requests = append(m.requests, req)
	return m.respond(req)
}

func htmlResponse(body []byte) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

func loadFixture(t *testing.T, name string) []byte {
	body, err := os.ReadFile("testdata/" + name)
	assert.NoError(t, err)
	return body
}

func newClientWith(httpClient HTTPClient) *Client {
	client := NewClient()
	client.SetHTTPClient(httpClient)
	return client
}

func Test_LinkedIn_ParsesGuestSearchCards(t *testing.T) {

	page := loadFixture(t, "linkedin_page.html")

	mock := &mockHTTPClient{respond: func(req *http.Request) (*http.Response, error) {
		if req.URL.Query().Get("start") == "0" {
			return htmlResponse(page), nil
		}
		return htmlResponse([]byte("<ul></ul>")), nil
	}}

	linkedIn := NewLinkedIn(newClientWith(mock), "India")

	postings, err := linkedIn.Fetch(context.Background(), "devops engineer")
	assert.NoError(t, err)
	assert.Len(t, postings, 2)

	first := postings[0]
	assert.Equal(t, "DevOps Engineer", first.Title)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Bengaluru, Karnataka, India", first.Location)
	assert.Equal(t, models.SourceLinkedIn, first.Source)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/devops-engineer-at-acme-4012345678", first.Link)
	assert.Equal(t, "2025-06-13", first.PostedText)
	if assert.NotNil(t, first.PostedAt) {
		assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), *first.PostedAt)
	}

	second := postings[1]
	assert.Equal(t, "Cloud Engineer Intern", second.Title)
	assert.Equal(t, "Just now", second.PostedText)
	assert.Nil(t, second.PostedAt)
}

func Test_LinkedIn_SendsQueryAndPagination(t *testing.T) {

	mock := &mockHTTPClient{respond: func(req *http.Request) (*http.Response, error) {
		return htmlResponse([]byte("<ul></ul>")), nil
	}}

	linkedIn := NewLinkedIn(newClientWith(mock), "India")

	_, err := linkedIn.Fetch(context.Background(), "devops engineer")
	assert.NoError(t, err)

	assert.Len(t, mock.requests, 1)
	query := mock.requests[0].URL.Query()
	assert.Equal(t, "devops engineer", query.Get("keywords"))
	assert.Equal(t, "India", query.Get("location"))
	assert.Equal(t, "0", query.Get("start"))
}

func Test_LinkedIn_PartialResultsSurviveSecondPageFailure(t *testing.T) {

	page := loadFixture(t, "linkedin_page.html")

	mock := &mockHTTPClient{respond: func(req *http.Request) (*http.Response, error) {
		if req.URL.Query().Get("start") == "0" {
			return htmlResponse(page), nil
		}
		return &http.Response{StatusCode: http.StatusTooManyRequests,
			Body: io.NopCloser(strings.NewReader(""))}, nil
	}}

	linkedIn := NewLinkedIn(newClientWith(mock), "India")

	postings, err := linkedIn.Fetch(context.Background(), "devops engineer")
	assert.NoError(t, err)
	assert.Len(t, postings, 2)
}

func Test_LinkedIn_ErrorStatusOnFirstPageFails(t *testing.T) {

	mock := &mockHTTPClient{respond: func(req *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusForbidden,
			Body: io.NopCloser(strings.NewReader(""))}, nil
	}}

	linkedIn := NewLinkedIn(newClientWith(mock), "India")

	_, err := linkedIn.Fetch(context.Background(), "devops engineer")
	assert.Error(t, err)
}

func Test_Internshala_ParsesListingsAndSkipsIncomplete(t *testing.T) {

	page := loadFixture(t, "internshala_listings.html")

	mock := &mockHTTPClient{respond: func(req *http.Request) (*http.Response, error) {
		return htmlResponse(page), nil
	}}

	internshala := NewInternshala(newClientWith(mock), "India")

	postings, err := internshala.Fetch(context.Background(), "devops")
	assert.NoError(t, err)

	// the listing without a company name is dropped
	assert.Len(t, postings, 2)

	first := postings[0]
	assert.Equal(t, "DevOps Internship", first.Title)
	assert.Equal(t, "Initech", first.Company)
	assert.Equal(t, "Posted 3 days ago", first.PostedText)
	assert.Equal(t, models.SourceInternshala, first.Source)
	assert.Equal(t, "https://internshala.com/internship/detail/devops-internship-in-pune-at-initech123", first.Link)
}

func Test_Client_SetsUserAgentHeader(t *testing.T) {

	mock := &mockHTTPClient{respond: func(req *http.Request) (*http.Response, error) {
		return htmlResponse([]byte("<html></html>")), nil
	}}

	internshala := NewInternshala(newClientWith(mock), "India")

	_, err := internshala.Fetch(context.Background(), "devops")
	assert.NoError(t, err)

	assert.Len(t, mock.requests, 1)
	assert.Contains(t, mock.requests[0].Header.Get("User-Agent"), "Mozilla/5.0")
}
