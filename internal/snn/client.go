package snn

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ngmaloney/oahu-surf/internal/httpcache"
	"github.com/ngmaloney/oahu-surf/internal/models"
)

// DefaultURL is the report page
const DefaultURL = "https://www.surfnewsnetwork.com/"

// Client fetches and parses the surf report page
type Client struct {
	pageURL    string
	proxyURL   string
	httpClient *http.Client
}

// NewClient creates a report client. proxyURL is an optional prefix to which
// the query-escaped page URL is appended. A nil httpClient uses a client with
// a 30 second timeout.
func NewClient(pageURL, proxyURL string, httpClient *http.Client) *Client {
	if pageURL == "" {
		pageURL = DefaultURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		pageURL:    pageURL,
		proxyURL:   proxyURL,
		httpClient: httpClient,
	}
}

func (c *Client) requestURL() string {
	if c.proxyURL == "" {
		return c.pageURL
	}
	return c.proxyURL + url.QueryEscape(c.pageURL)
}

// GetReport fetches the page and extracts the report. The returned source
// reports whether the body came from the offline cache.
func (c *Client) GetReport(ctx context.Context) (*models.Report, httpcache.Source, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(), nil)
	if err != nil {
		return nil, httpcache.Source{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, httpcache.Source{}, fmt.Errorf("failed to fetch surf report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, httpcache.Source{}, fmt.Errorf("surf report returned status %d", resp.StatusCode)
	}

	report, err := ParseHTML(resp.Body)
	if err != nil {
		return nil, httpcache.Source{}, err
	}

	return report, httpcache.SourceOf(resp), nil
}
