package noaa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ngmaloney/oahu-surf/internal/httpcache"
	"github.com/ngmaloney/oahu-surf/internal/models"
)

// DefaultTideURL is the CO-OPS data getter endpoint
const DefaultTideURL = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"

// ErrAPI is wrapped by errors reported in the body of a CO-OPS response
var ErrAPI = errors.New("NOAA API error")

// NOAATideClient implements TideClient using the NOAA CO-OPS API
type NOAATideClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTideClient creates a new NOAA tide client. A nil httpClient uses a
// client with a 30 second timeout.
func NewTideClient(baseURL string, httpClient *http.Client) *NOAATideClient {
	if baseURL == "" {
		baseURL = DefaultTideURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &NOAATideClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GetTidePredictions retrieves high/low predictions for a date range
func (c *NOAATideClient) GetTidePredictions(ctx context.Context, stationID string, startDate, endDate time.Time) ([]models.TideExtremum, httpcache.Source, error) {
	params := url.Values{}
	params.Add("begin_date", startDate.Format("20060102"))
	params.Add("end_date", endDate.Format("20060102"))
	params.Add("station", stationID)
	params.Add("product", "predictions")
	params.Add("datum", "MLLW")        // Mean Lower Low Water
	params.Add("time_zone", "lst_ldt") // Local standard/daylight time
	params.Add("interval", "hilo")     // High and low tides only
	params.Add("units", "english")     // Feet
	params.Add("application", "OahuSurf")
	params.Add("format", "json")

	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, httpcache.Source{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, httpcache.Source{}, fmt.Errorf("failed to fetch tide data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, httpcache.Source{}, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var tideResp tideResponse
	if err := json.NewDecoder(resp.Body).Decode(&tideResp); err != nil {
		return nil, httpcache.Source{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if tideResp.Error != nil {
		return nil, httpcache.Source{}, fmt.Errorf("%w: %s", ErrAPI, tideResp.Error.Message)
	}

	extrema := make([]models.TideExtremum, 0, len(tideResp.Predictions))
	for _, pred := range tideResp.Predictions {
		kind := models.TideKind(pred.Type)
		if kind != models.TideHigh && kind != models.TideLow {
			continue
		}
		if _, err := time.Parse(models.TideTimeLayout, pred.Time); err != nil {
			continue // Skip invalid times
		}

		extrema = append(extrema, models.TideExtremum{
			Timestamp: pred.Time,
			Height:    pred.Height,
			Kind:      kind,
		})
	}

	return extrema, httpcache.SourceOf(resp), nil
}

// Internal types for NOAA CO-OPS API responses

type tideResponse struct {
	Predictions []struct {
		Time   string `json:"t"`
		Height string `json:"v"`    // NOAA returns this as string
		Type   string `json:"type"` // "H" or "L"
	} `json:"predictions"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}
