package noaa

import (
	"context"
	"time"

	"github.com/ngmaloney/oahu-surf/internal/httpcache"
	"github.com/ngmaloney/oahu-surf/internal/models"
)

// TideClient defines the interface for fetching tide data from NOAA CO-OPS
type TideClient interface {
	// GetTidePredictions retrieves high/low tide predictions for the inclusive
	// date range, in chronological order
	GetTidePredictions(ctx context.Context, stationID string, startDate, endDate time.Time) ([]models.TideExtremum, httpcache.Source, error)
}
