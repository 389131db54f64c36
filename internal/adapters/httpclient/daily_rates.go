package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Ejo3h9612/currencyDemo/internal/domain"
)

const dateKey = "Date"

// DailyRatesClient fetches the daily foreign-exchange open-data feed.
// The feed is a JSON array of per-day objects whose keys are "Date" plus
// pair names ("USD/NTD", "USD/JPY", ...), all values encoded as strings.
type DailyRatesClient struct {
	http *http.Client
	url  string
	pair string
}

func (c *DailyRatesClient) FetchDailyRates(ctx context.Context) ([]domain.Observation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily rates request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstreamFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %s", domain.ErrUpstreamFetch, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", domain.ErrUpstreamFetch, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty response body", domain.ErrUpstreamFetch)
	}

	var rows []map[string]string
	if err = json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPayloadDecode, err)
	}

	observations := make([]domain.Observation, 0, len(rows))
	for _, row := range rows {
		observations = append(observations, domain.Observation{
			Date: row[dateKey],
			Rate: row[c.pair],
		})
	}
	return observations, nil
}

func NewDailyRatesClient(httpClient *http.Client, url string, pair string) *DailyRatesClient {
	return &DailyRatesClient{http: httpClient, url: url, pair: pair}
}
