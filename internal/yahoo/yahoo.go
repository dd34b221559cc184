package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/etfgrowth/analyzer/internal/model"
)

// FinanceClient provides methods for fetching financial data from the Yahoo
// Finance chart API. It wraps an HTTP client and converts the raw wire format
// into the application's price-series and dividend-event types.
//
// All dates in returned series are expressed in the configured market
// timezone so that range filtering and year grouping agree with the rest of
// the engine.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
	location   *time.Location
}

// NewFinanceClient creates a new Yahoo Finance client.
//
// Parameters:
//   - baseURL: root of the chart API, e.g. "https://query1.finance.yahoo.com".
//     Tests point this at a local httptest server.
//   - location: the canonical market timezone for returned dates
func NewFinanceClient(baseURL string, location *time.Location) *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		location:   location,
	}
}

// PriceHistory fetches the daily adjusted-close price history for a symbol
// over [start, end] inclusive.
//
// Adjusted closes are preferred; days where Yahoo returns no adjusted value
// fall back to the raw close, and days with neither are skipped. An empty
// series (rather than an error) is returned when Yahoo reports no data for
// the symbol, so callers can distinguish "unknown ticker" from a transport
// failure.
func (c *FinanceClient) PriceHistory(ctx context.Context, symbol string, start, end time.Time) (model.PriceSeries, error) {
	resp, err := c.queryChart(ctx, symbol, start, end, false)
	if err != nil {
		return model.PriceSeries{}, err
	}
	return c.parseSeries(symbol, resp)
}

// DividendHistory fetches the dividend payments for a symbol over
// [start, end]. The chart API returns dividends as an unordered map keyed by
// timestamp; the result is sorted ascending by date. An empty slice means no
// dividends were paid in the range.
func (c *FinanceClient) DividendHistory(ctx context.Context, symbol string, start, end time.Time) ([]model.DividendEvent, error) {
	resp, err := c.queryChart(ctx, symbol, start, end, true)
	if err != nil {
		return nil, err
	}

	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}

	events := make([]model.DividendEvent, 0, len(resp.Chart.Result[0].Events.Dividends))
	for _, d := range resp.Chart.Result[0].Events.Dividends {
		events = append(events, model.DividendEvent{
			Date:   time.Unix(d.Date, 0).In(c.location),
			Amount: d.Amount,
		})
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })

	return events, nil
}

// parseSeries converts a raw chart response into an ordered PriceSeries.
// Validates that the timestamp and close arrays are present and of matching
// length. A response with no result object yields an empty series.
func (c *FinanceClient) parseSeries(symbol string, resp Response) (model.PriceSeries, error) {
	if len(resp.Chart.Result) == 0 {
		return model.PriceSeries{Symbol: symbol}, nil
	}

	result := resp.Chart.Result[0]
	if len(result.Timestamp) == 0 {
		return model.PriceSeries{Symbol: symbol}, nil
	}
	if len(result.Indicators.Quote) == 0 {
		return model.PriceSeries{}, fmt.Errorf("no quote data returned for %s", symbol)
	}

	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return model.PriceSeries{}, fmt.Errorf("mismatched data lengths for %s", symbol)
	}

	var adjCloses []*float64
	if len(result.Indicators.Adjclose) > 0 {
		adjCloses = result.Indicators.Adjclose[0].Adjclose
		if len(adjCloses) != len(result.Timestamp) {
			return model.PriceSeries{}, fmt.Errorf("mismatched adjclose length for %s", symbol)
		}
	}

	points := make([]model.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		price := closes[i]
		if adjCloses != nil && adjCloses[i] != nil {
			price = adjCloses[i]
		}
		if price == nil {
			continue
		}
		points = append(points, model.PricePoint{
			Date:  time.Unix(ts, 0).In(c.location),
			Price: *price,
		})
	}

	return model.PriceSeries{Symbol: symbol, Points: points}, nil
}

// queryChart executes a date-range chart query. The end boundary is extended
// by one day because the chart API's period2 is exclusive while the engine's
// range is inclusive on both ends.
func (c *FinanceClient) queryChart(ctx context.Context, symbol string, start, end time.Time, withDividends bool) (Response, error) {
	u := fmt.Sprintf(
		"%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.baseURL,
		url.PathEscape(symbol),
		start.Unix(),
		end.AddDate(0, 0, 1).Unix(),
	)
	if withDividends {
		u += "&events=div"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Response{}, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	var response Response
	if err := json.Unmarshal(data, &response); err != nil {
		return Response{}, fmt.Errorf("decoding chart response for %s: %w", symbol, err)
	}

	// Yahoo reports unknown symbols through the error field with an HTTP 404.
	// Treat that as "no data" rather than a transport failure.
	if response.Chart.Error != nil && len(response.Chart.Result) == 0 {
		return Response{Chart: Chart{Result: nil}}, nil
	}

	return response, nil
}
