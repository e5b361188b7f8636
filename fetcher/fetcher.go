// Package fetcher retrieves historical price, dividend and split data for a
// ticker from the Yahoo Finance chart API and normalizes the response into a
// row-oriented table with columns Date, Open, High, Low, Close, Volume.
package fetcher

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// userAgent is sent on every request. Yahoo rejects requests that do not
// carry a recognized browser-like client identity.
const userAgent = "Mozilla/4.0 (compatible; MSIE 6.0; Windows NT 5.2; .NET CLR 1.0.3705;)"

// ErrInvalidInterval reports an interval outside the accepted enumeration.
// It is returned before any network call is made.
var ErrInvalidInterval = errors.New("invalid interval")

// Fetcher queries historical data for one ticker over one time range. Fields
// are fixed at construction; fetching a different range or ticker means
// constructing a new Fetcher. A Fetcher is safe for concurrent use because
// nothing mutates it after New returns.
type Fetcher struct {
	Client   *http.Client
	Ticker   string
	Start    int64
	End      int64
	Interval string
}

// New creates a Fetcher for ticker between start and end, given as UNIX
// seconds. Fractional timestamps are truncated, never rounded: the API
// rejects time parameters that are not integers. An end of zero or less means
// "now", evaluated here and not at package load, so every instance gets a
// fresh default. An empty interval defaults to daily.
func New(ticker string, start, end float64, interval string) *Fetcher {
	if end <= 0 {
		end = float64(time.Now().Unix())
	}
	if interval == "" {
		interval = IntervalDaily
	}
	return &Fetcher{
		Client:   &http.Client{},
		Ticker:   strings.ToUpper(ticker),
		Start:    int64(start),
		End:      int64(end),
		Interval: interval,
	}
}

// GetHistorical returns the historical price table for the fetcher's range.
func (f *Fetcher) GetHistorical() (*Table, error) {
	return f.get(EventHistory)
}

// GetDividends returns the historical dividends table for the fetcher's range.
func (f *Fetcher) GetDividends() (*Table, error) {
	return f.get(EventDividends)
}

// GetSplits returns the historical stock splits table for the fetcher's range.
func (f *Fetcher) GetSplits() (*Table, error) {
	return f.get(EventSplits)
}

func (f *Fetcher) get(event Event) (*Table, error) {
	if !isValidInterval(f.Interval) {
		return nil, fmt.Errorf("%w %q: valid intervals are %s", ErrInvalidInterval, f.Interval, intervalList())
	}

	req, err := http.NewRequest(http.MethodGet, f.CreateURL(event), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", event, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d, body: %s", event, resp.StatusCode, string(body))
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("chart api error: %s", chart.Chart.Error.Description)
	}

	return newTable(&chart)
}
