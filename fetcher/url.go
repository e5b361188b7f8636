package fetcher

import (
	"fmt"
	"net/url"
	"strings"
)

// apiURL is the Yahoo Finance chart endpoint template. The five verbs are
// ticker, period1, period2, interval and events, in that order.
const apiURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s?period1=%d&period2=%d&interval=%s&events=%s"

// Event selects which category of historical data a request asks for.
type Event string

const (
	EventHistory   Event = "history"
	EventDividends Event = "div"
	EventSplits    Event = "split"
)

// Accepted sampling intervals for the chart API.
const (
	IntervalDaily   = "1d"
	IntervalWeekly  = "1wk"
	IntervalMonthly = "1mo"
)

// validIntervals is the closed set of intervals the API accepts from us.
// Order matters only for error messages.
var validIntervals = []string{IntervalDaily, IntervalWeekly, IntervalMonthly}

func isValidInterval(interval string) bool {
	for _, v := range validIntervals {
		if interval == v {
			return true
		}
	}
	return false
}

func intervalList() string {
	return strings.Join(validIntervals, ", ")
}

// CreateURL builds the request URL for one event kind from the fetcher's
// stored parameters. Pure formatting; validation is the caller's job.
func (f *Fetcher) CreateURL(event Event) string {
	return fmt.Sprintf(apiURL, url.PathEscape(f.Ticker), f.Start, f.End, f.Interval, event)
}
