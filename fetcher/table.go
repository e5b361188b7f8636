package fetcher

import (
	"encoding/json"
	"fmt"
	"time"
)

// Row is one normalized observation. Date comes first; the remaining columns
// keep the API's indicator order. Numeric fields are pointers because the
// source may omit a whole series or null out single entries, and a missing
// value is not the same as zero.
type Row struct {
	Date   string   `json:"Date"`
	Open   *float64 `json:"Open"`
	High   *float64 `json:"High"`
	Low    *float64 `json:"Low"`
	Close  *float64 `json:"Close"`
	Volume *int64   `json:"Volume"`
}

// Table is an ordered sequence of rows in the chronological order the source
// returned them, with a fixed column set.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// ColumnNames is the fixed column order of every Table.
var ColumnNames = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// newTable normalizes a decoded chart response into a Table: one row per
// timestamp, pairing each timestamp with the indicator values at the same
// index. Missing indicator keys or short arrays leave fields nil.
func newTable(chart *chartResponse) (*Table, error) {
	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart response has no result")
	}
	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart response has no quote indicators")
	}
	quote := result.Indicators.Quote[0]

	rows := make([]Row, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		rows = append(rows, Row{
			Date:   time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Open:   floatAt(quote.Open, i),
			High:   floatAt(quote.High, i),
			Low:    floatAt(quote.Low, i),
			Close:  floatAt(quote.Close, i),
			Volume: intAt(quote.Volume, i),
		})
	}
	return &Table{Columns: ColumnNames, Rows: rows}, nil
}

// JSON returns the table serialized as a JSON string, with the column list
// alongside the rows so a consumer can reconstruct the table shape.
func (t *Table) JSON() (string, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("marshal table: %w", err)
	}
	return string(data), nil
}
