package fetcher

// chartResponse is the response structure from the Yahoo Finance chart API.
// The leaf arrays are decoded as pointer slices so that JSON nulls (holidays,
// suspended sessions) and missing keys survive as nils instead of zeroes.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []chartQuote `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// chartQuote holds the indicator series, aligned positionally with the
// timestamp array. Any of these keys may be absent from a response.
type chartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

func floatAt(s []*float64, i int) *float64 {
	if i >= len(s) {
		return nil
	}
	return s[i]
}

func intAt(s []*int64, i int) *int64 {
	if i >= len(s) {
		return nil
	}
	return s[i]
}
