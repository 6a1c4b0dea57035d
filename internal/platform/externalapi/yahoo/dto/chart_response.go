// Package dto defines data transfer objects for the Yahoo Finance API responses.
package dto

// ChartResponse represents the JSON response from the Yahoo Finance
// v8/finance/chart endpoint.
type ChartResponse struct {
	Chart struct {
		Result []ChartResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"chart"`
}

// ChartResult holds the time axis and the quote indicator arrays for one symbol.
// The arrays are index-aligned: Timestamp[i] corresponds to Quote[0].Close[i].
type ChartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []ChartQuote `json:"quote"`
	} `json:"indicators"`
}

// ChartQuote carries the OHLCV arrays. Yahoo pads missing intervals with
// nulls, hence the pointer element types.
type ChartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// APIError is the error object Yahoo embeds in a 200/4xx body.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}
