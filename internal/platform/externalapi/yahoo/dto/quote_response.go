package dto

// QuoteResponse represents the JSON response from the Yahoo Finance
// v7/finance/quote endpoint.
type QuoteResponse struct {
	QuoteResponse struct {
		Result []QuoteResult `json:"result"`
		Error  *APIError     `json:"error"`
	} `json:"quoteResponse"`
}

// QuoteResult carries the descriptive fields for one symbol. Yahoo omits any
// field it has no value for, so everything is a pointer.
type QuoteResult struct {
	Symbol                   string   `json:"symbol"`
	LongName                 *string  `json:"longName"`
	ShortName                *string  `json:"shortName"`
	Currency                 *string  `json:"currency"`
	FullExchangeName         *string  `json:"fullExchangeName"`
	MarketCap                *int64   `json:"marketCap"`
	RegularMarketVolume      *int64   `json:"regularMarketVolume"`
	AverageDailyVolume3Month *int64   `json:"averageDailyVolume3Month"`
	TrailingPE               *float64 `json:"trailingPE"`
	ForwardPE                *float64 `json:"forwardPE"`
	DividendYield            *float64 `json:"dividendYield"`
	FiftyTwoWeekHigh         *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow          *float64 `json:"fiftyTwoWeekLow"`
	FiftyDayAverage          *float64 `json:"fiftyDayAverage"`
	TwoHundredDayAverage     *float64 `json:"twoHundredDayAverage"`
}
