package dto

// QuoteInfoResponse はGET /quote/:symbolのレスポンスDTOです。
// プロバイダーが報告しなかったフィールドはゼロ値ではなくnullとして
// 出力する必要があるため、任意フィールドはすべてポインタ型です。
type QuoteInfoResponse struct {
	Symbol               string   `json:"symbol"`
	CurrentPrice         *float64 `json:"currentPrice"`
	Timestamp            *string  `json:"timestamp"`
	Name                 *string  `json:"name"`
	Currency             *string  `json:"currency"`
	Exchange             *string  `json:"exchange"`
	MarketCap            *int64   `json:"marketCap"`
	Volume               *int64   `json:"volume"`
	AverageVolume        *int64   `json:"averageVolume"`
	PERatio              *float64 `json:"peRatio"`
	ForwardPE            *float64 `json:"forwardPE"`
	DividendYield        *float64 `json:"dividendYield"`
	FiftyTwoWeekHigh     *float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow      *float64 `json:"fiftyTwoWeekLow"`
	FiftyDayAverage      *float64 `json:"fiftyDayAverage"`
	TwoHundredDayAverage *float64 `json:"twoHundredDayAverage"`
}
