// Package dto defines request and response shapes for the prices HTTP API.
package dto

// PriceData は1銘柄分の直近価格のレスポンスDTOです。
type PriceData struct {
	Price     float64 `json:"price"`     // 直近の終値
	Open      float64 `json:"open"`      // 始値
	High      float64 `json:"high"`      // 高値
	Low       float64 `json:"low"`       // 安値
	Volume    int64   `json:"volume"`    // 出来高
	Timestamp string  `json:"timestamp"` // バーの時刻（RFC3339）
}

// PriceResponse は単一銘柄エンドポイントのレスポンスDTOです。
type PriceResponse struct {
	Symbol    string  `json:"symbol"` // 銘柄コード（大文字）
	Price     float64 `json:"price"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Volume    int64   `json:"volume"`
	Timestamp string  `json:"timestamp"`
}
