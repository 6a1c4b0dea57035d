package dto

// BatchPricesRequest はPOST /pricesのリクエストボディです。
// symbolsフィールドは必須で、文字列の配列でなければなりません。
type BatchPricesRequest struct {
	Symbols []string `json:"symbols" binding:"required"`
}

// BatchPricesResponse はPOST /pricesのレスポンスDTOです。
// Errorsは1件以上の銘柄が失敗した場合のみ出力されます。
type BatchPricesResponse struct {
	Success bool                 `json:"success"`
	Count   int                  `json:"count"`
	Data    map[string]PriceData `json:"data"`
	Errors  map[string]string    `json:"errors,omitempty"`
}

// BatchErrorResponse は一括取得リクエスト自体が失敗した場合のレスポンスDTOです。
type BatchErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
