package dto

// ErrorResponse は銘柄単位のエラーレスポンスDTOです。
type ErrorResponse struct {
	Error  string `json:"error"`
	Symbol string `json:"symbol,omitempty"`
}
