// Package di provides dependency injection factories for creating application components.
package di

import (
	"price_service/internal/platform/externalapi/yahoo"
	infrahttp "price_service/internal/platform/http"
)

// NewMarket creates a fully configured YahooMarket with HTTP client.
func NewMarket() *yahoo.YahooMarket {
	cfg := yahoo.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return yahoo.NewYahooMarket(cfg, httpClient)
}
