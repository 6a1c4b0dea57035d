package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	priceshandler "price_service/internal/feature/prices/transport/handler"
	"price_service/internal/platform/http/handler"
)

// NewRouter は全エンドポイントを登録したginルータを生成します。
func NewRouter(prices *priceshandler.PriceHandler) *gin.Engine {
	r := gin.Default()

	// Webダッシュボードから直接呼ばれるためCORSを許可
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/health", handler.Health)
	// 単一銘柄の直近価格
	r.GET("/price/:symbol", prices.GetPriceHandler)
	// 複数銘柄の直近価格を一括取得
	r.POST("/prices", prices.GetPricesHandler)
	// 銘柄の詳細情報（時価総額、PER等）
	r.GET("/quote/:symbol", prices.GetQuoteHandler)

	return r
}
