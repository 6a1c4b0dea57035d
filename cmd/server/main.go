package main

import (
	"log"
	"log/slog"

	"price_service/internal/app/di"
	"price_service/internal/app/router"
	"price_service/internal/config"
	priceshandler "price_service/internal/feature/prices/transport/handler"
	"price_service/internal/feature/prices/usecase"
	"price_service/internal/platform/logger"
)

func main() {
	// 設定
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// ロガー
	logger.Init(cfg.LogLevel)

	// 外部API
	market := di.NewMarket()

	// Usecase
	pricesUC := usecase.NewPricesUsecase(market)

	// Handler
	pricesH := priceshandler.NewPriceHandler(pricesUC)

	// ルータ生成
	r := router.NewRouter(pricesH)

	slog.Info("starting price service", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
