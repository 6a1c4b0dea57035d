// Package handler はpricesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"price_service/internal/feature/prices/domain/entity"
	"price_service/internal/feature/prices/transport/http/dto"
	"price_service/internal/feature/prices/usecase"
)

// PricesUsecase は株価データ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PricesUsecase interface {
	// LatestBar は銘柄の直近の価格バーを返します。データがない場合はusecase.ErrNoDataを返します。
	LatestBar(ctx context.Context, symbol string) (entity.PriceBar, error)
	// BatchLatest は複数銘柄の直近価格バーを銘柄ごとに独立して取得します。
	BatchLatest(ctx context.Context, symbols []string) (map[string]entity.PriceBar, map[string]string, error)
	// QuoteDetail は銘柄の詳細情報と（存在すれば）直近の価格バーを返します。
	QuoteDetail(ctx context.Context, symbol string) (*entity.QuoteSummary, *entity.PriceBar, error)
}

// PriceHandler は株価データのHTTPリクエストを処理します。
type PriceHandler struct {
	uc PricesUsecase
}

// NewPriceHandler は指定されたusecaseでPriceHandlerの新しいインスタンスを生成します。
func NewPriceHandler(uc PricesUsecase) *PriceHandler {
	return &PriceHandler{uc: uc}
}

// GetPriceHandler は単一銘柄の直近価格をJSONで返します。
//
// エンドポイント例:
// GET /price/AAPL
//
// データなしは404、プロバイダーエラーは500を返します。
func (h *PriceHandler) GetPriceHandler(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	slog.Info("fetching price", "symbol", symbol)

	bar, err := h.uc.LatestBar(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrNoData) {
			slog.Warn("no data found", "symbol", symbol)
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Symbol: symbol})
			return
		}
		slog.Error("failed to fetch price", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), Symbol: symbol})
		return
	}

	c.JSON(http.StatusOK, dto.PriceResponse{
		Symbol:    symbol,
		Price:     bar.Close,
		Open:      bar.Open,
		High:      bar.High,
		Low:       bar.Low,
		Volume:    bar.Volume,
		Timestamp: bar.Time.UTC().Format(time.RFC3339),
	})
}

// GetPricesHandler は複数銘柄の直近価格を一括で返します。
//
// リクエストボディ: {"symbols": ["AAPL", "GOOGL", ...]}
//
// 個々の銘柄の失敗はレスポンスのerrorsマップに格納され、リクエスト全体を
// 失敗させることはありません。ボディ不正のみ400を返します。
func (h *PriceHandler) GetPricesHandler(c *gin.Context) {
	var req dto.BatchPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("prices validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "symbols must be an array of strings"})
		return
	}

	slog.Info("fetching prices", "count", len(req.Symbols))

	results, failures, err := h.uc.BatchLatest(c.Request.Context(), req.Symbols)
	if err != nil {
		slog.Error("failed to fetch prices", "error", err)
		c.JSON(http.StatusInternalServerError, dto.BatchErrorResponse{Success: false, Error: err.Error()})
		return
	}

	// データをフォーマット
	data := make(map[string]dto.PriceData, len(results))
	for sym, bar := range results {
		data[sym] = dto.PriceData{
			Price:     bar.Close,
			Open:      bar.Open,
			High:      bar.High,
			Low:       bar.Low,
			Volume:    bar.Volume,
			Timestamp: bar.Time.UTC().Format(time.RFC3339),
		}
	}

	resp := dto.BatchPricesResponse{
		Success: true,
		Count:   len(data),
		Data:    data,
	}
	if len(failures) > 0 {
		resp.Errors = failures
	}

	slog.Info("fetched prices", "succeeded", len(data), "failed", len(failures))
	c.JSON(http.StatusOK, resp)
}

// GetQuoteHandler は銘柄の詳細情報（時価総額、PER等）をJSONで返します。
//
// エンドポイント例:
// GET /quote/AAPL
//
// 価格データの欠落は許容され、currentPrice/timestampはnullになります。
// 詳細情報自体の取得失敗は500を返します。
func (h *PriceHandler) GetQuoteHandler(c *gin.Context) {
	symbol := strings.ToUpper(c.Param("symbol"))
	slog.Info("fetching quote info", "symbol", symbol)

	summary, bar, err := h.uc.QuoteDetail(c.Request.Context(), symbol)
	if err != nil {
		slog.Error("failed to fetch quote info", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), Symbol: symbol})
		return
	}

	resp := dto.QuoteInfoResponse{
		Symbol:               symbol,
		Name:                 summary.DisplayName(),
		Currency:             summary.Currency,
		Exchange:             summary.Exchange,
		MarketCap:            summary.MarketCap,
		Volume:               summary.Volume,
		AverageVolume:        summary.AverageVolume,
		PERatio:              summary.TrailingPE,
		ForwardPE:            summary.ForwardPE,
		DividendYield:        summary.DividendYield,
		FiftyTwoWeekHigh:     summary.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:      summary.FiftyTwoWeekLow,
		FiftyDayAverage:      summary.FiftyDayAverage,
		TwoHundredDayAverage: summary.TwoHundredDayAverage,
	}
	if bar != nil {
		price := bar.Close
		ts := bar.Time.UTC().Format(time.RFC3339)
		resp.CurrentPrice = &price
		resp.Timestamp = &ts
	}

	c.JSON(http.StatusOK, resp)
}
