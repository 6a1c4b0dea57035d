package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"price_service/internal/feature/prices/domain/entity"
	"price_service/internal/feature/prices/usecase"
	"price_service/internal/platform/externalapi/yahoo/dto"
)

// YahooMarket はYahoo Finance外部APIから株価データを取得するMarketRepository実装です。
type YahooMarket struct {
	cfg    Config
	client *http.Client
}

// YahooMarketがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*YahooMarket)(nil)

// NewYahooMarket は指定された設定とHTTPクライアントでYahooMarketの新しいインスタンスを生成します。
func NewYahooMarket(cfg Config, client *http.Client) *YahooMarket {
	return &YahooMarket{cfg: cfg, client: client}
}

// GetChart はYahoo Financeのchartエンドポイントから時系列株価データを取得し、
// entity.PriceBarのスライスとして返します。
//
// 上流が404を返した場合はエラーではなく空スライスを返します。
// （未知の銘柄は「データなし」として扱い、呼び出し側のフォールバックに委ねる）
func (y *YahooMarket) GetChart(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("range", rng)
	q.Set("interval", interval)

	// URLを生成
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", y.cfg.ChartBaseURL, url.PathEscape(symbol), q.Encode())

	// リクエストオブジェクトを作成
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	// リクエストを実行
	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// 銘柄が存在しない場合、Yahooは404を返す
	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	// JSONレスポンスをDTOにデコード
	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s", body.Chart.Error.Description)
	}
	if len(body.Chart.Result) == 0 {
		return nil, nil
	}

	result := body.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]

	bars := make([]entity.PriceBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// Yahooは欠損区間をnullで埋めるため、終値のない行はスキップ
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		bar := entity.PriceBar{
			Time:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			bar.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			bar.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			bar.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// GetQuote はYahoo Financeのquoteエンドポイントから銘柄の詳細情報を取得します。
// 上流が値を返さないフィールドはnilのまま返します。
func (y *YahooMarket) GetQuote(ctx context.Context, symbol string) (*entity.QuoteSummary, error) {
	q := url.Values{}
	q.Set("symbols", symbol)

	u := fmt.Sprintf("%s/v7/finance/quote?%s", y.cfg.QuoteBaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}

	var body dto.QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("yahoo: %s", body.QuoteResponse.Error.Description)
	}
	if len(body.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("yahoo: no quote data for %s", symbol)
	}

	r := body.QuoteResponse.Result[0]

	// ドメインエンティティに変換
	return &entity.QuoteSummary{
		LongName:             r.LongName,
		ShortName:            r.ShortName,
		Currency:             r.Currency,
		Exchange:             r.FullExchangeName,
		MarketCap:            r.MarketCap,
		Volume:               r.RegularMarketVolume,
		AverageVolume:        r.AverageDailyVolume3Month,
		TrailingPE:           r.TrailingPE,
		ForwardPE:            r.ForwardPE,
		DividendYield:        r.DividendYield,
		FiftyTwoWeekHigh:     r.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:      r.FiftyTwoWeekLow,
		FiftyDayAverage:      r.FiftyDayAverage,
		TwoHundredDayAverage: r.TwoHundredDayAverage,
	}, nil
}
