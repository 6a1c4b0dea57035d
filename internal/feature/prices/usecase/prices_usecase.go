package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"price_service/internal/feature/prices/domain/entity"
)

const (
	// FineRange / FineInterval は最新価格の取得に使う細かいウィンドウです。
	// 市場が閉まっていても直近のデータが得られるよう、過去2日分の1分足を取得します。
	FineRange    = "2d"
	FineInterval = "1m"

	// CoarseRange / CoarseInterval は分足が空だった場合のフォールバックウィンドウです。
	CoarseRange    = "1d"
	CoarseInterval = "1d"

	// batchMaxConcurrency は一括取得時に同時実行する上流リクエスト数の上限です。
	batchMaxConcurrency = 4
)

// MarketRepository は株価データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	// GetChart は指定されたウィンドウの価格バーを時系列順で返します。
	// データが存在しない場合はエラーではなく空スライスを返します。
	GetChart(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error)
	// GetQuote は銘柄の詳細情報を取得します。
	GetQuote(ctx context.Context, symbol string) (*entity.QuoteSummary, error)
}

// pricesUsecase は株価データ操作のユースケースを定義します。
type pricesUsecase struct {
	market MarketRepository
}

// NewPricesUsecase はpricesUsecaseの新しいインスタンスを生成します。
func NewPricesUsecase(market MarketRepository) *pricesUsecase {
	return &pricesUsecase{market: market}
}

// LatestBar は指定された銘柄の直近の価格バーを取得します。
// まず1分足（過去2日）を照会し、空の場合は日足（過去1日）にフォールバックします。
// どちらのウィンドウにもデータがない場合はErrNoDataを返します。
// プロバイダー呼び出し自体の失敗はそのまま返します（ErrNoDataとは区別される）。
func (pu *pricesUsecase) LatestBar(ctx context.Context, symbol string) (entity.PriceBar, error) {
	sym := strings.ToUpper(symbol)

	bars, err := pu.market.GetChart(ctx, sym, FineRange, FineInterval)
	if err != nil {
		return entity.PriceBar{}, err
	}
	if len(bars) == 0 {
		// 分足が空の場合は日足にフォールバック
		bars, err = pu.market.GetChart(ctx, sym, CoarseRange, CoarseInterval)
		if err != nil {
			return entity.PriceBar{}, err
		}
	}
	if len(bars) == 0 {
		return entity.PriceBar{}, ErrNoData
	}

	// 最新のデータポイントを返す
	return bars[len(bars)-1], nil
}

// BatchLatest は複数銘柄の直近価格バーをまとめて取得します。
// 各銘柄の取得は独立しており、1銘柄の失敗が他の銘柄やリクエスト全体を
// 失敗させることはありません。成功はresultsに、失敗（ErrNoData・プロバイダー
// エラーの両方）はメッセージとしてfailuresに、いずれも大文字化した銘柄コードを
// キーとして格納されます。
func (pu *pricesUsecase) BatchLatest(ctx context.Context, symbols []string) (map[string]entity.PriceBar, map[string]string, error) {
	results := make(map[string]entity.PriceBar)
	failures := make(map[string]string)

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(batchMaxConcurrency)

	for _, s := range symbols {
		sym := strings.ToUpper(s)
		g.Go(func() error {
			bar, err := pu.LatestBar(ctx, sym)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[sym] = err.Error()
				return nil
			}
			results[sym] = bar
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return results, failures, nil
}

// QuoteDetail は銘柄の詳細情報と直近の価格バーを取得します。
// 価格バーの欠落（ErrNoData）は許容され、バーはnilで返されます。
// 詳細情報の取得失敗、またはErrNoData以外の価格取得エラーはそのまま返します。
func (pu *pricesUsecase) QuoteDetail(ctx context.Context, symbol string) (*entity.QuoteSummary, *entity.PriceBar, error) {
	sym := strings.ToUpper(symbol)

	summary, err := pu.market.GetQuote(ctx, sym)
	if err != nil {
		return nil, nil, err
	}

	bar, err := pu.LatestBar(ctx, sym)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			// 価格データがなくても詳細情報のみで応答する
			return summary, nil, nil
		}
		return nil, nil, err
	}
	return summary, &bar, nil
}
