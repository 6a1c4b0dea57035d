package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"price_service/internal/feature/prices/domain/entity"
	"price_service/internal/feature/prices/usecase"
)

// ErrProvider はモックと期待値の間で共有されるセンチネルエラーです。
var ErrProvider = errors.New("provider error")

// mockMarketRepository はMarketRepositoryインターフェースのモック実装です。
// BatchLatestが並行に呼び出すため、呼び出し記録はミューテックスで保護します。
type mockMarketRepository struct {
	GetChartFunc func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error)
	GetQuoteFunc func(ctx context.Context, symbol string) (*entity.QuoteSummary, error)

	mu            sync.Mutex
	GetChartCalls int
}

func (m *mockMarketRepository) GetChart(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
	m.mu.Lock()
	m.GetChartCalls++
	m.mu.Unlock()
	if m.GetChartFunc != nil {
		return m.GetChartFunc(ctx, symbol, rng, interval)
	}
	return nil, errors.New("GetChartFunc is not implemented")
}

func (m *mockMarketRepository) GetQuote(ctx context.Context, symbol string) (*entity.QuoteSummary, error) {
	if m.GetQuoteFunc != nil {
		return m.GetQuoteFunc(ctx, symbol)
	}
	return nil, errors.New("GetQuoteFunc is not implemented")
}

// TestPricesUsecase_LatestBar はフォールバックロジックとエラー分類をテストします。
func TestPricesUsecase_LatestBar(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2023, 1, 2, 15, 29, 0, 0, time.UTC)
	t2 := time.Date(2023, 1, 2, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		inputSymbol   string
		mockGetChart  func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error)
		expectedBar   entity.PriceBar
		expectedErr   error
		expectedCalls int
	}{
		{
			name:        "success: fine window has data, returns latest bar",
			inputSymbol: "AAPL",
			mockGetChart: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
				if symbol != "AAPL" {
					t.Errorf("expected symbol AAPL, got %s", symbol)
				}
				if rng != usecase.FineRange || interval != usecase.FineInterval {
					t.Errorf("expected fine window, got range=%s interval=%s", rng, interval)
				}
				return []entity.PriceBar{
					{Time: t1, Close: 153},
					{Time: t2, Close: 154.5},
				}, nil
			},
			expectedBar:   entity.PriceBar{Time: t2, Close: 154.5},
			expectedCalls: 1,
		},
		{
			name:        "success: empty fine window falls back to coarse window",
			inputSymbol: "AAPL",
			mockGetChart: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
				if rng == usecase.FineRange {
					return nil, nil
				}
				if rng != usecase.CoarseRange || interval != usecase.CoarseInterval {
					t.Errorf("expected coarse window, got range=%s interval=%s", rng, interval)
				}
				return []entity.PriceBar{{Time: t1, Close: 152}}, nil
			},
			expectedBar:   entity.PriceBar{Time: t1, Close: 152},
			expectedCalls: 2,
		},
		{
			name:        "success: lower-case symbol is upper-cased before the provider call",
			inputSymbol: "aapl",
			mockGetChart: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
				if symbol != "AAPL" {
					t.Errorf("expected symbol AAPL, got %s", symbol)
				}
				return []entity.PriceBar{{Time: t2, Close: 154.5}}, nil
			},
			expectedBar:   entity.PriceBar{Time: t2, Close: 154.5},
			expectedCalls: 1,
		},
		{
			name:        "not found: both windows empty",
			inputSymbol: "ZZZINVALID",
			mockGetChart: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
				return nil, nil
			},
			expectedErr:   usecase.ErrNoData,
			expectedCalls: 2,
		},
		{
			name:        "error: fine window provider failure is not treated as not found",
			inputSymbol: "AAPL",
			mockGetChart: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
				return nil, ErrProvider
			},
			expectedErr:   ErrProvider,
			expectedCalls: 1,
		},
		{
			name:        "error: coarse window provider failure propagates",
			inputSymbol: "AAPL",
			mockGetChart: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
				if rng == usecase.FineRange {
					return nil, nil
				}
				return nil, ErrProvider
			},
			expectedErr:   ErrProvider,
			expectedCalls: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &mockMarketRepository{GetChartFunc: tc.mockGetChart}
			uc := usecase.NewPricesUsecase(mockRepo)

			bar, err := uc.LatestBar(ctx, tc.inputSymbol)

			if !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
			if err == nil && bar != tc.expectedBar {
				t.Errorf("expected bar %+v, got %+v", tc.expectedBar, bar)
			}
			if mockRepo.GetChartCalls != tc.expectedCalls {
				t.Errorf("expected %d GetChart calls, got %d", tc.expectedCalls, mockRepo.GetChartCalls)
			}
		})
	}
}

// TestPricesUsecase_BatchLatest は銘柄ごとの分離と大文字化キーイングをテストします。
func TestPricesUsecase_BatchLatest(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2023, 1, 2, 15, 30, 0, 0, time.UTC)

	mockRepo := &mockMarketRepository{
		GetChartFunc: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
			switch symbol {
			case "AAPL":
				return []entity.PriceBar{{Time: t1, Close: 154.5}}, nil
			case "GOOGL":
				return nil, ErrProvider
			default:
				// どちらのウィンドウも空 → データなし
				return nil, nil
			}
		},
	}
	uc := usecase.NewPricesUsecase(mockRepo)

	results, failures, err := uc.BatchLatest(ctx, []string{"aapl", "GOOGL", "ZZZINVALID"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	// キーは大文字化される
	if bar, ok := results["AAPL"]; !ok {
		t.Error("expected results to contain AAPL")
	} else if bar.Close != 154.5 {
		t.Errorf("expected close 154.5, got %f", bar.Close)
	}

	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failures))
	}
	if failures["GOOGL"] != ErrProvider.Error() {
		t.Errorf("expected provider error message for GOOGL, got %q", failures["GOOGL"])
	}
	if failures["ZZZINVALID"] != usecase.ErrNoData.Error() {
		t.Errorf("expected no-data message for ZZZINVALID, got %q", failures["ZZZINVALID"])
	}
}

// TestPricesUsecase_BatchLatest_Empty は空リストで空のマップが返ることをテストします。
func TestPricesUsecase_BatchLatest_Empty(t *testing.T) {
	uc := usecase.NewPricesUsecase(&mockMarketRepository{})

	results, failures, err := uc.BatchLatest(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 || len(failures) != 0 {
		t.Errorf("expected empty maps, got %d results and %d failures", len(results), len(failures))
	}
}

// TestPricesUsecase_BatchLatest_DuplicateSymbols は大小文字違いの重複銘柄が
// 同一キーに集約されることをテストします。
func TestPricesUsecase_BatchLatest_DuplicateSymbols(t *testing.T) {
	t1 := time.Date(2023, 1, 2, 15, 30, 0, 0, time.UTC)

	mockRepo := &mockMarketRepository{
		GetChartFunc: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
			return []entity.PriceBar{{Time: t1, Close: 100}}, nil
		},
	}
	uc := usecase.NewPricesUsecase(mockRepo)

	results, failures, err := uc.BatchLatest(context.Background(), []string{"aapl", "AAPL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Errorf("expected duplicates to collapse into 1 result, got %d", len(results))
	}
	if len(failures) != 0 {
		t.Errorf("expected no failures, got %d", len(failures))
	}
}

// TestPricesUsecase_QuoteDetail は詳細情報取得と価格バー欠落の許容をテストします。
func TestPricesUsecase_QuoteDetail(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2023, 1, 2, 15, 30, 0, 0, time.UTC)
	name := "Apple Inc."

	testCases := []struct {
		name         string
		mockGetChart func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error)
		mockGetQuote func(ctx context.Context, symbol string) (*entity.QuoteSummary, error)
		expectBar    bool
		expectedErr  error
	}{
		{
			name: "success: summary and latest bar",
			mockGetChart: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
				return []entity.PriceBar{{Time: t1, Close: 154.5}}, nil
			},
			mockGetQuote: func(ctx context.Context, symbol string) (*entity.QuoteSummary, error) {
				return &entity.QuoteSummary{LongName: &name}, nil
			},
			expectBar: true,
		},
		{
			name: "success: missing price data is tolerated",
			mockGetChart: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
				return nil, nil
			},
			mockGetQuote: func(ctx context.Context, symbol string) (*entity.QuoteSummary, error) {
				return &entity.QuoteSummary{LongName: &name}, nil
			},
			expectBar: false,
		},
		{
			name: "error: quote fetch failure propagates",
			mockGetQuote: func(ctx context.Context, symbol string) (*entity.QuoteSummary, error) {
				return nil, ErrProvider
			},
			expectedErr: ErrProvider,
		},
		{
			name: "error: chart provider failure is not tolerated",
			mockGetChart: func(ctx context.Context, symbol, rng, interval string) ([]entity.PriceBar, error) {
				return nil, ErrProvider
			},
			mockGetQuote: func(ctx context.Context, symbol string) (*entity.QuoteSummary, error) {
				return &entity.QuoteSummary{LongName: &name}, nil
			},
			expectedErr: ErrProvider,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockRepo := &mockMarketRepository{
				GetChartFunc: tc.mockGetChart,
				GetQuoteFunc: tc.mockGetQuote,
			}
			uc := usecase.NewPricesUsecase(mockRepo)

			summary, bar, err := uc.QuoteDetail(ctx, "aapl")

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if err != nil {
				return
			}
			if summary == nil {
				t.Fatal("expected non-nil summary")
			}
			if tc.expectBar && bar == nil {
				t.Error("expected non-nil bar")
			}
			if !tc.expectBar && bar != nil {
				t.Errorf("expected nil bar, got %+v", bar)
			}
		})
	}
}
