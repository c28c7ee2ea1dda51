// Package usecase はスナップショット取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"stock_snapshot/internal/feature/snapshot/domain/entity"
)

// MarketRepository は株価データを取得するリポジトリのインターフェイスです。
// 外部 API の実装を抽象化します。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	ActiveStocks(ctx context.Context) (*entity.ActiveStocksReport, error)
	PriceSeries(ctx context.Context, symbol string, granularity entity.Granularity) (json.RawMessage, error)
}

// SnapshotWriter は結合結果の永続化先を抽象化します。
type SnapshotWriter interface {
	Write(ctx context.Context, snapshot *entity.Snapshot) error
	// Location はログ出力用の書き込み先です。
	Location() string
}

// SnapshotUsecase は最も活発な銘柄の取得、先頭銘柄の価格系列取得、結果の保存を順番に行います。
type SnapshotUsecase struct {
	market      MarketRepository
	writer      SnapshotWriter
	granularity entity.Granularity
	logger      *slog.Logger
}

// NewSnapshotUsecase は新しい SnapshotUsecase を作成します。logger が nil の場合は slog.Default() を使います。
func NewSnapshotUsecase(market MarketRepository, writer SnapshotWriter, granularity entity.Granularity, logger *slog.Logger) *SnapshotUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &SnapshotUsecase{
		market:      market,
		writer:      writer,
		granularity: granularity,
		logger:      logger,
	}
}

// Run は1回分の取得処理を実行します。
//
// 最も活発な銘柄のリストが空または存在しない場合は、生のレスポンスをエラーとして出力し、
// 価格系列の取得もファイル書き込みも行わずに (nil, nil) を返します。
// それ以外のエラー（通信、デコード、書き込み）はそのまま呼び出し元に返します。
func (su *SnapshotUsecase) Run(ctx context.Context) (*entity.Snapshot, error) {
	if !su.granularity.Valid() {
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidGranularity, su.granularity)
	}

	su.logger.Info("Fetching active stocks...")
	report, err := su.market.ActiveStocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch active stocks: %w", err)
	}

	first, ok := report.First()
	if !ok {
		su.logger.Error("Error getting active stocks", "response", rawString(report))
		return nil, nil
	}
	if first.Ticker == "" {
		return nil, ErrMissingTicker
	}

	su.logger.Info(fmt.Sprintf("Fetching price data for %s...", first.Ticker),
		"symbol", first.Ticker, "granularity", su.granularity.String())
	priceData, err := su.market.PriceSeries(ctx, first.Ticker, su.granularity)
	if err != nil {
		return nil, fmt.Errorf("fetch price data for %s: %w", first.Ticker, err)
	}

	snapshot := entity.NewSnapshot(report.Raw, priceData)
	if err := su.writer.Write(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("save results: %w", err)
	}
	su.logger.Info(fmt.Sprintf("Results saved to %s", su.writer.Location()))

	return snapshot, nil
}

func rawString(r *entity.ActiveStocksReport) string {
	if r == nil || len(r.Raw) == 0 {
		return "null"
	}
	return string(r.Raw)
}
