// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"

	"stock_snapshot/internal/app/config"
	snapshotadapters "stock_snapshot/internal/feature/snapshot/adapters"
	snapshotusecase "stock_snapshot/internal/feature/snapshot/usecase"
	"stock_snapshot/internal/platform/externalapi/alphavantage"
	infrahttp "stock_snapshot/internal/platform/http"
)

// NewMarket creates a fully configured Alpha Vantage client with HTTP client.
func NewMarket(cfg alphavantage.Config) *alphavantage.Client {
	cfg = cfg.WithDefaults()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return alphavantage.NewClient(cfg, httpClient)
}

// NewSnapshotUsecase wires the market client and the JSON file writer into the snapshot usecase.
func NewSnapshotUsecase(cfg *config.Config, logger *slog.Logger) *snapshotusecase.SnapshotUsecase {
	market := NewMarket(cfg.AlphaVantage)
	writer := snapshotadapters.NewJSONFileWriter(cfg.OutputPath)
	return snapshotusecase.NewSnapshotUsecase(market, writer, cfg.Granularity, logger)
}
