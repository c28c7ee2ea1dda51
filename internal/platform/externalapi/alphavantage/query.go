package alphavantage

import (
	"errors"
	"fmt"
	"net/url"

	"stock_snapshot/internal/feature/snapshot/domain/entity"
)

// Alpha Vantage function names and parameters.
const (
	FunctionTopGainersLosers   = "TOP_GAINERS_LOSERS"
	FunctionTimeSeriesIntraday = "TIME_SERIES_INTRADAY"
	FunctionTimeSeriesDaily    = "TIME_SERIES_DAILY"

	// IntradayInterval は日中系列で要求するサンプリング間隔です。
	IntradayInterval = "5min"
)

// ErrUnknownGranularity is returned when a price query is requested for a
// granularity other than Intraday or Daily.
var ErrUnknownGranularity = errors.New("alphavantage: unknown granularity")

// ActiveStocksQuery はトップ上昇・下落・最も活発な銘柄を取得するクエリパラメータを生成します。
func ActiveStocksQuery(apiKey string) url.Values {
	q := url.Values{}
	q.Set("function", FunctionTopGainersLosers)
	q.Set("apikey", apiKey)
	return q
}

// PriceQuery は指定銘柄の価格系列を取得するクエリパラメータを生成します。
// Intraday は5分足の TIME_SERIES_INTRADAY、Daily は interval なしの TIME_SERIES_DAILY になります。
func PriceQuery(apiKey, symbol string, granularity entity.Granularity) (url.Values, error) {
	q := url.Values{}
	switch granularity {
	case entity.Intraday:
		q.Set("function", FunctionTimeSeriesIntraday)
		q.Set("symbol", symbol)
		q.Set("interval", IntradayInterval)
	case entity.Daily:
		q.Set("function", FunctionTimeSeriesDaily)
		q.Set("symbol", symbol)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownGranularity, granularity)
	}
	q.Set("apikey", apiKey)
	return q, nil
}
