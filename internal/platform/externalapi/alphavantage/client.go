package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"stock_snapshot/internal/feature/snapshot/domain/entity"
	"stock_snapshot/internal/feature/snapshot/usecase"
	"stock_snapshot/internal/platform/externalapi/alphavantage/dto"
	infrahttp "stock_snapshot/internal/platform/http"
)

// ErrInvalidJSON is returned when a response body is not a JSON document.
var ErrInvalidJSON = errors.New("alphavantage: response is not valid JSON")

// Client はAlpha Vantage外部APIから株価データを取得するMarketRepository実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがMarketRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.MarketRepository = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg.WithDefaults(), client: client}
}

// Fetch はクエリパラメータを付与してベースURLへGETリクエストを1回送信し、
// レスポンスボディをそのままJSONとして返します。
//
// 通信エラー、HTTP 4xx/5xx、JSONとして不正なボディはエラーになります。
// ステータス200で返るAPIレベルのエラー（レート制限の案内など）はそのまま返します。
func (c *Client) Fetch(ctx context.Context, params url.Values) (json.RawMessage, error) {
	u := fmt.Sprintf("%s?%s", c.cfg.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage %s: %w", params.Get("function"), redact(err))
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("alphavantage %s: read body: %w", params.Get("function"), err)
	}

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("alphavantage http %d: %s", res.StatusCode, truncate(body, 200))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w (function %s): %s", ErrInvalidJSON, params.Get("function"), truncate(body, 200))
	}
	return json.RawMessage(body), nil
}

// ActiveStocks はトップ上昇・下落レポートを取得し、最も活発な銘柄リストだけを読み取ります。
// リストの形が想定外の場合は空のリストとして扱い、生データはそのまま保持します。
func (c *Client) ActiveStocks(ctx context.Context) (*entity.ActiveStocksReport, error) {
	raw, err := c.Fetch(ctx, ActiveStocksQuery(c.cfg.APIKey))
	if err != nil {
		return nil, err
	}

	report := &entity.ActiveStocksReport{Raw: raw}

	var body dto.TopGainersLosersResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		slog.Warn("unexpected top gainers/losers shape", "error", err)
		return report, nil
	}

	report.MostActivelyTraded = make([]entity.MostActive, 0, len(body.MostActivelyTraded))
	for i, entry := range body.MostActivelyTraded {
		// ticker 以外のフィールドは型を問わない
		var e dto.TickerEntry
		if err := json.Unmarshal(entry, &e); err != nil {
			slog.Warn("unreadable most actively traded entry", "index", i, "error", err)
		}
		report.MostActivelyTraded = append(report.MostActivelyTraded, entity.MostActive{Ticker: e.Ticker})
	}
	return report, nil
}

// PriceSeries は指定銘柄の価格系列を取得します。中身は解釈せずに返します。
func (c *Client) PriceSeries(ctx context.Context, symbol string, granularity entity.Granularity) (json.RawMessage, error) {
	q, err := PriceQuery(c.cfg.APIKey, symbol, granularity)
	if err != nil {
		return nil, err
	}
	return c.Fetch(ctx, q)
}

// redact masks credentials in transport errors, which embed the full request URL.
func redact(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	u, perr := url.Parse(uerr.URL)
	if perr != nil {
		return err
	}
	return &url.Error{Op: uerr.Op, URL: infrahttp.RedactURL(u), Err: uerr.Err}
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
