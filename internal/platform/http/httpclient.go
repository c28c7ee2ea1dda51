// Package http builds the outbound HTTP client used for external API calls.
package http

import (
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
)

// sensitiveParams are query parameters that never appear in logs.
var sensitiveParams = []string{"apikey", "api_key", "access_key", "token"}

// NewHTTPClient は外部API呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: 環境変数（HTTPS_PROXYなど）が設定されている場合に使用
//   - Dialer.Timeout: TCP接続タイムアウト
//   - TLSHandshakeTimeout: HTTPSハンドシェイクの最大時間
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// 各リクエストは DEBUG レベルでログに出力されます。APIキーなどのクエリパラメータは伏せ字になります。
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: &loggingTransport{next: t}}
}

// loggingTransport logs method, redacted URL, status and latency of every request.
type loggingTransport struct {
	next http.RoundTripper
}

func (lt *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	res, err := lt.next.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		slog.DebugContext(req.Context(), "http request failed",
			"method", req.Method, "url", RedactURL(req.URL), "elapsed", elapsed, "error", err)
		return nil, err
	}
	slog.DebugContext(req.Context(), "http request",
		"method", req.Method, "url", RedactURL(req.URL), "status", res.StatusCode, "elapsed", elapsed)
	return res, nil
}

// RedactURL returns u as a string with credential-bearing query parameters masked.
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	q := u.Query()
	changed := false
	for _, k := range sensitiveParams {
		if q.Has(k) {
			q.Set(k, "REDACTED")
			changed = true
		}
	}
	if !changed {
		return u.String()
	}
	cp := *u
	cp.RawQuery = q.Encode()
	return cp.String()
}
