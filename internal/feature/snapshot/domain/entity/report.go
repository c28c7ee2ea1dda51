package entity

import "encoding/json"

// MostActive is one entry of the most actively traded list.
type MostActive struct {
	Ticker string // e.g. "NVDA"
}

// ActiveStocksReport はトップ上昇・下落銘柄レポートの生データと、
// 参照する最小限のフィールド（最も活発に取引された銘柄）を保持します。
type ActiveStocksReport struct {
	Raw                json.RawMessage
	MostActivelyTraded []MostActive
}

// First returns the first listed entry in source order.
// ok is false when the list is absent or empty.
func (r *ActiveStocksReport) First() (MostActive, bool) {
	if r == nil || len(r.MostActivelyTraded) == 0 {
		return MostActive{}, false
	}
	return r.MostActivelyTraded[0], true
}
