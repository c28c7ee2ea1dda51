package entity

import "encoding/json"

// Snapshot is the combined result of one run: the raw most-active report and the
// raw price series of its first ticker. Both payloads are kept verbatim.
type Snapshot struct {
	ActiveStocks json.RawMessage `json:"active_stocks"`
	PriceData    json.RawMessage `json:"price_data"`
}

// NewSnapshot builds a Snapshot. The payloads are copied so later changes to the
// caller's buffers do not leak into the result.
func NewSnapshot(activeStocks, priceData json.RawMessage) *Snapshot {
	return &Snapshot{
		ActiveStocks: append(json.RawMessage(nil), activeStocks...),
		PriceData:    append(json.RawMessage(nil), priceData...),
	}
}
