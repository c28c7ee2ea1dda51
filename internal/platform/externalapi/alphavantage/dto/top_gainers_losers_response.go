// Package dto defines data transfer objects for the Alpha Vantage API responses.
package dto

import "encoding/json"

// TopGainersLosersResponse represents the JSON response from the TOP_GAINERS_LOSERS function.
// Only the most actively traded list is declared. Entries stay raw so that fields
// other than the ticker may carry any JSON type.
type TopGainersLosersResponse struct {
	MostActivelyTraded []json.RawMessage `json:"most_actively_traded"`
}

// TickerEntry is the part of a list row the client reads.
type TickerEntry struct {
	Ticker string `json:"ticker"`
}
