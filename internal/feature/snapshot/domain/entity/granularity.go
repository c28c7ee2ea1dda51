// Package entity defines the domain models for the snapshot feature.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGranularity は未知の時間足指定を表します。
var ErrInvalidGranularity = errors.New("invalid granularity")

// Granularity は価格系列のサンプリング単位です。IntradayとDailyの2種類のみ存在します。
type Granularity int

const (
	// Intraday は5分足の日中系列です（デフォルト）。
	Intraday Granularity = iota + 1
	// Daily は日足系列です。
	Daily
)

// String returns the canonical name used in configuration and logs.
func (g Granularity) String() string {
	switch g {
	case Intraday:
		return "intraday"
	case Daily:
		return "daily"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// Valid reports whether g is one of the two known variants.
func (g Granularity) Valid() bool {
	return g == Intraday || g == Daily
}

// ParseGranularity はユーザー入力を Granularity に変換します。
// "1d" と "intraday"（空文字列を含む）は Intraday、"daily" は Daily として扱い、
// それ以外は ErrInvalidGranularity を返します。
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1d", "intraday":
		return Intraday, nil
	case "daily":
		return Daily, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidGranularity, s)
	}
}

// UnmarshalText lets Granularity be decoded from YAML and flag values.
func (g *Granularity) UnmarshalText(b []byte) error {
	parsed, err := ParseGranularity(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
