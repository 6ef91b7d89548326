// Package models defines data structures for StockPulse
package models

import (
	"time"
)

// StockSnapshot is one screening row for a ticker in a single reporting
// period. All indicator values arrive pre-computed from the upstream
// pipeline; a nil field means the pipeline produced no value for it and
// the field must never be read as zero by classification code.
type StockSnapshot struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name,omitempty"`
	Sector string `json:"sector,omitempty"`

	// Period labels. Exactly one is populated depending on the report
	// the row belongs to.
	TradeDate  string `json:"trade_date,omitempty"`
	WeekEnding string `json:"week_ending,omitempty"`
	Month      string `json:"month,omitempty"`

	Price     *float64 `json:"price,omitempty"`
	ReturnPct *float64 `json:"return_pct,omitempty"`
	Return1W  *float64 `json:"return_1w,omitempty"`
	Return1M  *float64 `json:"return_1m,omitempty"`
	Return3M  *float64 `json:"return_3m,omitempty"`
	Return6M  *float64 `json:"return_6m,omitempty"`
	Return1Y  *float64 `json:"return_1y,omitempty"`

	RSI14      *float64 `json:"rsi_14,omitempty"`
	MACDLine   *float64 `json:"macd_line,omitempty"`
	MACDSignal *float64 `json:"macd_signal,omitempty"`
	MACDHist   *float64 `json:"macd_hist,omitempty"`
	SMA20      *float64 `json:"sma_20,omitempty"`
	SMA50      *float64 `json:"sma_50,omitempty"`
	SMA200     *float64 `json:"sma_200,omitempty"`
	ADX14      *float64 `json:"adx_14,omitempty"`
	BBUpper    *float64 `json:"bb_upper,omitempty"`
	BBLower    *float64 `json:"bb_lower,omitempty"`

	VolumeRatio    *float64 `json:"volume_ratio,omitempty"`
	CompositeScore *float64 `json:"composite_score,omitempty"`
}

// SeasonalityRecord holds per-ticker monthly average returns. Values are
// percentages, not fractions. A nil month means insufficient history.
type SeasonalityRecord struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name,omitempty"`

	Jan *float64 `json:"jan"`
	Feb *float64 `json:"feb"`
	Mar *float64 `json:"mar"`
	Apr *float64 `json:"apr"`
	May *float64 `json:"may"`
	Jun *float64 `json:"jun"`
	Jul *float64 `json:"jul"`
	Aug *float64 `json:"aug"`
	Sep *float64 `json:"sep"`
	Oct *float64 `json:"oct"`
	Nov *float64 `json:"nov"`
	Dec *float64 `json:"dec"`

	BestMonth      string `json:"best_month,omitempty"`
	WorstMonth     string `json:"worst_month,omitempty"`
	PositiveMonths int    `json:"positive_months"`

	// Heat carries the computed month-to-intensity bucket keys. Filled
	// by the report service, never stored.
	Heat map[string]string `json:"heat,omitempty"`
}

// Months returns the twelve monthly values in calendar order.
func (r *SeasonalityRecord) Months() []*float64 {
	return []*float64{r.Jan, r.Feb, r.Mar, r.Apr, r.May, r.Jun, r.Jul, r.Aug, r.Sep, r.Oct, r.Nov, r.Dec}
}

// ReportQuery is the request-scoped filter contract sent to the report
// store. It is never persisted.
type ReportQuery struct {
	Ticker  string // optional; empty means "latest period across all tickers"
	Limit   int    // always bounded; see DefaultLimit/MaxLimit
	Periods int    // optional cap on periods for single-ticker queries (weeks/months params)
	OrderBy string // validated against a whitelist by the store
}

// Query limit bounds. A query is never unbounded.
const (
	DefaultLimit = 200
	MaxLimit     = 1000
)

// SignalBucket is one named technical-signal category with its capped,
// ordered members. Buckets are transient and recomputed per request.
type SignalBucket struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Stocks []StockSnapshot `json:"stocks"`
}

// SignalReport is the full output of one signal scan.
type SignalReport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	TradeDate   string         `json:"trade_date,omitempty"`
	Universe    int            `json:"universe"`
	Buckets     []SignalBucket `json:"buckets"`
}
