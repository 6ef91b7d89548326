// Package signals provides pure classification over pre-computed indicator
// snapshots. Nothing here computes indicators; the upstream pipeline owns
// that; this package only sorts rows into named buckets.
package signals

import (
	"sort"

	"github.com/rathishpadman/stockpulse/internal/models"
)

// BucketCap is the maximum number of entries per signal bucket.
const BucketCap = 8

// Signal thresholds. These mirror the dashboard's fixed screening rules.
const (
	RSIOverbought  = 70.0
	RSIOversold    = 30.0
	ADXStrongTrend = 25.0
)

// rule defines one signal bucket: a predicate over a snapshot and an
// optional ordering. A nil less keeps input order.
type rule struct {
	key   string
	label string
	match func(s *models.StockSnapshot) bool
	less  func(a, b *models.StockSnapshot) bool
}

// rules are evaluated independently; a snapshot may land in several buckets.
// Missing fields never satisfy a predicate.
var rules = []rule{
	{
		key:   "rsi_overbought",
		label: "RSI Overbought",
		match: func(s *models.StockSnapshot) bool {
			return s.RSI14 != nil && *s.RSI14 > RSIOverbought
		},
		less: func(a, b *models.StockSnapshot) bool { return *a.RSI14 > *b.RSI14 },
	},
	{
		key:   "rsi_oversold",
		label: "RSI Oversold",
		match: func(s *models.StockSnapshot) bool {
			return s.RSI14 != nil && *s.RSI14 < RSIOversold
		},
		less: func(a, b *models.StockSnapshot) bool { return *a.RSI14 < *b.RSI14 },
	},
	{
		key:   "macd_bullish",
		label: "MACD Bullish Cross",
		match: func(s *models.StockSnapshot) bool {
			return s.MACDLine != nil && s.MACDSignal != nil && s.MACDHist != nil &&
				*s.MACDLine > *s.MACDSignal && *s.MACDHist > 0
		},
		less: func(a, b *models.StockSnapshot) bool { return *a.MACDHist > *b.MACDHist },
	},
	{
		key:   "macd_bearish",
		label: "MACD Bearish Cross",
		match: func(s *models.StockSnapshot) bool {
			return s.MACDLine != nil && s.MACDSignal != nil && s.MACDHist != nil &&
				*s.MACDLine < *s.MACDSignal && *s.MACDHist < 0
		},
		less: func(a, b *models.StockSnapshot) bool { return *a.MACDHist < *b.MACDHist },
	},
	{
		key:   "golden_cross",
		label: "Golden Cross",
		match: func(s *models.StockSnapshot) bool {
			return s.SMA50 != nil && s.SMA200 != nil && s.Price != nil &&
				*s.SMA50 > *s.SMA200 && *s.Price > *s.SMA200
		},
	},
	{
		key:   "death_cross",
		label: "Death Cross",
		match: func(s *models.StockSnapshot) bool {
			return s.SMA50 != nil && s.SMA200 != nil && *s.SMA50 < *s.SMA200
		},
	},
	{
		key:   "strong_trend",
		label: "Strong Trend (ADX)",
		match: func(s *models.StockSnapshot) bool {
			return s.ADX14 != nil && *s.ADX14 > ADXStrongTrend
		},
		less: func(a, b *models.StockSnapshot) bool { return *a.ADX14 > *b.ADX14 },
	},
	{
		key:   "bb_breakout_up",
		label: "Bollinger Breakout Up",
		match: func(s *models.StockSnapshot) bool {
			return s.Price != nil && s.BBUpper != nil && *s.Price > *s.BBUpper
		},
	},
	{
		key:   "bb_breakout_down",
		label: "Bollinger Breakout Down",
		match: func(s *models.StockSnapshot) bool {
			return s.Price != nil && s.BBLower != nil && *s.Price < *s.BBLower
		},
	},
}

// Classify sorts a snapshot collection into the fixed signal buckets.
// Pure and stateless: the same input always yields the same, order-stable
// output, and the input slice is never mutated.
func Classify(snapshots []models.StockSnapshot) []models.SignalBucket {
	buckets := make([]models.SignalBucket, 0, len(rules))

	for _, r := range rules {
		var matched []models.StockSnapshot
		for i := range snapshots {
			if r.match(&snapshots[i]) {
				matched = append(matched, snapshots[i])
			}
		}

		if r.less != nil {
			sort.SliceStable(matched, func(i, j int) bool {
				return r.less(&matched[i], &matched[j])
			})
		}

		if len(matched) > BucketCap {
			matched = matched[:BucketCap]
		}

		buckets = append(buckets, models.SignalBucket{
			Key:    r.key,
			Label:  r.label,
			Stocks: matched,
		})
	}

	return buckets
}
