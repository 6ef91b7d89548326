package common

import (
	"fmt"
	"strings"
)

// Placeholder is rendered when a numeric value is absent.
const Placeholder = "--"

// Polarity classifications for display coloring.
const (
	PolarityPositive = "positive"
	PolarityNegative = "negative"
	PolarityNeutral  = "neutral"
)

// FormatSignedPct formats a percentage with a leading + for gains.
// A nil value renders the placeholder.
func FormatSignedPct(v *float64) string {
	if v == nil {
		return Placeholder
	}
	if *v > 0 {
		return fmt.Sprintf("+%.2f%%", *v)
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// FormatPct formats a percentage without sign decoration.
func FormatPct(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.2f%%", *v)
}

// FormatMoney formats a rupee amount with thousands separators.
func FormatMoney(v float64) string {
	return "₹" + groupThousands(fmt.Sprintf("%.2f", v))
}

// FormatSignedMoney formats a rupee amount with an explicit + for gains.
func FormatSignedMoney(v float64) string {
	if v > 0 {
		return "+" + FormatMoney(v)
	}
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	return FormatMoney(v)
}

// Polarity classifies a value for display coloring. The classification is
// made on the raw number, not the formatted string, so a tiny negative that
// renders as "-0.00%" still reads as negative.
func Polarity(v *float64) string {
	switch {
	case v == nil:
		return PolarityNeutral
	case *v > 0:
		return PolarityPositive
	case *v < 0:
		return PolarityNegative
	default:
		return PolarityNeutral
	}
}

// groupThousands inserts comma separators into the integer part of a
// fixed-decimal numeric string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	frac := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart = s[:dot]
		frac = s[dot:]
	}

	for i := len(intPart) - 3; i > 0; i -= 3 {
		intPart = intPart[:i] + "," + intPart[i:]
	}

	if neg {
		return "-" + intPart + frac
	}
	return intPart + frac
}
