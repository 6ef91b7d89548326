package signals

import (
	"github.com/rathishpadman/stockpulse/internal/models"
)

// HeatLevel is one heatmap intensity bucket for a monthly average return.
type HeatLevel struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Intensity int    `json:"intensity"` // -3..+3; 0 used for both flat buckets and no-data
}

// Heat levels ordered from strongest gain to strongest loss. Boundary
// values belong to the upper (more positive) bucket: 5.0 classifies as
// strong-positive, not positive.
var (
	HeatStrongPositive = HeatLevel{Key: "strong_positive", Label: "Strongly Positive", Intensity: 3}
	HeatPositive       = HeatLevel{Key: "positive", Label: "Positive", Intensity: 2}
	HeatMildPositive   = HeatLevel{Key: "mild_positive", Label: "Mildly Positive", Intensity: 1}
	HeatFlatPositive   = HeatLevel{Key: "flat_positive", Label: "Flat Positive", Intensity: 0}
	HeatFlatNegative   = HeatLevel{Key: "flat_negative", Label: "Flat Negative", Intensity: -1}
	HeatNegative       = HeatLevel{Key: "negative", Label: "Negative", Intensity: -2}
	HeatStrongNegative = HeatLevel{Key: "strong_negative", Label: "Strongly Negative", Intensity: -3}
	HeatNoData         = HeatLevel{Key: "no_data", Label: "No Data", Intensity: 0}
)

// HeatBucket maps a monthly average return (percent) to its heat level.
// Total over all inputs: nil maps to the distinct no-data level.
func HeatBucket(v *float64) HeatLevel {
	if v == nil {
		return HeatNoData
	}
	switch {
	case *v >= 5:
		return HeatStrongPositive
	case *v >= 3:
		return HeatPositive
	case *v >= 1:
		return HeatMildPositive
	case *v >= 0:
		return HeatFlatPositive
	case *v >= -1:
		return HeatFlatNegative
	case *v >= -3:
		return HeatNegative
	default:
		return HeatStrongNegative
	}
}

var monthKeys = [12]string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}

// AnnotateHeat fills the record's heat map with the bucket key for each
// calendar month so the dashboard renders intensities without recomputing
// thresholds.
func AnnotateHeat(rec *models.SeasonalityRecord) {
	if rec == nil {
		return
	}
	heat := make(map[string]string, len(monthKeys))
	for i, v := range rec.Months() {
		heat[monthKeys[i]] = HeatBucket(v).Key
	}
	rec.Heat = heat
}
