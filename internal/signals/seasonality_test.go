package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rathishpadman/stockpulse/internal/models"
)

func TestHeatBucket_Thresholds(t *testing.T) {
	cases := []struct {
		value float64
		want  HeatLevel
	}{
		{12.4, HeatStrongPositive},
		{5.0, HeatStrongPositive}, // boundary belongs to the upper bucket
		{4.99, HeatPositive},
		{3.0, HeatPositive},
		{2.0, HeatMildPositive},
		{1.0, HeatMildPositive},
		{0.5, HeatFlatPositive},
		{0.0, HeatFlatPositive},
		{-0.5, HeatFlatNegative},
		{-1.0, HeatFlatNegative},
		{-2.5, HeatNegative},
		{-3.0, HeatNegative},
		{-3.01, HeatStrongNegative},
		{-15, HeatStrongNegative},
	}

	for _, tc := range cases {
		v := tc.value
		assert.Equal(t, tc.want, HeatBucket(&v), "value %v", tc.value)
	}
}

func TestHeatBucket_NilIsNoData(t *testing.T) {
	assert.Equal(t, HeatNoData, HeatBucket(nil))
}

func TestHeatBucket_IntensityOrdering(t *testing.T) {
	values := []float64{8, 4, 2, 0.5, -0.5, -2, -8}
	prev := HeatBucket(&values[0]).Intensity
	for _, v := range values[1:] {
		cur := HeatBucket(&v).Intensity
		assert.Less(t, cur, prev, "intensity must strictly decrease down the scale")
		prev = cur
	}
}

func TestAnnotateHeat(t *testing.T) {
	jan := 6.2
	jul := -4.0
	rec := &models.SeasonalityRecord{Ticker: "RELIANCE.NS", Jan: &jan, Jul: &jul}

	AnnotateHeat(rec)

	require.NotNil(t, rec.Heat)
	assert.Len(t, rec.Heat, 12)
	assert.Equal(t, "strong_positive", rec.Heat["jan"])
	assert.Equal(t, "strong_negative", rec.Heat["jul"])
	assert.Equal(t, "no_data", rec.Heat["dec"])
}

func TestAnnotateHeat_NilRecord(t *testing.T) {
	assert.NotPanics(t, func() { AnnotateHeat(nil) })
}
