package constants

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		rate float64
		want StatusBand
	}{
		{0, BandAvailable},
		{0.5, BandLow},
		{40, BandLow},
		{math.Nextafter(40, 41), BandMedium},
		{55, BandMedium},
		{70, BandMedium},
		{math.Nextafter(70, 71), BandHigh},
		{90, BandHigh},
		{math.Nextafter(90, 91), BandCritical},
		{99.9, BandCritical},
		{100, BandFull},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BandFor(tt.rate), "rate %v", tt.rate)
	}
}

func TestBottleneckStartsAtHighBound(t *testing.T) {
	assert.Equal(t, HighMaxRate, BottleneckMinRate)
	assert.Equal(t, BandHigh, BandFor(BottleneckMinRate))
}
