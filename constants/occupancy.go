package constants

// StatusBand là mức độ lấp đầy của một ngày
type StatusBand string

const (
	BandAvailable StatusBand = "available"
	BandLow       StatusBand = "low"
	BandMedium    StatusBand = "medium"
	BandHigh      StatusBand = "high"
	BandCritical  StatusBand = "critical"
	BandFull      StatusBand = "full"
	BandNoData    StatusBand = "no-data"
)

// Occupancy thresholds in percent. Calendar rendering and conflict analysis
// both read these; nothing else may hardcode them.
const (
	LowMaxRate        = 40.0
	MediumMaxRate     = 70.0
	HighMaxRate       = 90.0
	FullRate          = 100.0
	BottleneckMinRate = HighMaxRate
)

// BandFor returns the band for an occupancy rate of a day with inventory.
func BandFor(rate float64) StatusBand {
	switch {
	case rate <= 0:
		return BandAvailable
	case rate <= LowMaxRate:
		return BandLow
	case rate <= MediumMaxRate:
		return BandMedium
	case rate <= HighMaxRate:
		return BandHigh
	case rate < FullRate:
		return BandCritical
	default:
		return BandFull
	}
}
