package params

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/rotblauer/gpxcat/common"
)

// AnalyzeConfig holds the thresholds for the three anomaly scans.
// Thresholds are exceeded strictly (a value equal to the maximum is fine).
type AnalyzeConfig struct {
	// MaxSpeed is km/h.
	MaxSpeed float64
	// MaxElevationChange is meters, compared against the absolute
	// elevation delta of consecutive points.
	MaxElevationChange float64
	// MaxSegmentGap is seconds between the last point of one segment
	// and the first point of the next.
	MaxSegmentGap float64
}

var DefaultAnalyzeConfig = AnalyzeConfig{
	MaxSpeed:           100.0,
	MaxElevationChange: 100.0,
	MaxSegmentGap:      300.0,
}

// MileageChoices are the trim distances and anchor radii the privacy
// filter accepts, in miles. Zero disables the respective trim/exclusion.
var MileageChoices = []float64{0.25, 0.5, 1.0}

// PrivacyConfig configures the privacy filter.
// Distances are miles because that is what the flags have always taken;
// everything internal is kilometers.
type PrivacyConfig struct {
	TrimDistanceMiles float64
	// Anchor is an optional location whose neighborhood is excluded.
	Anchor            *orb.Point
	AnchorRadiusMiles float64
}

var DefaultPrivacyConfig = PrivacyConfig{}

func (c *PrivacyConfig) Validate() error {
	if !validMileage(c.TrimDistanceMiles) {
		return fmt.Errorf("invalid trim distance %v miles, want 0 or one of %v", c.TrimDistanceMiles, MileageChoices)
	}
	if !validMileage(c.AnchorRadiusMiles) {
		return fmt.Errorf("invalid anchor radius %v miles, want 0 or one of %v", c.AnchorRadiusMiles, MileageChoices)
	}
	return nil
}

func validMileage(v float64) bool {
	if v == 0 {
		return true
	}
	for _, choice := range MileageChoices {
		if v == choice {
			return true
		}
	}
	return false
}

// TrimDistanceKM returns the trim distance in kilometers.
func (c *PrivacyConfig) TrimDistanceKM() float64 {
	return c.TrimDistanceMiles * common.KilometersPerMile
}

// AnchorRadiusKM returns the anchor exclusion radius in kilometers.
func (c *PrivacyConfig) AnchorRadiusKM() float64 {
	return c.AnchorRadiusMiles * common.KilometersPerMile
}
