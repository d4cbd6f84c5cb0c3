package activity

import (
	"regexp"

	"github.com/rotblauer/gpxcat/common"
)

// Activity classifies how a track was moved through.
// Declared activities come from the track's type field; inferred ones
// from mean speed.
type Activity int

const (
	Stationary Activity = iota
	Walking
	Running
	Cycling
	Driving
	Flying
	Unknown Activity = -1
)

var (
	activityStationary = regexp.MustCompile(`(?i)stationary|still`)
	activityWalking    = regexp.MustCompile(`(?i)walk|hik|foot`)
	activityRunning    = regexp.MustCompile(`(?i)run`)
	activityCycling    = regexp.MustCompile(`(?i)cycl|bike|biking`)
	activityDriving    = regexp.MustCompile(`(?i)drive|driving|automotive|car`)
	activityFlying     = regexp.MustCompile(`(?i)^fly|^air|flight`)
)

// IsActive returns whether the activity is moving.
func (a Activity) IsActive() bool {
	return a > Stationary && a <= Flying
}

// IsKnown returns true if the activity is not Unknown.
func (a Activity) IsKnown() bool {
	return a != Unknown
}

// String implements the Stringer interface.
func (a Activity) String() string {
	switch a {
	case Unknown:
		return "Unknown"
	case Stationary:
		return "Stationary"
	case Walking:
		return "Walking"
	case Running:
		return "Running"
	case Cycling:
		return "Cycling"
	case Driving:
		return "Driving"
	case Flying:
		return "Flying"
	}
	return "Unknown"
}

// Emoji returns a single emoji representation of the activity.
func (a Activity) Emoji() string {
	switch a {
	case Unknown:
		return "❓"
	case Stationary:
		return "📍"
	case Walking:
		return "🚶"
	case Running:
		return "🏃"
	case Cycling:
		return "🚴"
	case Driving:
		return "🚗"
	case Flying:
		return "✈️ "
	}
	return "❓"
}

// FromString matches a free-form activity label, eg. a GPX track type
// like "hiking" or "trail_running", to an Activity.
func FromString(str string) Activity {
	switch {
	case str == "":
		return Unknown
	case activityStationary.MatchString(str):
		return Stationary
	case activityWalking.MatchString(str):
		return Walking
	case activityRunning.MatchString(str):
		return Running
	case activityCycling.MatchString(str):
		return Cycling
	case activityDriving.MatchString(str):
		return Driving
	case activityFlying.MatchString(str):
		return Flying
	}
	return Unknown
}

// InferFromSpeed infers activity from a speed in m/s,
// using high -> low max-speed breakpoints.
func InferFromSpeed(mps float64) Activity {
	if mps > common.SpeedOfDrivingAutobahn {
		return Flying
	}
	if mps > common.SpeedOfCyclingMax {
		return Driving
	}
	if mps > (common.SpeedOfRunningMean+common.SpeedOfRunningMax)/2 {
		return Cycling
	}
	if mps > common.SpeedOfWalkingMax {
		return Running
	}
	if mps < common.SpeedOfWalkingMin {
		return Stationary
	}
	return Walking
}
