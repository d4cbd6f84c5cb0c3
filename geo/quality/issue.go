// Package quality scans a track model for data-quality anomalies:
// implausible speeds, abrupt elevation jumps, and temporal gaps between
// recording segments. Scans are pure read-only traversals over an
// immutable model; each returns its findings in traversal order and
// they may run concurrently.
package quality

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
)

// Kind tags the anomaly classes.
type Kind int

const (
	KindSpeed Kind = iota
	KindElevation
	KindContinuity
)

func (k Kind) String() string {
	switch k {
	case KindSpeed:
		return "speed"
	case KindElevation:
		return "elevation"
	case KindContinuity:
		return "continuity"
	}
	panic("unhandled default case")
}

// Issue is one classified anomaly. The concrete type carries the
// kind-specific measurement; adding a Kind means adding a variant,
// and the report type switch will tell you where.
type Issue interface {
	Kind() Kind
	// Message describes the violation, offending value formatted to 2 decimals.
	Message() string
	// Location labels the track the issue was found in.
	Location() string
	// Time is the capture time of the earlier point of the violating pair.
	Time() time.Time
	// Point is the position the issue anchors at.
	Point() orb.Point
}

// SpeedIssue is a consecutive point pair traversed implausibly fast.
type SpeedIssue struct {
	TrackName string
	At        time.Time
	Origin    orb.Point
	// KMH is the derived speed over the violating pair.
	KMH float64
}

func (i SpeedIssue) Kind() Kind       { return KindSpeed }
func (i SpeedIssue) Time() time.Time  { return i.At }
func (i SpeedIssue) Point() orb.Point { return i.Origin }
func (i SpeedIssue) Location() string {
	return fmt.Sprintf("Track %s", i.TrackName)
}
func (i SpeedIssue) Message() string {
	return fmt.Sprintf("High speed detected: %.2f km/h", i.KMH)
}

// ElevationIssue is a consecutive point pair with an abrupt elevation delta.
type ElevationIssue struct {
	TrackName string
	At        time.Time
	Origin    orb.Point
	// DeltaMeters is the absolute elevation change over the pair.
	DeltaMeters float64
}

func (i ElevationIssue) Kind() Kind       { return KindElevation }
func (i ElevationIssue) Time() time.Time  { return i.At }
func (i ElevationIssue) Point() orb.Point { return i.Origin }
func (i ElevationIssue) Location() string {
	return fmt.Sprintf("Track %s", i.TrackName)
}
func (i ElevationIssue) Message() string {
	return fmt.Sprintf("Large elevation change detected: %.2f meters", i.DeltaMeters)
}

// ContinuityIssue is a recording gap between adjacent segments,
// anchored at the last point before the gap.
type ContinuityIssue struct {
	TrackName string
	At        time.Time
	Origin    orb.Point
	// GapSeconds spans the last point of one segment to the first of the next.
	GapSeconds float64
}

func (i ContinuityIssue) Kind() Kind       { return KindContinuity }
func (i ContinuityIssue) Time() time.Time  { return i.At }
func (i ContinuityIssue) Point() orb.Point { return i.Origin }
func (i ContinuityIssue) Location() string {
	return fmt.Sprintf("Track %s", i.TrackName)
}
func (i ContinuityIssue) Message() string {
	return fmt.Sprintf("Large time gap between segments: %.2f seconds", i.GapSeconds)
}
