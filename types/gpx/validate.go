package gpx

import "fmt"

// Validate checks the document for structural validity: every point
// carries in-range coordinates. It returns the first error it encounters.
func (g *GPX) Validate() error {
	for ti, track := range g.Tracks {
		for si, segment := range track.Segments {
			for pi, point := range segment.Points {
				if err := point.validatePosition(); err != nil {
					return fmt.Errorf("track %d segment %d point %d: %w", ti, si, pi, err)
				}
			}
		}
	}
	return nil
}

// ValidateForAnalysis checks the document the way the anomaly scans need it:
// structurally valid, and every point carrying elevation and capture time.
// Privacy-filtered output fails this on purpose; it has no times left.
func (g *GPX) ValidateForAnalysis() error {
	if err := g.Validate(); err != nil {
		return err
	}
	for ti, track := range g.Tracks {
		for si, segment := range track.Segments {
			for pi, point := range segment.Points {
				if !point.HasElevation() {
					return fmt.Errorf("track %d segment %d point %d: missing elevation", ti, si, pi)
				}
				if !point.HasTime() {
					return fmt.Errorf("track %d segment %d point %d: missing time", ti, si, pi)
				}
				if point.MustTime().IsZero() {
					return fmt.Errorf("track %d segment %d point %d: zero time", ti, si, pi)
				}
			}
		}
	}
	return nil
}

func (p Point) validatePosition() error {
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("invalid coordinate: lat=%.14f", p.Lat)
	}
	if p.Lon < -180 || p.Lon > 180 {
		return fmt.Errorf("invalid coordinate: lon=%.14f", p.Lon)
	}
	return nil
}
