// Package privacy reduces a track model to something publishable:
// endpoints trimmed by along-track distance, the neighborhood of an
// anchor location excluded, and every capture time dropped.
package privacy

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/rotblauer/gpxcat/geo"
	"github.com/rotblauer/gpxcat/params"
	"github.com/rotblauer/gpxcat/types/gpx"
)

// Strip builds a new model from g under config. The source is never
// mutated. Surviving points carry position and elevation-if-present;
// times and derived speeds never make it out, that is the defining
// guarantee. Segment shells survive even when all their points are
// filtered, so the output keeps the recording's shape.
//
// Trim boundaries follow the crossing-index search: a trim distance the
// cumulative distances never reach trims nothing at all, rather than
// everything. Counter-intuitive, but it is what this transform has
// always done, and idempotence over its own output depends on the
// zero-trim case staying exact.
func Strip(ctx context.Context, g *gpx.GPX, config *params.PrivacyConfig) (*gpx.GPX, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	out := &gpx.GPX{
		Version: params.GPXVersion,
		Creator: params.GPXCreator,
		XMLNS:   gpx.XMLNSGPX11,
		Tracks:  make([]gpx.Track, 0, len(g.Tracks)),
	}

	for _, track := range g.Tracks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		filtered := gpx.Track{
			Name:     track.Name,
			Type:     track.Type,
			Segments: make([]gpx.Segment, 0, len(track.Segments)),
		}
		for _, segment := range track.Segments {
			filtered.Segments = append(filtered.Segments, filterSegment(segment, config))
		}
		out.Tracks = append(out.Tracks, filtered)
	}
	return out, nil
}

func filterSegment(segment gpx.Segment, config *params.PrivacyConfig) gpx.Segment {
	if segment.IsEmpty() {
		return gpx.Segment{}
	}

	pts := make([]orb.Point, len(segment.Points))
	for i, p := range segment.Points {
		pts[i] = p.Pt()
	}

	startIdx, endIdx := trimBounds(geo.CumulativeDistances(pts), len(pts), config.TrimDistanceKM())
	radiusKM := config.AnchorRadiusKM()

	out := gpx.Segment{Points: make([]gpx.Point, 0, len(segment.Points))}
	for k, p := range segment.Points {
		if k < startIdx || k >= endIdx {
			continue
		}
		if config.Anchor != nil && geo.Distance(*config.Anchor, pts[k]) <= radiusKM {
			continue
		}
		out.Points = append(out.Points, gpx.Point{
			Lat:       p.Lat,
			Lon:       p.Lon,
			Elevation: p.Elevation,
		})
	}
	return out
}

// trimBounds locates the surviving index window [start, end) for a
// segment of n points given its cumulative distances. A zero trim
// disables trimming outright; a crossing never found leaves the
// respective boundary untouched.
func trimBounds(cumulative []float64, n int, trimKM float64) (start, end int) {
	start, end = 0, n
	if trimKM <= 0 || len(cumulative) == 0 {
		return start, end
	}
	total := cumulative[len(cumulative)-1]
	for i, c := range cumulative {
		if c >= trimKM {
			start = i
			break
		}
	}
	for i := len(cumulative) - 1; i >= 0; i-- {
		if total-cumulative[i] >= trimKM {
			end = i + 1
			break
		}
	}
	return start, end
}
