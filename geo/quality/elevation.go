package quality

import (
	"context"
	"math"

	"github.com/rotblauer/gpxcat/params"
	"github.com/rotblauer/gpxcat/stream"
	"github.com/rotblauer/gpxcat/types/gpx"
)

// ScanElevation flags consecutive point pairs whose absolute elevation
// delta exceeds config.MaxElevationChange meters. Elapsed time plays no
// part; one big jump between adjacent samples triggers regardless.
//
// Points are expected to carry elevations and times;
// run behind GPX.ValidateForAnalysis.
func ScanElevation(ctx context.Context, g *gpx.GPX, config *params.AnalyzeConfig) []Issue {
	issues := make([]Issue, 0)
	for _, track := range g.Tracks {
		label := track.DisplayName()
		for _, segment := range track.Segments {
			for pair := range stream.Pairwise(ctx, stream.Slice(ctx, segment.Points)) {
				p1, p2 := pair.A, pair.B
				delta := math.Abs(p2.MustElevation() - p1.MustElevation())
				if delta > config.MaxElevationChange {
					issues = append(issues, ElevationIssue{
						TrackName:   label,
						At:          p1.MustTime(),
						Origin:      p1.Pt(),
						DeltaMeters: delta,
					})
				}
			}
		}
	}
	return issues
}
