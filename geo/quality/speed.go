package quality

import (
	"context"
	"log/slog"

	"github.com/rotblauer/gpxcat/geo"
	"github.com/rotblauer/gpxcat/params"
	"github.com/rotblauer/gpxcat/stream"
	"github.com/rotblauer/gpxcat/types/gpx"
)

// ScanSpeed derives a speed for every consecutive point pair of every
// segment and flags pairs exceeding config.MaxSpeed km/h.
//
// Pairs with non-positive elapsed time (identical or out-of-order
// timestamps) are skipped without comment: no division, no issue.
// That is a permissive policy inherited from the field, not an accident;
// such pairs often mean corrupt data, and the skip count surfaces at
// debug level for anyone who cares.
//
// Points are expected to carry times; run behind GPX.ValidateForAnalysis.
func ScanSpeed(ctx context.Context, g *gpx.GPX, config *params.AnalyzeConfig) []Issue {
	issues := make([]Issue, 0)
	skipped := 0
	for _, track := range g.Tracks {
		label := track.DisplayName()
		for _, segment := range track.Segments {
			for pair := range stream.Pairwise(ctx, stream.Slice(ctx, segment.Points)) {
				p1, p2 := pair.A, pair.B
				elapsedHours := p2.MustTime().Sub(p1.MustTime()).Hours()
				if elapsedHours <= 0 {
					skipped++
					continue
				}
				kmh := geo.Distance(p1.Pt(), p2.Pt()) / elapsedHours
				if kmh > config.MaxSpeed {
					issues = append(issues, SpeedIssue{
						TrackName: label,
						At:        p1.MustTime(),
						Origin:    p1.Pt(),
						KMH:       kmh,
					})
				}
			}
		}
	}
	if skipped > 0 {
		slog.Debug("Speed scan skipped non-positive intervals", "n", skipped)
	}
	return issues
}
