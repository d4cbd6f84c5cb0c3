package api

import (
	"context"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/rotblauer/gpxcat/common"
	"github.com/rotblauer/gpxcat/geo"
	"github.com/rotblauer/gpxcat/params"
	"github.com/rotblauer/gpxcat/s2"
	"github.com/rotblauer/gpxcat/stream"
	"github.com/rotblauer/gpxcat/types/activity"
	"github.com/rotblauer/gpxcat/types/gpx"
)

// TrackSummary aggregates one track: counts, distances, a duration,
// elevation gain/loss, speed statistics, and distinct-cell coverage.
// Figures that need times or elevations are zero when the recording
// lacks them.
type TrackSummary struct {
	Name     string
	Activity activity.Activity
	Points   int
	Segments int

	// DistanceKM is the along-track (traversed) distance.
	DistanceKM float64
	// BeelineKM is the straight shot from first to last point.
	BeelineKM float64
	// Duration spans the first to the last capture time.
	Duration time.Duration

	ElevationGainM float64
	ElevationLossM float64

	SpeedMeanKMH   float64
	SpeedMedianKMH float64
	SpeedMaxKMH    float64

	// Cells counts distinct S2 cells visited, per summary level.
	Cells map[s2.CellLevel]int
}

// SummarizeTracks aggregates every track of doc, in document order.
// Validation is the lenient kind: coordinates must be sane, but
// time-less or elevation-less recordings still summarize with the
// figures they can support.
func SummarizeTracks(ctx context.Context, doc *gpx.GPX) ([]*TrackSummary, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	sums := make([]*TrackSummary, 0, len(doc.Tracks))
	for _, track := range doc.Tracks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		sums = append(sums, summarizeTrack(ctx, track))
	}
	return sums, nil
}

func summarizeTrack(ctx context.Context, track gpx.Track) *TrackSummary {
	sum := &TrackSummary{
		Name:     track.DisplayName(),
		Activity: track.Activity(),
		Segments: len(track.Segments),
		Cells:    map[s2.CellLevel]int{},
	}

	coverage := s2.NewCoverage(params.S2SummaryCellLevels...)
	speeds := stats.Float64Data{}

	var firstPoint, lastPoint *gpx.Point
	for _, segment := range track.Segments {
		sum.Points += len(segment.Points)
		if segment.IsEmpty() {
			continue
		}
		if firstPoint == nil {
			p := segment.Points[0]
			firstPoint = &p
		}
		p := segment.Points[len(segment.Points)-1]
		lastPoint = &p

		// Fan the segment out: one branch visits cells, the other
		// derives pairwise figures. Both drain concurrently.
		cellsIn, pairsIn := stream.Tee(ctx, stream.Slice(ctx, segment.Points))
		wait := sync.WaitGroup{}
		wait.Add(1)
		go func() {
			defer wait.Done()
			for point := range cellsIn {
				coverage.Visit(point.Pt())
			}
		}()
		for pair := range stream.Pairwise(ctx, pairsIn) {
			p1, p2 := pair.A, pair.B
			km := geo.Distance(p1.Pt(), p2.Pt())
			sum.DistanceKM += km
			if p1.HasElevation() && p2.HasElevation() {
				if delta := p2.MustElevation() - p1.MustElevation(); delta > 0 {
					sum.ElevationGainM += delta
				} else {
					sum.ElevationLossM -= delta
				}
			}
			if p1.HasTime() && p2.HasTime() {
				if hours := p2.MustTime().Sub(p1.MustTime()).Hours(); hours > 0 {
					speeds = append(speeds, km/hours)
				}
			}
		}
		wait.Wait()
	}

	if firstPoint != nil {
		sum.BeelineKM = geo.Distance(firstPoint.Pt(), lastPoint.Pt())
		if firstPoint.HasTime() && lastPoint.HasTime() {
			sum.Duration = lastPoint.MustTime().Sub(firstPoint.MustTime())
		}
	}

	for _, level := range params.S2SummaryCellLevels {
		sum.Cells[level] = coverage.Count(level)
	}

	if len(speeds) > 0 {
		statsMustFloat := func(fn func() (float64, error)) float64 {
			out, _ := fn()
			return out
		}
		sum.SpeedMeanKMH = common.DecimalToFixed(statsMustFloat(speeds.Mean), 2)
		sum.SpeedMedianKMH = common.DecimalToFixed(statsMustFloat(speeds.Median), 2)
		sum.SpeedMaxKMH = common.DecimalToFixed(statsMustFloat(speeds.Max), 2)
		if !sum.Activity.IsKnown() {
			sum.Activity = activity.InferFromSpeed(common.KMHToMPS(sum.SpeedMeanKMH))
		}
	}
	return sum
}
