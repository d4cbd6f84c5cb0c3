package api

import (
	"context"
	"sync"

	"github.com/rotblauer/gpxcat/events"
	"github.com/rotblauer/gpxcat/geo/quality"
	"github.com/rotblauer/gpxcat/params"
	"github.com/rotblauer/gpxcat/stream"
	"github.com/rotblauer/gpxcat/types/gpx"
)

// Analyze runs the three anomaly scans over an analysis-ready document,
// returning their combined findings in report order: speed, then
// elevation, then continuity, traversal order within each.
//
// The model is read-only to every scan, so the scans run concurrently;
// the concatenation order is fixed regardless. Findings are published
// on events.NewIssueFeed (one by one) and events.AnalyzedFeed (the
// whole batch) after the order is fixed, so subscribers see exactly
// what the caller sees.
func Analyze(ctx context.Context, doc *gpx.GPX, config *params.AnalyzeConfig) ([]quality.Issue, error) {
	if config == nil {
		config = &params.DefaultAnalyzeConfig
	}
	if err := doc.ValidateForAnalysis(); err != nil {
		return nil, err
	}

	meter := stream.NewScanMeter(params.DefaultScanMeterInterval)
	defer meter.Stop()

	var speed, elevation, continuity []quality.Issue
	wait := sync.WaitGroup{}
	wait.Add(4)
	go func() {
		// The walk is the meter's single marking goroutine.
		defer wait.Done()
		for _, track := range doc.Tracks {
			label := track.DisplayName()
			meter.AddTrack(label)
			for _, segment := range track.Segments {
				for _, point := range segment.Points {
					meter.Mark(point.MustTime())
				}
			}
			meter.DropTrack(label)
		}
	}()
	go func() {
		defer wait.Done()
		speed = quality.ScanSpeed(ctx, doc, config)
	}()
	go func() {
		defer wait.Done()
		elevation = quality.ScanElevation(ctx, doc, config)
	}()
	go func() {
		defer wait.Done()
		continuity = quality.ScanContinuity(ctx, doc, config)
	}()
	wait.Wait()

	issues := make([]quality.Issue, 0, len(speed)+len(elevation)+len(continuity))
	issues = append(issues, speed...)
	issues = append(issues, elevation...)
	issues = append(issues, continuity...)
	meter.MarkIssues(len(issues))

	for _, issue := range issues {
		events.NewIssueFeed.Send(issue)
	}
	events.AnalyzedFeed.Send(issues)
	return issues, nil
}
