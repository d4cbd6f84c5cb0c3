package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/rotblauer/gpxcat/geo/quality"
	"github.com/tidwall/gjson"
)

var reportT0 = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func sampleIssues() []quality.Issue {
	return []quality.Issue{
		quality.SpeedIssue{
			TrackName: "Morning Ride",
			At:        reportT0,
			Origin:    orb.Point{-93.2650, 44.9778},
			KMH:       123.456,
		},
		quality.ContinuityIssue{
			TrackName:  "Morning Ride",
			At:         reportT0.Add(5 * time.Minute),
			Origin:     orb.Point{-93.2700, 44.9800},
			GapSeconds: 420,
		},
	}
}

func TestWriteTextAllClear(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "No issues found in the GPX file.\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteTextBlocks(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleIssues()); err != nil {
		t.Fatal(err)
	}
	want := "\nFound 2 issues:\n\n" +
		"[SPEED] High speed detected: 123.46 km/h\n" +
		"Location: Track Morning Ride\n" +
		"Time: 2024-01-01T10:00:00Z\n\n" +
		"[CONTINUITY] Large time gap between segments: 420.00 seconds\n" +
		"Location: Track Morning Ride\n" +
		"Time: 2024-01-01T10:05:00Z\n\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestWriteGeoJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGeoJSON(&buf, sampleIssues()); err != nil {
		t.Fatal(err)
	}
	res := gjson.ParseBytes(buf.Bytes())
	if got := res.Get("type").String(); got != "FeatureCollection" {
		t.Errorf("type got %q", got)
	}
	if got := res.Get("features.#").Int(); got != 2 {
		t.Fatalf("feature count got %d, want 2", got)
	}
	first := res.Get("features.0")
	if got := first.Get("properties.Kind").String(); got != "speed" {
		t.Errorf("kind got %q", got)
	}
	if got := first.Get("properties.SpeedKMH").Float(); got != 123.456 {
		t.Errorf("raw speed got %v", got)
	}
	if got := first.Get("geometry.coordinates.0").Float(); got != -93.2650 {
		t.Errorf("lon got %v", got)
	}
	if got := first.Get("geometry.coordinates.1").Float(); got != 44.9778 {
		t.Errorf("lat got %v", got)
	}
	second := res.Get("features.1")
	if got := second.Get("properties.GapSeconds").Float(); got != 420 {
		t.Errorf("gap got %v", got)
	}
	if got := second.Get("properties.Time").String(); got != "2024-01-01T10:05:00Z" {
		t.Errorf("time got %q", got)
	}
	if got := second.Get("properties.Time_Unix").Int(); got != reportT0.Add(5*time.Minute).Unix() {
		t.Errorf("unix time got %v", got)
	}
}

func TestWriteGeoJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGeoJSON(&buf, nil); err != nil {
		t.Fatal(err)
	}
	res := gjson.ParseBytes(buf.Bytes())
	if got := res.Get("features.#").Int(); got != 0 {
		t.Errorf("feature count got %d, want 0", got)
	}
	if !res.Get("features").Exists() {
		t.Error("features key must exist even when empty")
	}
}
