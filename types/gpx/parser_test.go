package gpx

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"not xml", "certainly not markup"},
		{"truncated", `<?xml version="1.0"?><gpx version="1.1"><trk><trkseg>`},
		{
			"missing lat attr",
			`<gpx version="1.1"><trk><trkseg><trkpt lon="-74.0061"><ele>1</ele></trkpt></trkseg></trk></gpx>`,
		},
		{
			"missing lon attr",
			`<gpx version="1.1"><trk><trkseg><trkpt lat="40.7"><ele>1</ele></trkpt></trkseg></trk></gpx>`,
		},
		{
			"garbage time",
			`<gpx version="1.1"><trk><trkseg><trkpt lat="40.7" lon="-74.0"><time>yesterday-ish</time></trkpt></trkseg></trk></gpx>`,
		},
		{
			"garbage latitude",
			`<gpx version="1.1"><trk><trkseg><trkpt lat="north" lon="-74.0"/></trkseg></trk></gpx>`,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(tt *testing.T) {
			doc, err := ParseReader(strings.NewReader(c.raw))
			if err == nil {
				tt.Errorf("parse succeeded, got %+v", doc)
			}
		})
	}
}

func TestParseOptionalFields(t *testing.T) {
	raw := `<gpx version="1.1" creator="x"><trk><trkseg>
		<trkpt lat="40.7128" lon="-74.0060"><ele>10</ele></trkpt>
		<trkpt lat="40.7129" lon="-74.0061"></trkpt>
	</trkseg></trk></gpx>`
	doc, err := ParseReader(strings.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	pts := doc.Tracks[0].Segments[0].Points
	if pts[0].HasTime() || pts[1].HasTime() {
		t.Error("no point should have a time")
	}
	if !pts[0].HasElevation() {
		t.Error("first point should have an elevation")
	}
	if pts[1].HasElevation() {
		t.Error("second point should not have an elevation")
	}
}

func TestParseDefaults(t *testing.T) {
	raw := `<gpx><trk><trkseg><trkpt lat="1" lon="2"/></trkseg></trk></gpx>`
	doc, err := ParseReader(strings.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Version != "1.1" {
		t.Errorf("version default got %q", doc.Version)
	}
	if doc.XMLNS != XMLNSGPX11 {
		t.Errorf("xmlns default got %q", doc.XMLNS)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(hikeTwoSegments))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := doc.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("output missing XML header")
	}

	back, err := ParseReader(strings.NewReader(out))
	if err != nil {
		t.Fatalf("re-parse of own output: %v", err)
	}
	if back.NumPoints() != doc.NumPoints() {
		t.Errorf("points got %d, want %d", back.NumPoints(), doc.NumPoints())
	}
	if len(back.Tracks) != 1 || back.Tracks[0].Name != "Test Track" || back.Tracks[0].Type != "hiking" {
		t.Errorf("track metadata did not survive: %+v", back.Tracks[0])
	}
	for i, p := range back.Points() {
		q := doc.Points()[i]
		if p.Lat != q.Lat || p.Lon != q.Lon {
			t.Errorf("point %d position got %v,%v want %v,%v", i, p.Lat, p.Lon, q.Lat, q.Lon)
		}
		if p.MustElevation() != q.MustElevation() {
			t.Errorf("point %d elevation got %v want %v", i, p.Elevation, q.Elevation)
		}
		if !p.MustTime().Equal(q.MustTime()) {
			t.Errorf("point %d time got %v want %v", i, p.Time, q.Time)
		}
	}
}

func TestWriteOmitsAbsentFields(t *testing.T) {
	ele := 12.5
	doc := &GPX{
		Version: "1.1",
		Creator: "gpxcat",
		XMLNS:   XMLNSGPX11,
		Tracks: []Track{{
			Name: "Quiet",
			Segments: []Segment{{
				Points: []Point{
					{Lat: 40.7128, Lon: -74.0060, Elevation: &ele},
					{Lat: 40.7129, Lon: -74.0061},
				},
			}},
		}},
	}

	var buf bytes.Buffer
	if err := doc.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if strings.Contains(out, "<time>") {
		t.Error("output contains a time element; none was set")
	}
	if !strings.Contains(out, "<ele>12.5</ele>") {
		t.Errorf("output missing elevation: %s", out)
	}
	// The second point has no elevation; exactly one ele element total.
	if strings.Count(out, "<ele>") != 1 {
		t.Errorf("want exactly one ele element: %s", out)
	}
}

func TestEmptySegmentShellSurvivesRoundTrip(t *testing.T) {
	doc := &GPX{
		Version: "1.1",
		Creator: "gpxcat",
		XMLNS:   XMLNSGPX11,
		Tracks: []Track{{
			Name:     "Shells",
			Segments: []Segment{{}, {Points: []Point{{Lat: 1, Lon: 2}}}},
		}},
	}
	var buf bytes.Buffer
	if err := doc.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := ParseReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(back.Tracks[0].Segments); got != 2 {
		t.Fatalf("segments got %d, want 2 (empty shell preserved)", got)
	}
	if !back.Tracks[0].Segments[0].IsEmpty() {
		t.Error("first segment should be empty")
	}
}
