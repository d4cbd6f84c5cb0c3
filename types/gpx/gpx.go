package gpx

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/rotblauer/gpxcat/names"
	"github.com/rotblauer/gpxcat/types/activity"
)

// XMLNSGPX11 is the GPX 1.1 namespace.
const XMLNSGPX11 = "http://www.topografix.com/GPX/1/1"

// Point is a single recorded sample: position, elevation, capture time.
// Elevation and Time are pointers because not every producer writes them;
// the privacy filter emits points without times on purpose, and those
// files must still parse. Points are read-only once parsed.
type Point struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`

	Elevation *float64   `xml:"ele,omitempty"`
	Time      *time.Time `xml:"time,omitempty"`

	// Speed is derived, km/h, never serialized.
	Speed float64 `xml:"-"`
}

// UnmarshalXML decodes a trkpt, insisting on the lat and lon attributes.
// The stock decoder would happily leave them zero, and a silent 0,0 is a
// point in the Gulf of Guinea, not a parse error.
func (p *Point) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var aux struct {
		Lat       *float64   `xml:"lat,attr"`
		Lon       *float64   `xml:"lon,attr"`
		Elevation *float64   `xml:"ele"`
		Time      *time.Time `xml:"time"`
	}
	if err := d.DecodeElement(&aux, &start); err != nil {
		return err
	}
	if aux.Lat == nil {
		return fmt.Errorf("trkpt missing lat attribute")
	}
	if aux.Lon == nil {
		return fmt.Errorf("trkpt missing lon attribute")
	}
	p.Lat = *aux.Lat
	p.Lon = *aux.Lon
	p.Elevation = aux.Elevation
	p.Time = aux.Time
	return nil
}

// Pt returns the position as an orb.Point (x=lon, y=lat).
func (p Point) Pt() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

func (p Point) HasElevation() bool { return p.Elevation != nil }
func (p Point) HasTime() bool      { return p.Time != nil }

// MustTime gets the capture time or panics.
// Callers gate on HasTime, or run behind ValidateForAnalysis.
func (p Point) MustTime() time.Time {
	if p.Time == nil {
		panic("point has no time")
	}
	return *p.Time
}

// MustElevation gets the elevation or panics.
func (p Point) MustElevation() float64 {
	if p.Elevation == nil {
		panic("point has no elevation")
	}
	return *p.Elevation
}

// Segment is a contiguous, time-ordered run of recorded points.
// Point order is recording order and is never re-sorted; every
// "consecutive" relation downstream leans on it.
type Segment struct {
	Points []Point `xml:"trkpt"`
}

func (s Segment) IsEmpty() bool { return len(s.Points) == 0 }

// Track is a named recording of one or more segments.
// Name and Type are optional in the wild.
type Track struct {
	Name     string    `xml:"name,omitempty"`
	Type     string    `xml:"type,omitempty"`
	Segments []Segment `xml:"trkseg"`
}

// DisplayName labels the track for issues and reports,
// substituting a placeholder for the nameless.
func (t Track) DisplayName() string {
	return names.AliasOrName(t.Name)
}

// Activity interprets the track's type field, eg. "hiking", "cycling".
func (t Track) Activity() activity.Activity {
	return activity.FromString(t.Type)
}

// GPX is the document: version/creator metadata and an ordered
// sequence of tracks.
type GPX struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`

	XMLNS    string `xml:"xmlns,attr,omitempty"`
	XMLNSXSI string `xml:"xmlns:xsi,attr,omitempty"`
	XSI      string `xml:"xsi:schemaLocation,attr,omitempty"`

	Tracks []Track `xml:"trk"`
}

// Points returns every point of every track in traversal order.
func (g *GPX) Points() []Point {
	var points []Point
	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			points = append(points, segment.Points...)
		}
	}
	return points
}

// NumPoints counts points without flattening.
func (g *GPX) NumPoints() int {
	n := 0
	for _, track := range g.Tracks {
		for _, segment := range track.Segments {
			n += len(segment.Points)
		}
	}
	return n
}
