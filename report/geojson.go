package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/rotblauer/gpxcat/geo/quality"
)

// FeatureCollection converts issues to GeoJSON point features, one per
// issue, anchored where the issue was found. Properties carry the
// rendered report fields plus the kind-specific raw measurement, so
// downstream maps can style without re-parsing messages.
func FeatureCollection(issues []quality.Issue) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, issue := range issues {
		f := geojson.NewFeature(issue.Point())
		f.Properties["Kind"] = issue.Kind().String()
		f.Properties["Message"] = issue.Message()
		f.Properties["Location"] = issue.Location()
		f.Properties["Time"] = issue.Time().Format(time.RFC3339)
		f.Properties["Time_Unix"] = issue.Time().Unix()
		switch v := issue.(type) {
		case quality.SpeedIssue:
			f.Properties["SpeedKMH"] = v.KMH
		case quality.ElevationIssue:
			f.Properties["ElevationDeltaMeters"] = v.DeltaMeters
		case quality.ContinuityIssue:
			f.Properties["GapSeconds"] = v.GapSeconds
		default:
			panic("unhandled default case")
		}
		fc.Append(f)
	}
	return fc
}

// WriteGeoJSON streams the issue collection as one JSON document.
func WriteGeoJSON(w io.Writer, issues []quality.Issue) error {
	return json.NewEncoder(w).Encode(FeatureCollection(issues))
}
