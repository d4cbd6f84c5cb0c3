// Package geo computes great-circle geometry on a 6371 km sphere.
//
// orb/geo measures on the WGS84 radius in meters; track tooling has
// always dealt in round-sphere kilometers, and the figures users compare
// against (speed thresholds, trim distances) assume it.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/rotblauer/gpxcat/common"
)

// Distance returns the great-circle distance between a and b in
// kilometers, by the haversine formula. Symmetric; zero for identical
// points. Out-of-range coordinates are not an error: garbage in,
// garbage distance out.
func Distance(a, b orb.Point) float64 {
	lat1, lon1 := radians(a.Y()), radians(a.X())
	lat2, lon2 := radians(b.Y()), radians(b.X())
	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(h))

	return common.EarthRadiusKM * c
}

// CumulativeDistances returns the running along-track distance for a
// point sequence: element i is the total distance from pts[0] through
// pts[i+1], so the slice has len(pts)-1 elements. Fewer than two points
// yield nil.
func CumulativeDistances(pts []orb.Point) []float64 {
	if len(pts) < 2 {
		return nil
	}
	out := make([]float64, len(pts)-1)
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += Distance(pts[i-1], pts[i])
		out[i-1] = total
	}
	return out
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
