package gpx

import (
	"strings"
	"testing"
	"time"
)

func validPoint(lat, lon float64) Point {
	ele := 100.0
	ts := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	return Point{Lat: lat, Lon: lon, Elevation: &ele, Time: &ts}
}

func docWith(points ...Point) *GPX {
	return &GPX{
		Version: "1.1",
		Tracks:  []Track{{Name: "T", Segments: []Segment{{Points: points}}}},
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		doc     *GPX
		wantErr string
	}{
		{"valid", docWith(validPoint(40.7, -74.0)), ""},
		{"empty doc", &GPX{}, ""},
		{"lat over range", docWith(validPoint(90.1, 0)), "invalid coordinate"},
		{"lat under range", docWith(validPoint(-91, 0)), "invalid coordinate"},
		{"lon over range", docWith(validPoint(0, 180.5)), "invalid coordinate"},
		{"lon under range", docWith(validPoint(0, -181)), "invalid coordinate"},
	}
	for _, c := range cases {
		t.Run(c.name, func(tt *testing.T) {
			err := c.doc.Validate()
			if c.wantErr == "" {
				if err != nil {
					tt.Errorf("got %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				tt.Errorf("got %v, want error containing %q", err, c.wantErr)
			}
		})
	}
}

func TestValidateForAnalysis(t *testing.T) {
	t.Run("valid", func(tt *testing.T) {
		if err := docWith(validPoint(40.7, -74.0)).ValidateForAnalysis(); err != nil {
			tt.Errorf("got %v, want nil", err)
		}
	})

	t.Run("missing elevation", func(tt *testing.T) {
		p := validPoint(40.7, -74.0)
		p.Elevation = nil
		err := docWith(p).ValidateForAnalysis()
		if err == nil || !strings.Contains(err.Error(), "missing elevation") {
			tt.Errorf("got %v", err)
		}
	})

	t.Run("missing time", func(tt *testing.T) {
		p := validPoint(40.7, -74.0)
		p.Time = nil
		err := docWith(p).ValidateForAnalysis()
		if err == nil || !strings.Contains(err.Error(), "missing time") {
			tt.Errorf("got %v", err)
		}
	})

	t.Run("zero time", func(tt *testing.T) {
		p := validPoint(40.7, -74.0)
		zero := time.Time{}
		p.Time = &zero
		err := docWith(p).ValidateForAnalysis()
		if err == nil || !strings.Contains(err.Error(), "zero time") {
			tt.Errorf("got %v", err)
		}
	})

	t.Run("error names the offending point", func(tt *testing.T) {
		good := validPoint(40.7, -74.0)
		bad := validPoint(40.8, -74.1)
		bad.Time = nil
		err := docWith(good, bad).ValidateForAnalysis()
		if err == nil || !strings.Contains(err.Error(), "point 1") {
			tt.Errorf("got %v, want error naming point 1", err)
		}
	})
}
