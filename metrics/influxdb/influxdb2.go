package influxdb

import (
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/rotblauer/gpxcat/geo/quality"
	"github.com/rotblauer/gpxcat/params"
)

// ExportIssues posts scan findings to an InfluxDB Write API.
// Because it accepts a slice, use batches. The Write API will buffer and flush.
// The last error encountered is returned.
func ExportIssues(issues []quality.Issue) error {
	opts := influxdb2.DefaultOptions()
	opts.SetPrecision(time.Second)
	client := influxdb2.NewClientWithOptions(params.INFLUXDB_URL, params.INFLUXDB_TOKEN, opts)
	writeAPI := client.WriteAPI(params.INFLUXDB_ORG, params.INFLUXDB_BUCKET)

	// Errors returns a channel for reading errors which occurs during async writes.
	// Must be called before performing any writes for errors to be collected.
	// The chan is unbuffered and must be drained or the writer will block.
	// https://github.com/influxdata/influxdb-client-go?tab=readme-ov-file#reading-async-errors
	errorsCh := writeAPI.Errors()
	var err error
	wait := sync.WaitGroup{}
	wait.Add(1)
	go func() {
		defer wait.Done()
		for e := range errorsCh {
			if e != nil {
				err = e
			}
		}
	}()

	for _, issue := range issues {
		p := influxdb2.NewPointWithMeasurement("gpxissue").
			SetTime(issue.Time()).
			AddTag("kind", issue.Kind().String()).
			AddTag("location", issue.Location()).
			AddField("latitude", issue.Point().Lat()).
			AddField("longitude", issue.Point().Lon()).
			AddField("message", issue.Message())

		switch v := issue.(type) {
		case quality.SpeedIssue:
			p.AddField("speed_kmh", v.KMH)
		case quality.ElevationIssue:
			p.AddField("elevation_delta_m", v.DeltaMeters)
		case quality.ContinuityIssue:
			p.AddField("gap_seconds", v.GapSeconds)
		}

		writeAPI.WritePoint(p)
	}
	writeAPI.Flush()
	client.Close()
	wait.Wait()
	return err
}
