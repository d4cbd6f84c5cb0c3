/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/rotblauer/gpxcat/api"
	"github.com/rotblauer/gpxcat/events"
	"github.com/rotblauer/gpxcat/geo/quality"
	"github.com/rotblauer/gpxcat/metrics/influxdb"
	"github.com/rotblauer/gpxcat/params"
	"github.com/rotblauer/gpxcat/report"
	"github.com/spf13/cobra"
)

var optMaxSpeed float64
var optMaxElevationChange float64
var optMaxGap float64
var optJSON bool
var optInfluxDB bool

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE",
	Short: "Scan a GPX file for data-quality anomalies",
	Long: `Scan a GPX track log for implausible speeds, abrupt elevation
changes, and recording gaps between segments.

Thresholds are exceeded strictly; a value equal to the maximum passes.
Flags win over config file keys (thresholds.max-speed,
thresholds.max-elevation-change, thresholds.max-gap), which win over
the defaults.

Finding issues is a normal outcome and exits 0. Only a file that cannot
be read or parsed is an error.

Examples:

  gpxcat analyze ride.gpx
  gpxcat analyze --max-speed 45 ride.gpx.gz
  gpxcat analyze --json ride.gpx | jq '.features[].properties'
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		config := &params.AnalyzeConfig{
			MaxSpeed:           viperFloat(cmd, "max-speed", "thresholds.max-speed", optMaxSpeed),
			MaxElevationChange: viperFloat(cmd, "max-elevation-change", "thresholds.max-elevation-change", optMaxElevationChange),
			MaxSegmentGap:      viperFloat(cmd, "max-gap", "thresholds.max-gap", optMaxGap),
		}

		// Subscribe before Analyze sends, or miss the batch.
		var exportDone chan error
		if optInfluxDB {
			analyzed := make(chan []quality.Issue, 1)
			sub := events.AnalyzedFeed.Subscribe(analyzed)
			defer sub.Unsubscribe()
			exportDone = make(chan error, 1)
			go func() {
				exportDone <- influxdb.ExportIssues(<-analyzed)
			}()
		}

		doc, err := api.Ingest(args[0])
		if err != nil {
			log.Fatal(err)
		}
		issues, err := api.Analyze(context.Background(), doc, config)
		if err != nil {
			log.Fatal(err)
		}

		if optJSON {
			err = report.WriteGeoJSON(os.Stdout, issues)
		} else {
			err = report.WriteText(os.Stdout, issues)
		}
		if err != nil {
			log.Fatal(err)
		}

		if exportDone != nil {
			if err := <-exportDone; err != nil {
				// Export trouble does not invalidate the report already printed.
				slog.Error("InfluxDB export failed", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64Var(&optMaxSpeed, "max-speed",
		params.DefaultAnalyzeConfig.MaxSpeed, "maximum plausible speed, km/h")
	analyzeCmd.Flags().Float64Var(&optMaxElevationChange, "max-elevation-change",
		params.DefaultAnalyzeConfig.MaxElevationChange, "maximum plausible elevation change between consecutive points, meters")
	analyzeCmd.Flags().Float64Var(&optMaxGap, "max-gap",
		params.DefaultAnalyzeConfig.MaxSegmentGap, "maximum recording gap between segments, seconds")
	analyzeCmd.Flags().BoolVar(&optJSON, "json", false, "print issues as a GeoJSON FeatureCollection instead of text")
	analyzeCmd.Flags().BoolVar(&optInfluxDB, "influxdb", false, "export issues to InfluxDB (INFLUXDB_URL, _TOKEN, _ORG, _BUCKET)")
}
