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
	"os"

	"github.com/rotblauer/gpxcat/api"
	"github.com/rotblauer/gpxcat/report"
	"github.com/spf13/cobra"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary FILE...",
	Short: "Print per-track aggregates for GPX files",
	Long: `Print per-track aggregates for one or more GPX files: point and
segment counts, traversed and beeline distance, duration, elevation
gain and loss, speed statistics, and distinct S2 cells visited.

Recordings without times or elevations still summarize; the figures
needing them stay zero. Timestamp-stripped privacy output is fine here.

Examples:

  gpxcat summary ride.gpx
  gpxcat summary rides/*.gpx.gz
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		for _, path := range args {
			doc, err := api.Ingest(path)
			if err != nil {
				log.Fatal(err)
			}
			sums, err := api.SummarizeTracks(context.Background(), doc)
			if err != nil {
				log.Fatal(err)
			}
			if err := report.WriteSummaries(os.Stdout, path, sums); err != nil {
				log.Fatal(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
