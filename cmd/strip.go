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

	"github.com/paulmach/orb"
	"github.com/rotblauer/gpxcat/api"
	"github.com/rotblauer/gpxcat/params"
	"github.com/spf13/cobra"
)

var optTrimDistance float64
var optStartLat float64
var optStartLon float64
var optStartRadius float64

// stripPrivacyCmd represents the strip-privacy command
var stripPrivacyCmd = &cobra.Command{
	Use:   "strip-privacy IN OUT",
	Short: "Write a shareable copy of a GPX file",
	Long: `Write a copy of a GPX file with every timestamp dropped, the first
and last stretch of each segment trimmed away, and (optionally) every
point near a given location excluded.

Trim distance and radius are miles, one of 0.25, 0.5, or 1.0; zero
disables. A trim distance longer than the segment trims nothing --
that is long-standing behavior, not an accident.

The output is written whole or not at all; a failed run never leaves a
partial file behind.

Examples:

  gpxcat strip-privacy ride.gpx ride-public.gpx
  gpxcat strip-privacy --trim-distance 0.5 ride.gpx ride-public.gpx.gz
  gpxcat strip-privacy --start-lat 46.9 --start-lon -114.1 --start-radius 0.25 ride.gpx out.gpx
`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		setDefaultSlog(cmd, args)

		config := &params.PrivacyConfig{
			TrimDistanceMiles: viperFloat(cmd, "trim-distance", "privacy.trim-distance", optTrimDistance),
			AnchorRadiusMiles: viperFloat(cmd, "start-radius", "privacy.start-radius", optStartRadius),
		}
		if cmd.Flags().Changed("start-lat") || cmd.Flags().Changed("start-lon") {
			config.Anchor = &orb.Point{optStartLon, optStartLat}
		}

		if err := api.StripPrivacy(context.Background(), args[0], args[1], config); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(stripPrivacyCmd)

	stripPrivacyCmd.Flags().Float64Var(&optTrimDistance, "trim-distance", 0,
		"distance to trim from each end of each segment, miles (0.25|0.5|1.0, 0 disables)")
	stripPrivacyCmd.Flags().Float64Var(&optStartLat, "start-lat", 0, "latitude of the location to exclude")
	stripPrivacyCmd.Flags().Float64Var(&optStartLon, "start-lon", 0, "longitude of the location to exclude")
	stripPrivacyCmd.Flags().Float64Var(&optStartRadius, "start-radius", 0,
		"exclusion radius around the location, miles (0.25|0.5|1.0, 0 disables)")
}
