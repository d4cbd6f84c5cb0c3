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
	"fmt"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gpxcat",
	Short: "GPX track-log quality analyzer and privacy scrubber",
	Long: `gpxcat reads GPX track logs and tells you what is wrong with them,
or makes them safe to share.

analyze flags implausible speeds, abrupt elevation jumps, and recording
gaps between segments. strip-privacy trims the ends of a track, excludes
the neighborhood of a home location, and drops every timestamp.
summary prints per-track aggregates.

Files ending in .gz are read and written gzipped, transparently.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gpxcat.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".gpxcat" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gpxcat")
	}

	viper.SetEnvPrefix("GPXCAT")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaultSlog levels the default logger per the persistent
// --verbose flag. Commands call it first thing in Run.
func setDefaultSlog(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)
}

// viperFloat resolves a numeric option: an explicitly set flag wins,
// then a config file key, then the flag's default.
func viperFloat(cmd *cobra.Command, flagName, viperKey string, flagValue float64) float64 {
	if cmd.Flags().Changed(flagName) {
		return flagValue
	}
	if viper.IsSet(viperKey) {
		return viper.GetFloat64(viperKey)
	}
	return flagValue
}
