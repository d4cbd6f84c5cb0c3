package api

import (
	"log/slog"

	"github.com/rotblauer/gpxcat/common"
	"github.com/rotblauer/gpxcat/params"
)

func init() {
	// Tests run quiet; failures speak for themselves.
	common.SlogResetLevel(slog.LevelWarn + 1)
	params.MetricsEnabled = false
}
