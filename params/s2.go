package params

import "github.com/rotblauer/gpxcat/s2"

// S2SummaryCellLevels are the levels the summary reports distinct-cell
// coverage at.
var S2SummaryCellLevels = []s2.CellLevel{
	s2.CellLevel8,  // A day's ride
	s2.CellLevel16, // Throwing distance
}
