/*
Package s2 measures the ground a track covers using the S2 Geometry Library.

Each point maps to the S2 cell containing it at some level; the number of
distinct cells visited is a crude but honest area-coverage figure, immune
to a recorder idling in place and inflating point counts.
*/
package s2

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// CellIDWithLevel returns the cellID truncated to the given level.
func CellIDWithLevel(cellID s2.CellID, level CellLevel) s2.CellID {
	// https://docs.s2cell.aliddell.com/en/stable/s2_concepts.html#truncation
	var lsb uint64 = 1 << (2 * (30 - level))
	truncatedCellID := (uint64(cellID) & -lsb) | lsb
	return s2.CellID(truncatedCellID)
}

// CellIDForPoint returns the cell containing pt ([lon, lat]) at the given level.
func CellIDForPoint(pt orb.Point, level CellLevel) s2.CellID {
	return CellIDWithLevel(s2.CellIDFromLatLng(s2.LatLngFromDegrees(pt.Y(), pt.X())), level)
}

// Coverage counts distinct cells visited per requested level.
type Coverage struct {
	levels map[CellLevel]map[s2.CellID]struct{}
}

func NewCoverage(levels ...CellLevel) *Coverage {
	c := &Coverage{levels: make(map[CellLevel]map[s2.CellID]struct{}, len(levels))}
	for _, level := range levels {
		c.levels[level] = make(map[s2.CellID]struct{})
	}
	return c
}

// Visit records pt against every tracked level.
func (c *Coverage) Visit(pt orb.Point) {
	for level, cells := range c.levels {
		cells[CellIDForPoint(pt, level)] = struct{}{}
	}
}

// Count returns the number of distinct cells visited at the given level,
// zero for levels never tracked.
func (c *Coverage) Count(level CellLevel) int {
	return len(c.levels[level])
}
