package s2

// CellLevel represents the S2 cell level, from 0-30.
// https://s2geometry.io/resources/s2cell_statistics.html
type CellLevel int

const (
	// CellLevel0 covers earth in 6 cells.
	CellLevel0 CellLevel = 0

	// CellLevel5 is a modest nation-state.
	CellLevel5 CellLevel = 5

	// CellLevel8 is about a day's walk/ride across.
	CellLevel8 CellLevel = 8

	// CellLevel13 is about a kilometer.
	CellLevel13 CellLevel = 13

	// CellLevel16 is approximately 140m on an edge; throwing distance.
	CellLevel16 CellLevel = 16

	// CellLevel23 is approximately a human body; 1 square meter.
	CellLevel23 CellLevel = 23

	// CellLevel30 is the leaf level.
	CellLevel30 CellLevel = 30
)
