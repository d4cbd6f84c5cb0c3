package events

import (
	"github.com/ethereum/go-ethereum/event"
	"github.com/rotblauer/gpxcat/geo/quality"
)

// NewIssueFeed is emitted for every issue any anomaly scan flags.
// Issues arrive in report order (speed, then elevation, then
// continuity, traversal order within each), after the scans complete.
// Subscribe before calling Analyze or you will miss the batch.
var NewIssueFeed = event.FeedOf[quality.Issue]{}

// AnalyzedFeed is emitted once per analyzed document with the complete
// issue set, empty slice included. Exporters that want all-or-nothing
// delivery subscribe here instead of NewIssueFeed.
var AnalyzedFeed = event.FeedOf[[]quality.Issue]{}
