package stream

import (
	"log/slog"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ethereum/go-ethereum/metrics"
	"github.com/rotblauer/gpxcat/common"
	"github.com/rotblauer/gpxcat/params"
)

// ScanMeter rates trackpoint traversal, logging progress on a ticker
// so long scans of big files show signs of life.
// Marks are expected from a single goroutine.
type ScanMeter struct {
	label      time.Time // any value, eg the last point's capture time
	interval   time.Duration
	started    time.Time
	ticker     *time.Ticker
	tracks     []string
	reg        metrics.Registry
	points     metrics.Counter
	issues     metrics.Counter
	pointMeter metrics.Meter
	issueMeter metrics.Meter
}

func NewScanMeter(interval time.Duration) *ScanMeter {
	// Enable metrics package.
	// Won't work without this global setting.
	metrics.Enabled = params.MetricsEnabled

	reg := metrics.NewRegistry()
	sm := &ScanMeter{
		reg:        reg,
		interval:   interval,
		started:    time.Now(),
		tracks:     []string{},
		points:     metrics.NewCounter(),
		issues:     metrics.NewCounter(),
		pointMeter: metrics.NewMeter(),
		issueMeter: metrics.NewMeter(),
	}

	if err := reg.Register("points.count", sm.points); err != nil {
		panic(err)
	}
	if err := reg.Register("issues.count", sm.issues); err != nil {
		panic(err)
	}
	if err := reg.Register("points.meter", sm.pointMeter); err != nil {
		panic(err)
	}
	if err := reg.Register("issues.meter", sm.issueMeter); err != nil {
		panic(err)
	}
	go sm.run()
	return sm
}

// Mark counts one scanned point. A zero label leaves the last one standing.
func (sm *ScanMeter) Mark(label time.Time) {
	if !label.IsZero() {
		sm.label = label
	}
	sm.points.Inc(1)
	sm.pointMeter.Mark(1)
}

// MarkIssues counts n classified issues.
func (sm *ScanMeter) MarkIssues(n int) {
	sm.issues.Inc(int64(n))
	sm.issueMeter.Mark(int64(n))
}

func (sm *ScanMeter) AddTrack(name string) {
	// safeguard bad coding dupe adds
	for _, t := range sm.tracks {
		if t == name {
			return
		}
	}
	sm.tracks = append(sm.tracks, name)
}

func (sm *ScanMeter) DropTrack(name string) {
	for i, t := range sm.tracks {
		if t == name {
			sm.tracks = append(sm.tracks[:i], sm.tracks[i+1:]...)
			break
		}
	}
}

func (sm *ScanMeter) run() {
	sm.ticker = time.NewTicker(sm.interval)
	for range sm.ticker.C {
		sm.log()
	}
}

func (sm *ScanMeter) log() {
	pointSnap := sm.pointMeter.Snapshot()
	issueSnap := sm.issueMeter.Snapshot()

	slog.Info("Scanned points", "n", humanize.Comma(pointSnap.Count()),
		"tracks", strings.Join(sm.tracks, ","),
		"scan.last", sm.label.Format(time.DateTime),
		"pps", common.DecimalToFixed(pointSnap.Rate1(), 0),
		"issues", humanize.Comma(issueSnap.Count()),
		"running", time.Since(sm.started).Round(time.Second))
}

func (sm *ScanMeter) Stop() {
	if sm == nil || sm.ticker == nil {
		return
	}
	sm.ticker.Stop()
	sm.pointMeter.Stop()
	sm.issueMeter.Stop()
}
