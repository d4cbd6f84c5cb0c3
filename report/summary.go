package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rotblauer/gpxcat/api"
	"github.com/rotblauer/gpxcat/params"
)

// WriteSummaries prints per-track aggregates for one source file.
// Figures are humanized for reading, not parsing; the numbers worth
// machining live on the TrackSummary itself.
func WriteSummaries(w io.Writer, source string, sums []*api.TrackSummary) error {
	buf := bytes.Buffer{}
	fmt.Fprintln(&buf, source)
	for _, sum := range sums {
		fmt.Fprintf(&buf, "  Track %s %s %s\n", sum.Name, sum.Activity.Emoji(), sum.Activity)
		fmt.Fprintf(&buf, "    points %s in %d segments\n",
			humanize.Comma(int64(sum.Points)), sum.Segments)
		fmt.Fprintf(&buf, "    distance %s km (beeline %s km)\n",
			humanize.CommafWithDigits(sum.DistanceKM, 2),
			humanize.CommafWithDigits(sum.BeelineKM, 2))
		fmt.Fprintf(&buf, "    duration %s\n", sum.Duration.Round(time.Second))
		fmt.Fprintf(&buf, "    elevation +%s m / -%s m\n",
			humanize.CommafWithDigits(sum.ElevationGainM, 0),
			humanize.CommafWithDigits(sum.ElevationLossM, 0))
		fmt.Fprintf(&buf, "    speed km/h mean %.2f median %.2f max %.2f\n",
			sum.SpeedMeanKMH, sum.SpeedMedianKMH, sum.SpeedMaxKMH)
		parts := make([]string, 0, len(params.S2SummaryCellLevels))
		for _, level := range params.S2SummaryCellLevels {
			parts = append(parts, fmt.Sprintf("%d @ level %d", sum.Cells[level], int(level)))
		}
		fmt.Fprintf(&buf, "    s2 cells %s\n", strings.Join(parts, ", "))
	}
	_, err := w.Write(buf.Bytes())
	return err
}
