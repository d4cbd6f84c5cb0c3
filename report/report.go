// Package report renders scan findings for people and for machines.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rotblauer/gpxcat/geo/quality"
)

// WriteText prints the classic analyzer report: a block per issue in
// report order, or the one-line all-clear. The wording is load-bearing;
// people grep for it.
func WriteText(w io.Writer, issues []quality.Issue) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, "No issues found in the GPX file.")
		return err
	}
	if _, err := fmt.Fprintf(w, "\nFound %d issues:\n\n", len(issues)); err != nil {
		return err
	}
	for _, issue := range issues {
		_, err := fmt.Fprintf(w, "[%s] %s\nLocation: %s\nTime: %s\n\n",
			strings.ToUpper(issue.Kind().String()), issue.Message(),
			issue.Location(), issue.Time().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return nil
}
