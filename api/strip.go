package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rotblauer/gpxcat/geo/privacy"
	"github.com/rotblauer/gpxcat/gpxz"
	"github.com/rotblauer/gpxcat/params"
)

// StripPrivacy reads in, applies the privacy transform, and writes the
// scrubbed document to out (gzipped when out ends in .gz). The output
// lands whole or not at all: the document is encoded to memory before
// the first byte hits disk, so a failed transform never leaves a
// partial artifact behind.
func StripPrivacy(ctx context.Context, in, out string, config *params.PrivacyConfig) error {
	doc, err := Ingest(in)
	if err != nil {
		return err
	}
	// Coordinate sanity only; time-less documents are legitimate input
	// here, this transform produces them.
	if err := doc.Validate(); err != nil {
		return err
	}

	scrubbed, err := privacy.Strip(ctx, doc, config)
	if err != nil {
		return err
	}

	buf := bytes.Buffer{}
	if err := scrubbed.WriteTo(&buf); err != nil {
		return err
	}

	w, err := gpxz.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	if _, err := io.Copy(w, &buf); err != nil {
		w.Close()
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	if err := w.Close(); err != nil {
		return err
	}

	slog.Info("Scrubbed GPX", "in", in, "out", out,
		"points.in", doc.NumPoints(), "points.out", scrubbed.NumPoints())
	return nil
}
