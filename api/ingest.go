// Package api is the operation layer: one exported function per thing
// the tool does. CLI-agnostic; commands are thin wrappers over these.
package api

import (
	"fmt"
	"log/slog"

	"github.com/rotblauer/gpxcat/gpxz"
	"github.com/rotblauer/gpxcat/types/gpx"
)

// Ingest reads and parses one GPX file, transparently decompressing
// .gz paths. The document comes back whole or not at all.
func Ingest(path string) (*gpx.GPX, error) {
	r, err := gpxz.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer r.Close()

	doc, err := gpx.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("Ingested GPX", "source", path,
		"tracks", len(doc.Tracks), "points", doc.NumPoints())
	return doc, nil
}
