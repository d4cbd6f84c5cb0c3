package testdata

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rotblauer/gpxcat/types/gpx"
)

// basepath is the root directory of this package.
var basepath string

func init() {
	_, currentFile, _, _ := runtime.Caller(0)
	basepath = filepath.Dir(currentFile)
}

// Path returns the absolute path the given relative file or directory path,
// relative to this testdata/ directory in the user's GOPATH.
// If rel is already absolute, it is returned unmodified.
// Taken from https://github.com/grpc/grpc-go/blob/master/testdata/testdata.go.
func Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}

	return filepath.Join(basepath, rel)
}

// MustParse parses a raw fixture document or panics.
// Fixtures are constants; a parse failure is a broken fixture, not a test case.
func MustParse(raw string) *gpx.GPX {
	doc, err := gpx.ParseReader(strings.NewReader(raw))
	if err != nil {
		panic(err)
	}
	return doc
}
