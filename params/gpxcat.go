package params

import (
	"compress/gzip"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/metrics"
)

func init() {
	metrics.Enabled = MetricsEnabled
}

// MetricsEnabled gates the go-ethereum metrics package.
// Meters created while this is false are no-ops.
var MetricsEnabled = true

const (
	GPXVersion = "1.1"
	GPXCreator = "gpxcat"

	GPXExt = ".gpx"
	GZExt  = ".gz"
)

var DefaultScanMeterInterval = 10 * time.Second

var DefaultGZipCompressionLevel = gzip.BestCompression

// INFLUXDB_* configure the optional issue exporter from the environment,
// for the purpose of running gpxcat _without_ a config file.
var INFLUXDB_URL = os.Getenv("INFLUXDB_URL")
var INFLUXDB_TOKEN = os.Getenv("INFLUXDB_TOKEN")
var INFLUXDB_ORG = os.Getenv("INFLUXDB_ORG")
var INFLUXDB_BUCKET = os.Getenv("INFLUXDB_BUCKET")
