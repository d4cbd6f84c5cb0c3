package testdata

// GPX_Hike_TwoSegments is a small hike: one track, a three-point segment
// and a one-point segment, a second between samples.
var GPX_Hike_TwoSegments = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="Test GPX"
     xmlns="http://www.topografix.com/GPX/1/1"
     xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
     xsi:schemaLocation="http://www.topografix.com/GPX/1/1 http://www.topografix.com/GPX/1/1/gpx.xsd">
    <trk>
        <name>Test Track</name>
        <type>hiking</type>
        <trkseg>
            <trkpt lat="40.7128" lon="-74.0060">
                <ele>10.0</ele>
                <time>2024-01-01T10:00:00Z</time>
            </trkpt>
            <trkpt lat="40.7129" lon="-74.0061">
                <ele>20.0</ele>
                <time>2024-01-01T10:00:01Z</time>
            </trkpt>
            <trkpt lat="40.7130" lon="-74.0062">
                <ele>30.0</ele>
                <time>2024-01-01T10:00:02Z</time>
            </trkpt>
        </trkseg>
        <trkseg>
            <trkpt lat="40.7131" lon="-74.0063">
                <ele>40.0</ele>
                <time>2024-01-01T10:00:03Z</time>
            </trkpt>
        </trkseg>
    </trk>
</gpx>`

// GPX_Unnamed carries no track name and a 90 meter elevation jump.
var GPX_Unnamed = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="Test GPX" xmlns="http://www.topografix.com/GPX/1/1">
    <trk>
        <trkseg>
            <trkpt lat="46.9292" lon="-114.0877">
                <ele>965.0</ele>
                <time>2024-11-18T17:54:27Z</time>
            </trkpt>
            <trkpt lat="46.9293" lon="-114.0878">
                <ele>1055.0</ele>
                <time>2024-11-18T17:54:37Z</time>
            </trkpt>
        </trkseg>
    </trk>
</gpx>`

// GPX_EmptyMiddleSegment has a half-hour recording gap hidden behind an
// empty segment. The continuity scan never sees it.
var GPX_EmptyMiddleSegment = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="Test GPX" xmlns="http://www.topografix.com/GPX/1/1">
    <trk>
        <name>Gappy</name>
        <trkseg>
            <trkpt lat="44.9778" lon="-93.2650">
                <ele>252.0</ele>
                <time>2024-06-01T08:00:00Z</time>
            </trkpt>
            <trkpt lat="44.9779" lon="-93.2651">
                <ele>253.0</ele>
                <time>2024-06-01T08:00:05Z</time>
            </trkpt>
        </trkseg>
        <trkseg>
        </trkseg>
        <trkseg>
            <trkpt lat="44.9790" lon="-93.2660">
                <ele>254.0</ele>
                <time>2024-06-01T08:30:00Z</time>
            </trkpt>
            <trkpt lat="44.9791" lon="-93.2661">
                <ele>255.0</ele>
                <time>2024-06-01T08:30:05Z</time>
            </trkpt>
        </trkseg>
    </trk>
</gpx>`

// GPX_NoTimes is shaped like privacy-filter output: elevations kept,
// no time element anywhere.
var GPX_NoTimes = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="gpxcat" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Test Track</name>
    <type>hiking</type>
    <trkseg>
      <trkpt lat="40.7128" lon="-74.0060">
        <ele>10</ele>
      </trkpt>
      <trkpt lat="40.7129" lon="-74.0061">
        <ele>20</ele>
      </trkpt>
    </trkseg>
  </trk>
</gpx>`

// GPX_MissingLat is malformed: the second point dropped its lat attribute.
var GPX_MissingLat = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="Test GPX" xmlns="http://www.topografix.com/GPX/1/1">
    <trk>
        <name>Broken</name>
        <trkseg>
            <trkpt lat="40.7128" lon="-74.0060">
                <ele>10.0</ele>
                <time>2024-01-01T10:00:00Z</time>
            </trkpt>
            <trkpt lon="-74.0061">
                <ele>20.0</ele>
                <time>2024-01-01T10:00:01Z</time>
            </trkpt>
        </trkseg>
    </trk>
</gpx>`
