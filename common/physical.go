package common

// All units are metric unless suffixed otherwise:
// - Speed is in m/s
// - Distance is in meters
// - Time is in seconds

const SpeedOfWalkingMin = 0.23  // or 0.8 km/h or 0.5 mph
const SpeedOfWalkingMean = 1.2  // or 4.3 km/h or 2.7 mph
const SpeedOfWalkingMax = 1.78  // or 6.4 km/h or 4 mph
const SpeedOfRunningMin = 2.23  // or 8 km/h or 5 mph
const SpeedOfRunningMean = 3.35 // or 12 km/h or 8min/mile
const SpeedOfRunningMax = 5.56  // or 20 km/h or 12 mph
const SpeedOfCyclingMin = SpeedOfRunningMin
const SpeedOfCyclingMean = 5.36 // or 19.3 km/h or 12 mph
const SpeedOfCyclingMax = 11.76 // or 42 km/h or 26 mph
const SpeedOfDrivingMin = 4.47  // or 16 km/h or 10 mph
const SpeedOfDrivingCityUSMean = 13.9
const SpeedOfDrivingFreeway = 33.33    // or 120 km/h or 75 mph
const SpeedOfDrivingAutobahn = 67.06   // or 241 km/h or 150 mph
const SpeedOfCommercialFlight = 250.0  // or 900 km/h

const ElevationOfEverest = 8848.0
const ElevationOfTroposphere = 11000.0
const ElevationOfDeadSea = -430.0

// EarthRadiusKM is the mean radius of the sphere the track geometry lives on.
const EarthRadiusKM = 6371.0

const KilometersPerMile = 1.60934

// KMHToMPS converts kilometers-per-hour to meters-per-second.
func KMHToMPS(kmh float64) float64 { return kmh / 3.6 }

// MPSToKMH converts meters-per-second to kilometers-per-hour.
func MPSToKMH(mps float64) float64 { return mps * 3.6 }
