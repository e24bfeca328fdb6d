// Package units holds the primitive unit conversions the engine relies on.
package units

// MetersPerNauticalMile is the length of one nautical mile in metres.
const MetersPerNauticalMile = 1852.0

// KnotsToMs converts a speed in knots to metres per second.
func KnotsToMs(speedKn float64) float64 {
	return speedKn * MetersPerNauticalMile / 3600
}

// MsToKnots converts a speed in metres per second to knots.
func MsToKnots(speedMs float64) float64 {
	return speedMs * 3600 / MetersPerNauticalMile
}

// LitersToM3 converts litres to cubic metres.
func LitersToM3(l float64) float64 { return l * 0.001 }

// M3ToLiters converts cubic metres to litres.
func M3ToLiters(m3 float64) float64 { return m3 * 1000 }
