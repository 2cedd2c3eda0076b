package core

import "math"

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance between a and b in kilometers,
// computed with the Haversine formula. The result is unrounded; callers that
// surface it for display should pass it through RoundKm so rounding never
// compounds inside further computation.
//
// Coordinates are taken as-is: out-of-range latitudes/longitudes are not
// rejected here.
func DistanceKm(a, b Coordinate) float64 {
	latDelta := toRadians(b.Latitude - a.Latitude)
	lonDelta := toRadians(b.Longitude - a.Longitude)

	hav := math.Sin(latDelta/2)*math.Sin(latDelta/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(lonDelta/2)*math.Sin(lonDelta/2)
	c := 2 * math.Atan2(math.Sqrt(hav), math.Sqrt(1-hav))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to two decimal places for display.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
