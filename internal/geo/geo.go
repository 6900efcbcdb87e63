// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package geo provides great-circle distance calculations for matching
// persisted events against a visitor's coordinates.
package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// NearbyRadiusKm is the maximum great-circle distance, in kilometers, at
// which an event is considered "nearby" a visitor (roughly 100 miles).
const NearbyRadiusKm = 160.0

// Distance returns the haversine great-circle distance in kilometers
// between two latitude/longitude pairs given in decimal degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// IsNearby reports whether the two points are within NearbyRadiusKm of
// each other.
func IsNearby(lat1, lon1, lat2, lon2 float64) bool {
	return Distance(lat1, lon1, lat2, lon2) <= NearbyRadiusKm
}
