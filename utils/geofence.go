package utils

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"p9e.in/sitehub/models"
)

const earthRadiusMeters = 6371000

// DistanceMeters returns the great-circle distance between two coordinates
// using the haversine formula. It is pure, symmetric, and zero for
// coincident points.
func DistanceMeters(a, b models.Coordinate) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinRadius reports whether point lies within radiusMeters of center.
// A radius <= 0 defines no valid fence and always returns false.
func WithinRadius(point, center models.Coordinate, radiusMeters float64) bool {
	if radiusMeters <= 0 {
		return false
	}
	return DistanceMeters(point, center) <= radiusMeters
}

// WithinBoundary reports whether point lies inside the polygon boundary.
// Fewer than 3 vertices cannot form a fence.
func WithinBoundary(point models.Coordinate, boundary []models.Coordinate) bool {
	if len(boundary) < 3 {
		return false
	}
	ring := make(orb.Ring, 0, len(boundary)+1)
	for _, c := range boundary {
		ring = append(ring, orb.Point{c.Lon, c.Lat})
	}
	// close the ring if the caller did not
	if ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return planar.RingContains(ring, orb.Point{point.Lon, point.Lat})
}

// InsideSiteFence applies whichever fence the site defines: the polygon
// boundary when present, otherwise the circular radius around the site
// location. Sites with no fence accept any point.
func InsideSiteFence(point models.Coordinate, site models.Site) bool {
	if len(site.Boundary) >= 3 {
		return WithinBoundary(point, site.Boundary)
	}
	if site.Location != nil && site.RadiusMeters > 0 {
		return WithinRadius(point, *site.Location, site.RadiusMeters)
	}
	return true
}

// ValidateCoordinate checks that a coordinate is in range.
func ValidateCoordinate(c models.Coordinate) error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %.6f is out of valid range [-90, 90]", c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %.6f is out of valid range [-180, 180]", c.Lon)
	}
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
