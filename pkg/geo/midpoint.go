package geo

import "math"

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point is within the WGS84 coordinate range.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Midpoint computes the geographic midpoint of the given points by averaging
// their unit vectors on a sphere. Unlike a naive average of raw coordinates,
// this handles points straddling the antimeridian and points near the poles.
// A single point is its own midpoint. The caller must pass at least one point.
func Midpoint(points []Point) Point {
	var x, y, z float64
	for _, p := range points {
		lat := p.Lat * math.Pi / 180
		lng := p.Lng * math.Pi / 180
		x += math.Cos(lat) * math.Cos(lng)
		y += math.Cos(lat) * math.Sin(lng)
		z += math.Sin(lat)
	}

	n := float64(len(points))
	x /= n
	y /= n
	z /= n

	lng := math.Atan2(y, x)
	hyp := math.Sqrt(x*x + y*y)
	lat := math.Atan2(z, hyp)

	return Point{
		Lat: lat * 180 / math.Pi,
		Lng: lng * 180 / math.Pi,
	}
}
