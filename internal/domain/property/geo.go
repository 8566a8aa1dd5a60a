package property

import "math"

const earthRadiusKm = 6371.0

type box struct {
	minLat, maxLat float64
	minLng, maxLng float64
}

// boundingBox returns the lat/lng rectangle enclosing the radius around the
// origin. It is a cheap index-friendly pre-filter; candidates inside the box
// still go through the exact haversine check.
func boundingBox(lat, lng, radiusKm float64) box {
	latDelta := radiusKm / 111.0 // ~111 km per degree of latitude
	lngDelta := latDelta
	if cos := math.Cos(lat * math.Pi / 180); cos > 0.01 {
		lngDelta = radiusKm / (111.0 * cos)
	}
	return box{
		minLat: lat - latDelta,
		maxLat: lat + latDelta,
		minLng: lng - lngDelta,
		maxLng: lng + lngDelta,
	}
}

// haversineKm computes the great-circle distance between two points.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
