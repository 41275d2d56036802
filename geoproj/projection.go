// Package geoproj implements the local geographic<->Cartesian projection
// contract spec §1/§6 treats as an external collaborator, plus the
// WGS-84-based great-circle distance and bearing formulas spec §4.18 and
// the geographic outlier predicate (§4.16) consume.
//
// The projection is a local equirectangular (tangent-plane) approximation
// centred on a reference point, adequate for the metre-scale spans movetk's
// algorithms operate over; it is not a substitute for a full geodesy
// library, which no example in this module's corpus depends on.
package geoproj

import "math"

// EarthRadiusMeters is the mean WGS-84 Earth radius used by the haversine
// and local-projection formulas.
const EarthRadiusMeters = 6371008.8

// LocalReference is a local tangent-plane Cartesian reference frame
// centred on (lat0, lon0), implementing the `project`/`inverse` contract of
// spec §6.
type LocalReference struct {
	lat0, lon0 float64 // radians
	cosLat0    float64
}

// NewLocalReference constructs a reference frame centred on (lat0, lon0),
// given in degrees.
func NewLocalReference(lat0, lon0 float64) LocalReference {
	latR := lat0 * math.Pi / 180
	return LocalReference{
		lat0:    latR,
		lon0:    lon0 * math.Pi / 180,
		cosLat0: math.Cos(latR),
	}
}

// Project converts (lat, lon) in degrees to local Cartesian (xEast,
// yNorth) in metres.
func (r LocalReference) Project(lat, lon float64) (xEast, yNorth float64) {
	latR := lat * math.Pi / 180
	lonR := lon * math.Pi / 180
	xEast = EarthRadiusMeters * (lonR - r.lon0) * r.cosLat0
	yNorth = EarthRadiusMeters * (latR - r.lat0)
	return xEast, yNorth
}

// Inverse converts local Cartesian (yNorth, xEast) metres back to (lat,
// lon) in degrees. The argument order mirrors spec §6's `inverse(y,x)`.
func (r LocalReference) Inverse(yNorth, xEast float64) (lat, lon float64) {
	latR := r.lat0 + yNorth/EarthRadiusMeters
	lonR := r.lon0 + xEast/(EarthRadiusMeters*r.cosLat0)
	return latR * 180 / math.Pi, lonR * 180 / math.Pi
}

// Haversine returns the great-circle distance in metres between two
// (lat, lon) points given in degrees, on a sphere of radius
// EarthRadiusMeters. It does not model the WGS-84 ellipsoid's flattening,
// so it is not an ellipsoidal geodesic distance.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMeters * c
}

// Bearing returns the initial great-circle bearing from (lat1,lon1) to
// (lat2,lon2), in degrees normalised to [0,360) (spec §4.18: "azimuth
// normalised to [0,360)").
func Bearing(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	y := math.Sin(dLambda) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dLambda)
	theta := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(theta+360, 360)
}
