package kernel

import (
	"errors"
	"fmt"

	"resto/internal/pkg/errs"
	"resto/internal/pkg/guard"
)

const (
	// GeoLatMin is the minimum valid latitude in degrees.
	GeoLatMin = -90.0
	// GeoLatMax is the maximum valid latitude in degrees.
	GeoLatMax = 90.0
	// GeoLonMin is the minimum valid longitude in degrees.
	GeoLonMin = -180.0
	// GeoLonMax is the maximum valid longitude in degrees.
	GeoLonMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created using NewGeoPoint to ensure validity.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a delivery destination as a validated latitude/longitude pair.
// GeoPoint is an immutable value object; the zero value is invalid and will fail
// validation - use NewGeoPoint to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(6.3703, 2.3912)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(point) // Output: GeoPoint(6.370300,2.391200)
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lon   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates.
// Latitude must be within [GeoLatMin..GeoLatMax] and longitude within
// [GeoLonMin..GeoLonMax]. Returns an error if either value is out of bounds.
func NewGeoPoint(lat float64, lon float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLon(lon)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed using the constructor.
// The zero value of GeoPoint is invalid and will fail this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.lon
}

// String returns a human-readable representation in the form "GeoPoint(lat,lon)".
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.lat, p.lon)
}

// IsEqual compares two geo points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.lat == other.lat && p.lon == other.lon, nil
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoLatMin || lat > GeoLatMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoLatMin, GeoLatMax)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLon(lon float64) error {
	if lon < GeoLonMin || lon > GeoLonMax {
		return errs.NewValueIsOutOfRangeError("longitude", lon, GeoLonMin, GeoLonMax)
	}
	p.lon = lon
	return nil
}
