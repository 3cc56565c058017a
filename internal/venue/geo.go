package venue

import (
	"fmt"

	"github.com/bmharper/quadtree-go"
	"github.com/golang/geo/s2"
)

// USBounds is the latitude/longitude box covering the United States, including Alaska and Hawaii.
var USBounds = quadtree.NewBoundingBox(19, -166, 72, -53)

// boundsPadding keeps edge venues inside Bounds despite the round trip through radians.
const boundsPadding = 1e-6

// Validate checks that the venue has a real latitude and longitude.
func Validate(v *Venue) error {
	if !s2.LatLngFromDegrees(v.Lat, v.Lon).IsValid() {
		return fmt.Errorf("%w: lat %v lon %v", ErrInvalidCoordinate, v.Lat, v.Lon)
	}
	return nil
}

// Bounds returns a box in index coordinates (latitude, longitude) holding every venue.
// A set of venues spanning the antimeridian gets the full longitude range.
func Bounds(venues []*Venue) quadtree.BoundingBox {
	rect := s2.EmptyRect()
	for _, v := range venues {
		rect = rect.AddPoint(s2.LatLngFromDegrees(v.Lat, v.Lon))
	}
	if rect.IsEmpty() {
		return quadtree.BoundingBox{}
	}
	lo, hi := rect.Lo(), rect.Hi()
	box := quadtree.NewBoundingBox(lo.Lat.Degrees(), lo.Lng.Degrees(), hi.Lat.Degrees(), hi.Lng.Degrees())
	if rect.Lng.IsInverted() {
		box.Y0, box.YF = -180, 180
	}
	return box.Expand(boundsPadding)
}
