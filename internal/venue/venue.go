package venue

import (
	"github.com/bmharper/quadtree-go"
	"github.com/google/uuid"
)

// Venue is a place shown on the map, such as a hotel.
type Venue struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// New creates a venue with a fresh random ID.
func New(name, phone string, lat, lon float64) *Venue {
	return &Venue{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
		Lat:   lat,
		Lon:   lon,
	}
}

// Points places each venue on the index plane, latitude on x and longitude on y.
// The points refer to the venues, they do not copy them.
func Points(venues []*Venue) []quadtree.Point[*Venue] {
	points := make([]quadtree.Point[*Venue], 0, len(venues))
	for _, v := range venues {
		points = append(points, quadtree.NewPoint(v.Lat, v.Lon, v))
	}
	return points
}
