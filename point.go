package quadtree

// Point is a position on the plane with an attached payload.
// The tree copies the Point value, so use a pointer or handle for Data when
// the payload is a shared record.
type Point[T any] struct {
	X    float64
	Y    float64
	Data T
}

func NewPoint[T any](x, y float64, data T) Point[T] {
	return Point[T]{X: x, Y: y, Data: data}
}
