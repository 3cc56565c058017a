package cluster

// Annotation is either a single point (Count == 1) or a cluster of several.
// For a single point X, Y is its position and Payload its data. For a cluster
// X, Y is the centroid of the members and Payload belongs to the first member found.
type Annotation[T any] struct {
	X       float64
	Y       float64
	Count   int
	Payload T
}

func (a Annotation[T]) IsCluster() bool {
	return a.Count > 1
}
