package quadtree

// Build creates a tree over box and inserts points in input order.
// Points outside box are dropped. The insertion order decides which points stay
// in a node's own bucket, so the same input order always gives the same tree.
func Build[T any](points []Point[T], box BoundingBox, capacity int) *Node[T] {
	root := NewNode[T](box, capacity)
	root.InsertAll(points)
	return root
}

// BuildCovering is Build over the smallest box that holds all points, so nothing is dropped.
func BuildCovering[T any](points []Point[T], capacity int) *Node[T] {
	return Build(points, CoveringBox(points), capacity)
}
