package quadtree

import "fmt"

// Quadrant names one of the four children of a subdivided node.
type Quadrant int

// Children are always tried and visited in this order.
const (
	NorthWest Quadrant = iota
	NorthEast
	SouthWest
	SouthEast
)

func (q Quadrant) String() string {
	switch q {
	case NorthWest:
		return "NorthWest"
	case NorthEast:
		return "NorthEast"
	case SouthWest:
		return "SouthWest"
	case SouthEast:
		return "SouthEast"
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// Node is one region of the tree. A leaf holds up to Capacity points.
// Once full it splits into four children and keeps its own points, so a
// subdivided node always holds exactly Capacity points.
type Node[T any] struct {
	box      BoundingBox
	capacity int
	points   []Point[T]
	children *[4]*Node[T]
}

// NewNode creates an empty leaf. Capacity is raised to 1 if smaller.
func NewNode[T any](box BoundingBox, capacity int) *Node[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Node[T]{
		box:      box,
		capacity: capacity,
		points:   make([]Point[T], 0, capacity),
	}
}

func (n *Node[T]) Box() BoundingBox {
	return n.box
}

func (n *Node[T]) Capacity() int {
	return n.capacity
}

// Points returns the points held directly by this node, not those of its children.
// The slice is shared with the tree and must not be modified.
func (n *Node[T]) Points() []Point[T] {
	return n.points
}

// IsLeaf is true until the node subdivides.
func (n *Node[T]) IsLeaf() bool {
	return n.children == nil
}

// Child returns the given quadrant, or nil for a leaf.
func (n *Node[T]) Child(q Quadrant) *Node[T] {
	if n.children == nil {
		return nil
	}
	return n.children[q]
}

// Insert adds p to the tree rooted at n.
// It returns false, leaving the tree untouched, if p lies outside n's box.
// A point on a split line goes to the first child (NW, NE, SW, SE) containing it.
func (n *Node[T]) Insert(p Point[T]) bool {
	if !n.box.Contains(p.X, p.Y) {
		return false
	}

	if n.children == nil {
		if len(n.points) < n.capacity {
			n.points = append(n.points, p)
			return true
		}
		n.subdivide()
	}

	for _, c := range n.children {
		if c.Insert(p) {
			return true
		}
	}

	// only reachable through floating point edge effects at the split line
	return false
}

// InsertChecked is Insert, reporting a rejected point as ErrPointOutOfBounds.
func (n *Node[T]) InsertChecked(p Point[T]) error {
	if !n.Insert(p) {
		return fmt.Errorf("%w: (%v, %v) not in %+v", ErrPointOutOfBounds, p.X, p.Y, n.box)
	}
	return nil
}

// InsertAll inserts points in order and returns how many were rejected.
func (n *Node[T]) InsertAll(points []Point[T]) (dropped int) {
	for _, p := range points {
		if !n.Insert(p) {
			dropped++
		}
	}
	return dropped
}

func (n *Node[T]) subdivide() {
	quads := n.box.Quadrants()
	n.children = &[4]*Node[T]{}
	for i, q := range quads {
		n.children[i] = NewNode[T](q, n.capacity)
	}
}
