package quadtree

import "iter"

// Traverse visits every node depth-first, each node before its children,
// children in NW, NE, SW, SE order. A nil node is an empty tree.
func (n *Node[T]) Traverse(visit func(node *Node[T])) {
	n.walk(func(node *Node[T]) bool {
		visit(node)
		return true
	})
}

// Nodes yields the same sequence as Traverse.
func (n *Node[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		n.walk(yield)
	}
}

func (n *Node[T]) walk(yield func(*Node[T]) bool) bool {
	if n == nil {
		return true
	}
	if !yield(n) {
		return false
	}
	if n.children == nil {
		return true
	}
	for _, c := range n.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// GatherDataInRange calls emit for every point inside rng.
// Subtrees whose box does not touch rng are skipped. Each stored point is
// emitted at most once.
func (n *Node[T]) GatherDataInRange(rng BoundingBox, emit func(p Point[T])) {
	n.gather(rng, func(p Point[T]) bool {
		emit(p)
		return true
	})
}

// InRange yields the same sequence as GatherDataInRange, stopping when the consumer does.
func (n *Node[T]) InRange(rng BoundingBox) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		n.gather(rng, yield)
	}
}

func (n *Node[T]) gather(rng BoundingBox, yield func(Point[T]) bool) bool {
	if n == nil || !n.box.Intersects(rng) {
		return true
	}
	for _, p := range n.points {
		if rng.Contains(p.X, p.Y) {
			if !yield(p) {
				return false
			}
		}
	}
	if n.children == nil {
		return true
	}
	for _, c := range n.children {
		if !c.gather(rng, yield) {
			return false
		}
	}
	return true
}

// Search returns all points inside rng.
func (n *Node[T]) Search(rng BoundingBox) []Point[T] {
	results := []Point[T]{}
	return n.SearchFast(rng, results)
}

// SearchFast accepts a 'results' as input. If you are performing millions of queries,
// then reusing a 'results' slice will reduce the number of allocations.
func (n *Node[T]) SearchFast(rng BoundingBox, results []Point[T]) []Point[T] {
	results = results[:0]
	n.gather(rng, func(p Point[T]) bool {
		results = append(results, p)
		return true
	})
	return results
}

// Len is the total number of points in the tree.
func (n *Node[T]) Len() int {
	total := 0
	n.Traverse(func(node *Node[T]) {
		total += len(node.points)
	})
	return total
}

// NodeCount is the number of nodes in the tree, including the root.
func (n *Node[T]) NodeCount() int {
	count := 0
	n.Traverse(func(*Node[T]) {
		count++
	})
	return count
}

// Depth is the number of levels in the tree. A lone root has depth 1.
func (n *Node[T]) Depth() int {
	if n == nil {
		return 0
	}
	if n.children == nil {
		return 1
	}
	deepest := 0
	for _, c := range n.children {
		deepest = max(deepest, c.Depth())
	}
	return deepest + 1
}
