package cluster

import (
	"sync/atomic"

	"github.com/bmharper/quadtree-go"
)

// BuildStats describes the tree produced by a rebuild.
type BuildStats struct {
	Inserted int
	Dropped  int // Points outside the root box
	Nodes    int
	Depth    int
	Box      quadtree.BoundingBox
}

// Index holds the current tree and swaps it atomically on rebuild.
// Queries take one snapshot of the tree when they start, so a rebuild never
// affects a query in flight. Set Grid and BucketCapacity before first use.
type Index[T any] struct {
	Grid           Grid
	BucketCapacity int // Minimum 1. Default 4

	root atomic.Pointer[quadtree.Node[T]]
}

func NewIndex[T any](grid Grid) *Index[T] {
	return &Index[T]{
		Grid:           grid,
		BucketCapacity: 4,
	}
}

// Rebuild builds a fresh tree over box and makes it current.
func (ix *Index[T]) Rebuild(points []quadtree.Point[T], box quadtree.BoundingBox) BuildStats {
	root := quadtree.NewNode[T](box, ix.BucketCapacity)
	dropped := root.InsertAll(points)
	ix.root.Store(root)
	return BuildStats{
		Inserted: len(points) - dropped,
		Dropped:  dropped,
		Nodes:    root.NodeCount(),
		Depth:    root.Depth(),
		Box:      box,
	}
}

// RebuildCovering is Rebuild over the smallest box holding all points.
func (ix *Index[T]) RebuildCovering(points []quadtree.Point[T]) BuildStats {
	return ix.Rebuild(points, quadtree.CoveringBox(points))
}

// Snapshot returns the current tree, or nil before the first rebuild.
func (ix *Index[T]) Snapshot() *quadtree.Node[T] {
	return ix.root.Load()
}

func (ix *Index[T]) Clusters(rect quadtree.BoundingBox, zoom float64) []Annotation[T] {
	return Clustered(ix.Snapshot(), rect, zoom, ix.Grid)
}

func (ix *Index[T]) Search(rect quadtree.BoundingBox) []quadtree.Point[T] {
	return ix.Snapshot().Search(rect)
}

// Len is the number of points in the current tree.
func (ix *Index[T]) Len() int {
	return ix.Snapshot().Len()
}
