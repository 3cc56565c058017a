package cluster

// Package cluster reduces the points of a quadtree inside a query rectangle to
// map annotations, merging points that share a zoom-dependent grid cell.

import (
	"github.com/bmharper/quadtree-go"
)

type cellSum[T any] struct {
	cell  Cell
	first quadtree.Point[T]
	sumX  float64
	sumY  float64
	count int
}

// Clustered returns the annotations for every grid cell that overlaps rect at the given zoom.
// Points are gathered from rect grown by one cell on each side, so cells that straddle the
// edge of rect are counted whole. A nil root or an empty rect gives an empty slice.
// The output is in Hilbert order of the cells, and is the same for repeated calls on one tree.
func Clustered[T any](root *quadtree.Node[T], rect quadtree.BoundingBox, zoom float64, grid Grid) []Annotation[T] {
	annotations := []Annotation[T]{}
	if root == nil || rect.IsEmpty() {
		return annotations
	}

	size := grid.CellSize(zoom)
	lo := grid.Cell(rect.X0, rect.Y0, size)
	hi := grid.Cell(rect.XF, rect.YF, size)

	index := map[Cell]int{}
	sums := []cellSum[T]{}
	root.GatherDataInRange(rect.Expand(size), func(p quadtree.Point[T]) {
		c := grid.Cell(p.X, p.Y, size)
		if c.X < lo.X || c.X > hi.X || c.Y < lo.Y || c.Y > hi.Y {
			// margin cell that does not touch rect, and may be only partly gathered
			return
		}
		i, ok := index[c]
		if !ok {
			i = len(sums)
			index[c] = i
			sums = append(sums, cellSum[T]{cell: c, first: p})
		}
		s := &sums[i]
		s.sumX += p.X
		s.sumY += p.Y
		s.count++
	})

	values := make([]uint32, 0, len(sums))
	for _, s := range sums {
		a := Annotation[T]{
			X:       s.first.X,
			Y:       s.first.Y,
			Count:   s.count,
			Payload: s.first.Data,
		}
		if s.count > 1 {
			a.X = s.sumX / float64(s.count)
			a.Y = s.sumY / float64(s.count)
		}
		annotations = append(annotations, a)
		values = append(values, hilbertRank(s.cell, lo, hi))
	}
	sortByHilbert(values, annotations, 0, len(annotations)-1)
	return annotations
}
