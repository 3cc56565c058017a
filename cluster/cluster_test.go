package cluster

import (
	"math/rand"
	"testing"
	"time"

	"github.com/bmharper/quadtree-go"
	"github.com/stretchr/testify/require"
)

func TestCellSizeMonotonic(t *testing.T) {
	for _, g := range []Grid{DefaultGrid(), MapGrid(88, 256), {BaseSize: 1000}} {
		floor := g.MinSize
		if floor <= 0 {
			floor = DefaultMinSize
		}
		prev := g.CellSize(-1)
		for zoom := 0.0; zoom < 80; zoom += 0.5 {
			size := g.CellSize(zoom)
			if prev > floor {
				require.Less(t, size, prev, "zoom %v", zoom)
			} else {
				require.Equal(t, floor, size)
			}
			prev = size
		}
		require.Equal(t, floor, g.CellSize(200))
	}
	require.Equal(t, 88*360/256.0, MapGrid(88, 256).CellSize(0))
	require.Equal(t, 88*360/256.0/8, MapGrid(88, 256).CellSize(3))
}

func TestCellAlignment(t *testing.T) {
	g := Grid{OriginX: -5, OriginY: 5, BaseSize: 10}
	require.Equal(t, Cell{X: 0, Y: 0}, g.Cell(-5, 5, 10))
	require.Equal(t, Cell{X: 0, Y: -1}, g.Cell(4.99, 4.99, 10))
	require.Equal(t, Cell{X: 1, Y: 0}, g.Cell(5, 14.99, 10))
	require.Equal(t, quadtree.NewBoundingBox(5, 15, 15, 25), g.CellBox(Cell{X: 1, Y: 1}, 10))
}

func TestEmptyTree(t *testing.T) {
	var root *quadtree.Node[int]
	out := Clustered(root, quadtree.NewBoundingBox(0, 0, 10, 10), 3, DefaultGrid())
	require.NotNil(t, out)
	require.Empty(t, out)

	empty := quadtree.NewNode[int](quadtree.NewBoundingBox(0, 0, 10, 10), 4)
	require.Empty(t, Clustered(empty, quadtree.NewBoundingBox(0, 0, 10, 10), 3, DefaultGrid()))

	ix := NewIndex[int](DefaultGrid())
	require.Empty(t, ix.Clusters(quadtree.NewBoundingBox(0, 0, 10, 10), 0))
	require.Empty(t, ix.Search(quadtree.NewBoundingBox(0, 0, 10, 10)))
	require.Equal(t, 0, ix.Len())
}

func TestCoincidentPointsCluster(t *testing.T) {
	points := []quadtree.Point[string]{
		quadtree.NewPoint(5.0, 5.0, "a"),
		quadtree.NewPoint(5.0, 5.0, "b"),
	}
	root := quadtree.Build(points, quadtree.NewBoundingBox(0, 0, 10, 10), 4)
	out := Clustered(root, quadtree.NewBoundingBox(0, 0, 10, 10), 60, DefaultGrid())
	require.Equal(t, []Annotation[string]{{X: 5, Y: 5, Count: 2, Payload: "a"}}, out)
	require.True(t, out[0].IsCluster())
}

func TestSinglesAtHighZoom(t *testing.T) {
	points := []quadtree.Point[string]{
		quadtree.NewPoint(1.0, 1.0, "a"),
		quadtree.NewPoint(1.0000001, 1.0, "b"),
		quadtree.NewPoint(2.0, 2.0, "c"),
	}
	root := quadtree.Build(points, quadtree.NewBoundingBox(0, 0, 10, 10), 4)
	out := Clustered(root, quadtree.NewBoundingBox(0, 0, 10, 10), 60, DefaultGrid())
	require.Equal(t, 3, len(out))
	for _, a := range out {
		require.False(t, a.IsCluster())
	}
}

func TestAggregatesAtLowZoom(t *testing.T) {
	points := []quadtree.Point[string]{
		quadtree.NewPoint(1.0, 1.0, "a"),
		quadtree.NewPoint(2.0, 2.0, "b"),
		quadtree.NewPoint(3.0, 3.0, "c"),
		quadtree.NewPoint(15.0, 15.0, "d"),
	}
	root := quadtree.Build(points, quadtree.NewBoundingBox(0, 0, 100, 100), 4)
	grid := Grid{BaseSize: 10}
	out := Clustered(root, quadtree.NewBoundingBox(0, 0, 20, 20), 0, grid)
	require.Equal(t, []Annotation[string]{
		{X: 2, Y: 2, Count: 3, Payload: "a"},
		{X: 15, Y: 15, Count: 1, Payload: "d"},
	}, out)

	// one zoom level in, the cell is 5 wide and d is on its own
	out = Clustered(root, quadtree.NewBoundingBox(0, 0, 20, 20), 1, grid)
	require.Equal(t, 2, len(out))
	out = Clustered(root, quadtree.NewBoundingBox(0, 0, 20, 20), -1, grid)
	require.Equal(t, []Annotation[string]{{X: 5.25, Y: 5.25, Count: 4, Payload: "a"}}, out)
}

func TestMarginCells(t *testing.T) {
	points := []quadtree.Point[string]{
		quadtree.NewPoint(4.0, 4.0, "inside"),
		quadtree.NewPoint(8.0, 8.0, "same cell, outside rect"),
		quadtree.NewPoint(12.0, 12.0, "next cell"),
		quadtree.NewPoint(-3.0, 2.0, "cell left of rect"),
	}
	root := quadtree.Build(points, quadtree.NewBoundingBox(-100, -100, 100, 100), 4)
	out := Clustered(root, quadtree.NewBoundingBox(0, 0, 5, 5), 0, Grid{BaseSize: 10})
	require.Equal(t, []Annotation[string]{{X: 6, Y: 6, Count: 2, Payload: "inside"}}, out)
}

func TestMalformedRect(t *testing.T) {
	root := quadtree.Build([]quadtree.Point[int]{quadtree.NewPoint(1.0, 1.0, 1)}, quadtree.NewBoundingBox(0, 0, 10, 10), 4)
	require.Empty(t, Clustered(root, quadtree.NewBoundingBox(10, 10, 0, 0), 0, DefaultGrid()))
}

func randomPoints(rng *rand.Rand, n int, dim float64) []quadtree.Point[int] {
	points := make([]quadtree.Point[int], 0, n)
	for i := 0; i < n; i++ {
		points = append(points, quadtree.NewPoint(rng.Float64()*dim, rng.Float64()*dim, i))
	}
	return points
}

func TestStableAcrossQueries(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	points := randomPoints(rng, 5000, 100)
	root := quadtree.Build(points, quadtree.NewBoundingBox(0, 0, 100, 100), 4)
	grid := Grid{BaseSize: 10}

	byCell := func(out []Annotation[int]) map[Cell]Annotation[int] {
		m := map[Cell]Annotation[int]{}
		for _, a := range out {
			first := points[a.Payload]
			m[grid.Cell(first.X, first.Y, 10)] = a
		}
		return m
	}
	a := byCell(Clustered(root, quadtree.NewBoundingBox(0, 0, 50, 50), 0, grid))
	b := byCell(Clustered(root, quadtree.NewBoundingBox(20, 20, 80, 80), 0, grid))

	shared := 0
	for x := 2.0; x <= 5; x++ {
		for y := 2.0; y <= 5; y++ {
			c := Cell{X: x, Y: y}
			require.Contains(t, a, c)
			require.Equal(t, a[c], b[c])
			shared++
		}
	}
	require.Equal(t, 16, shared)

	// every point is counted in exactly one cell
	total := 0
	for _, an := range Clustered(root, root.Box(), 0, grid) {
		total += an.Count
	}
	require.Equal(t, len(points), total)
}

func TestRepeatableOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	root := quadtree.Build(randomPoints(rng, 2000, 100), quadtree.NewBoundingBox(0, 0, 100, 100), 4)
	rect := quadtree.NewBoundingBox(10, 10, 90, 90)
	first := Clustered(root, rect, 2, DefaultGrid())
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Clustered(root, rect, 2, DefaultGrid()))
	}
}

func TestHilbertOrder(t *testing.T) {
	lo, hi := Cell{X: 0, Y: 0}, Cell{X: 3, Y: 3}
	require.Equal(t, uint32(0), hilbertRank(lo, lo, hi))
	require.Equal(t, uint32(0), hilbertRank(Cell{X: 5, Y: 5}, Cell{X: 5, Y: 5}, Cell{X: 5, Y: 5}))

	values := []uint32{9, 3, 7, 3, 1}
	items := []Annotation[int]{{Payload: 9}, {Payload: 3}, {Payload: 7}, {Payload: 33}, {Payload: 1}}
	sortByHilbert(values, items, 0, len(values)-1)
	require.Equal(t, []uint32{1, 3, 3, 7, 9}, values)
	require.Equal(t, 1, items[0].Payload)
	require.Equal(t, 7, items[3].Payload)
	require.Equal(t, 9, items[4].Payload)
}

func BenchmarkClustered(b *testing.B) {
	rng := rand.New(rand.NewSource(0))
	root := quadtree.Build(randomPoints(rng, 1000*1000, 1000), quadtree.NewBoundingBox(0, 0, 1000, 1000), 4)
	grid := Grid{BaseSize: 1000}

	for _, zoom := range []float64{4, 8, 12} {
		start := time.Now()
		nquery := 100
		nresults := 0
		for i := 0; i < nquery; i++ {
			x := float64(i * 5)
			nresults += len(Clustered(root, quadtree.NewBoundingBox(x, x, x+200, x+200), zoom, grid))
		}
		elapsedS := time.Since(start).Seconds()
		b.Logf("Zoom %v: average of %.0f annotations per query, %.2f microseconds per query", zoom, float64(nresults)/float64(nquery), elapsedS*1e6/float64(nquery))
	}
}
