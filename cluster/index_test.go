package cluster

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/bmharper/quadtree-go"
	"github.com/stretchr/testify/require"
)

func TestIndexRebuild(t *testing.T) {
	ix := NewIndex[int](Grid{BaseSize: 10})
	require.Equal(t, 4, ix.BucketCapacity)
	require.Nil(t, ix.Snapshot())

	points := []quadtree.Point[int]{
		quadtree.NewPoint(1.0, 1.0, 0),
		quadtree.NewPoint(2.0, 2.0, 1),
		quadtree.NewPoint(3.0, 3.0, 2),
		quadtree.NewPoint(4.0, 4.0, 3),
		quadtree.NewPoint(5.0, 5.0, 4),
		quadtree.NewPoint(500.0, 5.0, 5),
	}
	stats := ix.Rebuild(points, quadtree.NewBoundingBox(0, 0, 100, 100))
	require.Equal(t, BuildStats{Inserted: 5, Dropped: 1, Nodes: 5, Depth: 2, Box: quadtree.NewBoundingBox(0, 0, 100, 100)}, stats)
	require.Equal(t, 5, ix.Len())
	old := ix.Snapshot()

	stats = ix.RebuildCovering(points)
	require.Equal(t, 6, stats.Inserted)
	require.Equal(t, 0, stats.Dropped)
	require.Equal(t, quadtree.NewBoundingBox(1, 1, 500, 5), stats.Box)
	require.Equal(t, 6, ix.Len())

	// the previous snapshot is untouched by the swap
	require.Equal(t, 5, old.Len())
	require.NotSame(t, old, ix.Snapshot())

	out := ix.Clusters(quadtree.NewBoundingBox(0, 0, 9, 9), 0)
	require.Equal(t, []Annotation[int]{{X: 3, Y: 3, Count: 5, Payload: 0}}, out)
	require.Equal(t, 5, len(ix.Search(quadtree.NewBoundingBox(0, 0, 9, 9))))
}

func TestIndexConcurrentQueries(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	a := randomPoints(rng, 1000, 100)
	b := randomPoints(rng, 2000, 100)
	box := quadtree.NewBoundingBox(0, 0, 100, 100)

	ix := NewIndex[int](Grid{BaseSize: 20})
	ix.Rebuild(a, box)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				total := 0
				for _, an := range ix.Clusters(box, 0) {
					total += an.Count
				}
				// every query sees one whole tree, never a partial rebuild
				require.Contains(t, []int{1000, 2000}, total)
			}
		}()
	}
	for j := 0; j < 20; j++ {
		if j%2 == 0 {
			ix.Rebuild(b, box)
		} else {
			ix.Rebuild(a, box)
		}
	}
	wg.Wait()
}
