package cluster

import (
	"math"

	"github.com/bmharper/quadtree-go"
)

// DefaultMinSize is the cell size floor used when a Grid leaves MinSize unset.
// It is small enough that only coincident points share a cell.
const DefaultMinSize = 1e-9

// Grid maps a zoom value to a square cell size, with cells aligned to a fixed origin.
// Cell membership of a point depends only on the grid and the zoom, never on the query.
//
// The cell size halves with every unit of zoom:
//
//	CellSize(zoom) = max(BaseSize / 2^zoom, MinSize)
type Grid struct {
	OriginX  float64
	OriginY  float64
	BaseSize float64 // Cell size at zoom 0
	MinSize  float64 // Floor for the cell size. Default DefaultMinSize
}

// Cell identifies a grid cell by its column (X) and row (Y).
// The values are whole numbers, kept as floats so that tiny cells over large planes do not overflow.
type Cell struct {
	X float64
	Y float64
}

func DefaultGrid() Grid {
	return Grid{BaseSize: 1, MinSize: DefaultMinSize}
}

// MapGrid is a grid for a latitude/longitude plane where a cell is cellPixels wide
// on a web map with tiles of tileSize pixels. zoom is the map's zoom level, where the
// whole 360 degree world spans one tile at zoom 0.
func MapGrid(cellPixels, tileSize float64) Grid {
	return Grid{
		OriginX:  -90,
		OriginY:  -180,
		BaseSize: cellPixels * 360 / tileSize,
		MinSize:  1e-7,
	}
}

// CellSize is strictly decreasing in zoom until it reaches the floor.
func (g Grid) CellSize(zoom float64) float64 {
	floor := g.MinSize
	if floor <= 0 {
		floor = DefaultMinSize
	}
	return max(g.BaseSize/math.Exp2(zoom), floor)
}

// Cell returns the cell containing (x, y). Cells include their low edges, so every
// point belongs to exactly one cell.
func (g Grid) Cell(x, y, size float64) Cell {
	return Cell{
		X: math.Floor((x - g.OriginX) / size),
		Y: math.Floor((y - g.OriginY) / size),
	}
}

// CellBox is the area covered by c.
func (g Grid) CellBox(c Cell, size float64) quadtree.BoundingBox {
	x0 := g.OriginX + c.X*size
	y0 := g.OriginY + c.Y*size
	return quadtree.NewBoundingBox(x0, y0, x0+size, y0+size)
}
