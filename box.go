package quadtree

// Package quadtree is a bucketed point-region quad-tree for 2D range queries.

import "math"

// BoundingBox is an axis-aligned rectangle with (X0,Y0) and (XF,YF) as opposite corners.
// Contains and Intersects expect X0 <= XF and Y0 <= YF. A box that breaks this
// contains nothing, and is not rejected anywhere.
type BoundingBox struct {
	X0 float64
	Y0 float64
	XF float64
	YF float64
}

func NewBoundingBox(x0, y0, xf, yf float64) BoundingBox {
	return BoundingBox{X0: x0, Y0: y0, XF: xf, YF: yf}
}

// InvertedBox returns a box that contains nothing, ready to be grown with Extend.
func InvertedBox() BoundingBox {
	return BoundingBox{
		X0: math.MaxFloat64,
		Y0: math.MaxFloat64,
		XF: -math.MaxFloat64,
		YF: -math.MaxFloat64,
	}
}

// Contains is inclusive on all four edges.
func (b BoundingBox) Contains(x, y float64) bool {
	return b.X0 <= x && x <= b.XF && b.Y0 <= y && y <= b.YF
}

func ContainsPoint[T any](b BoundingBox, p Point[T]) bool {
	return b.Contains(p.X, p.Y)
}

// Intersects reports whether the two boxes overlap. Touching edges count.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return !(o.XF < b.X0 ||
		o.YF < b.Y0 ||
		o.X0 > b.XF ||
		o.Y0 > b.YF)
}

// Extend grows the box to include (x, y)
func (b *BoundingBox) Extend(x, y float64) {
	b.X0 = min(b.X0, x)
	b.Y0 = min(b.Y0, y)
	b.XF = max(b.XF, x)
	b.YF = max(b.YF, y)
}

// Expand returns the box grown by margin on every side.
func (b BoundingBox) Expand(margin float64) BoundingBox {
	return BoundingBox{
		X0: b.X0 - margin,
		Y0: b.Y0 - margin,
		XF: b.XF + margin,
		YF: b.YF + margin,
	}
}

func (b BoundingBox) Width() float64 {
	return b.XF - b.X0
}

func (b BoundingBox) Height() float64 {
	return b.YF - b.Y0
}

func (b BoundingBox) Center() (x, y float64) {
	return (b.X0 + b.XF) / 2, (b.Y0 + b.YF) / 2
}

// IsEmpty is true for a box that can hold no point, such as InvertedBox().
func (b BoundingBox) IsEmpty() bool {
	return b.X0 > b.XF || b.Y0 > b.YF
}

// Quadrants splits the box at its midpoint, in NorthWest, NorthEast, SouthWest, SouthEast order.
// Neighbouring quadrants share their split coordinate.
func (b BoundingBox) Quadrants() [4]BoundingBox {
	xm, ym := b.Center()
	return [4]BoundingBox{
		NorthWest: {X0: b.X0, Y0: b.Y0, XF: xm, YF: ym},
		NorthEast: {X0: xm, Y0: b.Y0, XF: b.XF, YF: ym},
		SouthWest: {X0: b.X0, Y0: ym, XF: xm, YF: b.YF},
		SouthEast: {X0: xm, Y0: ym, XF: b.XF, YF: b.YF},
	}
}

// CoveringBox returns the smallest box holding every point.
// With no points it returns the zero box.
func CoveringBox[T any](points []Point[T]) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	box := InvertedBox()
	for _, p := range points {
		box.Extend(p.X, p.Y)
	}
	return box
}
