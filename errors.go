package quadtree

import "errors"

var (
	ErrPointOutOfBounds = errors.New("point lies outside the node bounding box")
)
