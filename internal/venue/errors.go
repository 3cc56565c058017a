package venue

import "errors"

var (
	ErrMalformedLine     = errors.New("malformed venue line")
	ErrInvalidCoordinate = errors.New("invalid venue coordinate")
)
