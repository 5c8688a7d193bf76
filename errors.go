package tsgl

import "errors"

var (
	// ErrInvalidRadius is returned when a radius, width or height would
	// become zero or negative. The shape is left unchanged.
	ErrInvalidRadius = errors.New("tsgl: radius must be positive")

	// ErrTooFewColors is returned when a color slice has fewer entries
	// than the shape has color bands.
	ErrTooFewColors = errors.New("tsgl: not enough colors for shape bands")

	// ErrInvalidAxis is returned by Mutate for an axis other than
	// AxisX, AxisY or AxisZ.
	ErrInvalidAxis = errors.New("tsgl: invalid axis")

	// ErrCanvasClosed is returned by canvas operations after Close.
	ErrCanvasClosed = errors.New("tsgl: canvas is closed")
)
