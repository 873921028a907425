package mandel

import "errors"

var (
	// ErrInvalidViewport rejects a mutation that would leave a non-finite
	// center or a non-positive or non-finite scale.
	ErrInvalidViewport = errors.New("invalid viewport")

	// ErrStaleRaster marks a raster response superseded by a newer commit.
	ErrStaleRaster = errors.New("stale raster response")

	// ErrOutOfRange marks a configuration value outside its allowed range.
	ErrOutOfRange = errors.New("value out of range")
)
