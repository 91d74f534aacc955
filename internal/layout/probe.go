package layout

import (
	"context"
	"fmt"
	"math"

	"resume-builder/internal/theme"
)

// Column names a layout region.
type Column string

const (
	ColumnMain      Column = "main"
	ColumnSecondary Column = "secondary"
)

// MeasureRequest asks a probe for the heights of one column's blocks laid
// out at the column's real content width.
type MeasureRequest struct {
	Theme  theme.Descriptor
	Column Column
	Width  float64
	Blocks []Block
}

// Probe measures fully laid out blocks. Heights include each block's own
// vertical margins and are returned in block order.
type Probe interface {
	Measure(ctx context.Context, req MeasureRequest) ([]float64, error)
}

// ProbeFunc adapts a function to Probe.
type ProbeFunc func(ctx context.Context, req MeasureRequest) ([]float64, error)

func (f ProbeFunc) Measure(ctx context.Context, req MeasureRequest) ([]float64, error) {
	return f(ctx, req)
}

// checkHeights verifies a measurement pass produced one finite,
// non-negative height per block.
func checkHeights(blocks []Block, heights []float64) error {
	if len(heights) != len(blocks) {
		return fmt.Errorf("%w: %d heights for %d blocks", ErrHeightsMismatch, len(heights), len(blocks))
	}
	for i, h := range heights {
		if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
			return fmt.Errorf("%w: block %q has height %v", ErrInvalidHeight, blocks[i].Key, h)
		}
	}
	return nil
}
