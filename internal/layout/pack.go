package layout

import (
	"fmt"
	"math"
)

// span is a half-open range of block indexes placed on one page.
type span struct{ start, end int }

// Pack distributes blocks over pages of the given content height. It is a
// first-fit greedy pass that never reorders, splits or drops blocks:
//
//   - a heading moves to a new page when it and the block after it would not
//     both fit, so no heading ends a page while its content starts the next;
//   - any other block moves to a new page when it would overflow a page that
//     already has content (a block landing exactly on capacity stays);
//   - a block taller than a page gets a page of its own.
//
// An empty block list yields one empty page.
func Pack(blocks []Block, heights []float64, capacity float64) ([][]Block, error) {
	spans, err := packSpans(blocks, heights, capacity)
	if err != nil {
		return nil, err
	}
	pages := make([][]Block, len(spans))
	for i, s := range spans {
		pages[i] = append([]Block{}, blocks[s.start:s.end]...)
	}
	return pages, nil
}

func packSpans(blocks []Block, heights []float64, capacity float64) ([]span, error) {
	if math.IsNaN(capacity) || capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %v", ErrInvalidGeometry, capacity)
	}
	if err := checkHeights(blocks, heights); err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return []span{{0, 0}}, nil
	}

	var spans []span
	start, used := 0, 0.0
	flush := func(i int) {
		if i == start {
			return
		}
		spans = append(spans, span{start, i})
		start, used = i, 0
	}

	for i, b := range blocks {
		h := heights[i]
		if b.Kind == KindHeading && i+1 < len(blocks) && used+h+heights[i+1] > capacity {
			flush(i)
		}
		if used > 0 && used+h > capacity {
			flush(i)
		}
		used += h
	}
	flush(len(blocks))
	return spans, nil
}
