package layout

import "fmt"

// Frame is one fixed-size page. The secondary column is shown in full on the
// first page; later pages carry only a continuation marker.
type Frame struct {
	Index  int    `json:"index"`
	Total  int    `json:"total"`
	Marker string `json:"marker,omitempty"`

	Main        []Block   `json:"main"`
	MainHeights []float64 `json:"mainHeights"`
	Used        float64   `json:"used"`

	Sidebar          bool      `json:"sidebar"`
	Secondary        []Block   `json:"secondary,omitempty"`
	SecondaryHeights []float64 `json:"secondaryHeights,omitempty"`
	Continuation     string    `json:"continuation,omitempty"`
}

// buildFrames maps packed spans to frames. It makes no packing decisions.
func buildFrames(main []Block, heights []float64, spans []span, secondary []Block, secondaryHeights []float64, sidebar bool, labels Labels) []Frame {
	total := len(spans)
	frames := make([]Frame, total)
	for i, s := range spans {
		f := Frame{
			Index:       i + 1,
			Total:       total,
			Main:        append([]Block{}, main[s.start:s.end]...),
			MainHeights: append([]float64{}, heights[s.start:s.end]...),
			Sidebar:     sidebar,
		}
		for _, h := range f.MainHeights {
			f.Used += h
		}
		if total > 1 {
			f.Marker = fmt.Sprintf(labels.PageOf, f.Index, total)
		}
		if sidebar && len(secondary) > 0 {
			if i == 0 {
				f.Secondary = append([]Block{}, secondary...)
				f.SecondaryHeights = append([]float64{}, secondaryHeights...)
			} else {
				f.Continuation = labels.Continued
			}
		}
		frames[i] = f
	}
	return frames
}

// BuildFrames packs main blocks and maps the result to frames. heights and
// secondaryHeights must align with their blocks.
func BuildFrames(cols Columns, heights, secondaryHeights []float64, capacity float64, sidebar bool, labels Labels) ([]Frame, error) {
	spans, err := packSpans(cols.Main, heights, capacity)
	if err != nil {
		return nil, err
	}
	if sidebar {
		if err := checkHeights(cols.Secondary, secondaryHeights); err != nil {
			return nil, err
		}
	}
	return buildFrames(cols.Main, heights, spans, cols.Secondary, secondaryHeights, sidebar, labels.WithDefaults()), nil
}
