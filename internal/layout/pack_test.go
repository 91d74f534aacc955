package layout

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestPackBreaksBeforeEntryThatOverflows(t *testing.T) {
	blocks := []Block{
		block("exp-title", KindHeading),
		block("exp-header-1", KindContent), block("exp-desc-1-0", KindContent),
		block("exp-header-2", KindContent), block("exp-desc-2-0", KindContent),
		block("exp-header-3", KindContent), block("exp-desc-3-0", KindContent),
	}
	heights := []float64{30, 60, 20, 60, 20, 60, 20}

	pages, err := Pack(blocks, heights, 200)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	want := [][]string{
		{"exp-title", "exp-header-1", "exp-desc-1-0", "exp-header-2", "exp-desc-2-0"},
		{"exp-header-3", "exp-desc-3-0"},
	}
	if got := pageKeys(pages); !reflect.DeepEqual(got, want) {
		t.Fatalf("pages = %v, want %v", got, want)
	}
}

func TestPackOversizedBlockGetsItsOwnPage(t *testing.T) {
	pages, err := Pack([]Block{block("big", KindContent)}, []float64{300}, 200)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(pages) != 1 || len(pages[0]) != 1 {
		t.Fatalf("expected one page holding the block, got %v", pageKeys(pages))
	}
}

func TestPackOversizedBlockAfterContent(t *testing.T) {
	blocks := []Block{block("a", KindContent), block("big", KindContent), block("c", KindContent)}
	pages, err := Pack(blocks, []float64{50, 500, 50}, 200)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	want := [][]string{{"a"}, {"big"}, {"c"}}
	if got := pageKeys(pages); !reflect.DeepEqual(got, want) {
		t.Fatalf("pages = %v, want %v", got, want)
	}
}

func TestPackEmptyYieldsOneEmptyPage(t *testing.T) {
	pages, err := Pack(nil, nil, 1027)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(pages) != 1 || len(pages[0]) != 0 {
		t.Fatalf("expected a single empty page, got %v", pages)
	}
}

func TestPackFlushFitStaysOnPage(t *testing.T) {
	blocks := []Block{block("a", KindContent), block("b", KindContent)}
	pages, err := Pack(blocks, []float64{120, 80}, 200)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("a block landing exactly on capacity must stay, got %v", pageKeys(pages))
	}
}

func TestPackOrphanGuard(t *testing.T) {
	blocks := []Block{block("a", KindContent), block("h", KindHeading), block("b", KindContent)}
	// the heading alone fits (150+30=180) but its follower would not
	pages, err := Pack(blocks, []float64{150, 30, 40}, 200)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	want := [][]string{{"a"}, {"h", "b"}}
	if got := pageKeys(pages); !reflect.DeepEqual(got, want) {
		t.Fatalf("pages = %v, want %v", got, want)
	}
}

func TestPackOrphanGuardNeverLeavesEmptyPage(t *testing.T) {
	blocks := []Block{block("h", KindHeading), block("big", KindContent)}
	pages, err := Pack(blocks, []float64{30, 400}, 200)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	want := [][]string{{"h"}, {"big"}}
	if got := pageKeys(pages); !reflect.DeepEqual(got, want) {
		t.Fatalf("pages = %v, want %v", got, want)
	}
}

func TestPackTrailingHeadingHasNoLookahead(t *testing.T) {
	blocks := []Block{block("a", KindContent), block("h", KindHeading)}
	pages, err := Pack(blocks, []float64{150, 40}, 200)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("a final heading that fits stays, got %v", pageKeys(pages))
	}
}

func TestPackRejectsBadInput(t *testing.T) {
	blocks := []Block{block("a", KindContent)}
	if _, err := Pack(blocks, []float64{1, 2}, 100); !errors.Is(err, ErrHeightsMismatch) {
		t.Fatalf("expected ErrHeightsMismatch, got %v", err)
	}
	if _, err := Pack(blocks, []float64{math.NaN()}, 100); !errors.Is(err, ErrInvalidHeight) {
		t.Fatalf("expected ErrInvalidHeight, got %v", err)
	}
	if _, err := Pack(blocks, []float64{-1}, 100); !errors.Is(err, ErrInvalidHeight) {
		t.Fatalf("expected ErrInvalidHeight, got %v", err)
	}
	if _, err := Pack(blocks, []float64{1}, 0); !errors.Is(err, ErrInvalidGeometry) {
		t.Fatalf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestPackProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const capacity = 300.0
	for run := 0; run < 200; run++ {
		n := rng.Intn(40)
		blocks := make([]Block, n)
		heights := make([]float64, n)
		for i := range blocks {
			kind := KindContent
			switch rng.Intn(5) {
			case 0:
				// the decomposer never emits two headings in a row
				if i == 0 || blocks[i-1].Kind != KindHeading {
					kind = KindHeading
				}
			case 1:
				kind = KindSpacer
			}
			blocks[i] = block(fmt.Sprintf("b%d", i), kind)
			heights[i] = float64(1 + rng.Intn(360))
		}

		pages, err := Pack(blocks, heights, capacity)
		if err != nil {
			t.Fatalf("run %d: %v", run, err)
		}
		again, _ := Pack(blocks, heights, capacity)
		if !reflect.DeepEqual(pages, again) {
			t.Fatalf("run %d: packing is not deterministic", run)
		}

		var flat []Block
		idx := 0
		pageOf := make([]int, n)
		for p, page := range pages {
			if len(page) == 0 && n > 0 {
				t.Fatalf("run %d: empty page %d", run, p)
			}
			sum := 0.0
			for range page {
				sum += heights[idx]
				pageOf[idx] = p
				idx++
			}
			if len(page) > 1 && sum > capacity {
				t.Fatalf("run %d: page %d holds %.0f > %.0f", run, p, sum, capacity)
			}
			flat = append(flat, page...)
		}
		if !reflect.DeepEqual(keys(flat), keys(blocks)) {
			t.Fatalf("run %d: coverage broken", run)
		}

		for p, page := range pages {
			if len(page) < 2 {
				continue
			}
			last := page[len(page)-1]
			var li int
			fmt.Sscanf(last.Key, "b%d", &li)
			if last.Kind == KindHeading && li+1 < n && pageOf[li+1] != p {
				t.Fatalf("run %d: heading %s orphaned at end of page %d", run, last.Key, p)
			}
		}
	}
}
