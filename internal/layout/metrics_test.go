package layout

import (
	"context"
	"testing"

	"resume-builder/internal/theme"
)

func TestMetricsProbeHeights(t *testing.T) {
	p := NewMetricsProbe(stubTypesetter{})
	s := theme.Resolve("executive").Styles
	s.Heading.Size = 10

	cases := []struct {
		name  string
		block Block
		width float64
		want  float64
	}{
		{"spacer", Block{Role: RoleSpacer, Height: 20}, 400, 20},
		// 8+8+20+4+2+16
		{"heading", Block{Role: RoleHeading, Kind: KindHeading, Text: "Skills"}, 400, 58},
		{"first heading drops top margin", Block{Role: RoleHeading, Kind: KindHeading, Text: "Skills", First: true}, 400, 50},
		// "aaaa bbbb" at 7px per rune is 63 wide: two lines at 40
		{"summary wraps", Block{Role: RoleSummary, Text: "aaaa bbbb"}, 40, 2*22.75 + 24},
		{"bullet", Block{Role: RoleBullet, Text: "x"}, 400, 22.75},
		{"detail", Block{Role: RoleDetail, Text: "x"}, 400, 18 + 2},
		{"compact", Block{Role: RoleCompact, Text: "English: Native"}, 400, 24},
	}
	for _, c := range cases {
		got, err := p.BlockHeight(c.block, s, c.width)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if got != c.want {
			t.Errorf("%s: height %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMetricsProbeChipsWrap(t *testing.T) {
	p := NewMetricsProbe(stubTypesetter{})
	s := theme.Resolve("executive").Styles
	// each chip is 4 runes * 6px + 24 padding = 48 wide; rows of 3 fit 160
	b := Block{Role: RoleSkills, Items: []string{"aaaa", "bbbb", "cccc", "dddd"}}
	got, err := p.BlockHeight(b, s, 160)
	if err != nil {
		t.Fatalf("BlockHeight: %v", err)
	}
	row := s.Chip.LineHeight + s.Chip.PaddingTop + s.Chip.PaddingBottom
	want := 2*row + s.Chip.Gap + s.Skills.Outer()
	if got != want {
		t.Fatalf("height %v, want %v", got, want)
	}
}

func TestMetricsProbeEntryAsideNarrowsTitle(t *testing.T) {
	p := NewMetricsProbe(stubTypesetter{})
	s := theme.Resolve("executive").Styles
	b := Block{Role: RoleEntry, Title: "Lead Engineer", Subtitle: "Acme", Aside: "2020 - 2024"}

	wide, _ := p.BlockHeight(b, s, 600)
	narrow, _ := p.BlockHeight(b, s, 150)
	if !(narrow > wide) {
		t.Fatalf("title beside the dates should wrap at 150 (wide %v, narrow %v)", wide, narrow)
	}
	want := s.Entry.Outer() + s.EntryTitle.LineHeight + s.EntryTitle.MarginBottom + s.EntrySubtitle.LineHeight
	if wide != want {
		t.Fatalf("wide height %v, want %v", wide, want)
	}
}

func TestMetricsProbeIdentityParts(t *testing.T) {
	p := NewMetricsProbe(stubTypesetter{})
	s := theme.Resolve("standard").Styles
	bare, _ := p.BlockHeight(Block{Role: RoleIdentity}, s, 458)
	if bare != s.Identity.Outer() {
		t.Fatalf("empty identity %v, want %v", bare, s.Identity.Outer())
	}
	named, _ := p.BlockHeight(Block{Role: RoleIdentity, Title: "Al"}, s, 458)
	if named != bare+s.Name.LineHeight+s.Name.MarginBottom {
		t.Fatalf("named identity %v", named)
	}
}

func TestMetricsProbeMeasure(t *testing.T) {
	p := NewMetricsProbe(stubTypesetter{})
	req := MeasureRequest{
		Theme:  theme.Resolve("minimal"),
		Width:  300,
		Blocks: []Block{{Key: "a", Role: RoleSpacer, Height: 5}, {Key: "b", Role: RoleBullet, Text: "x"}},
	}
	hs, err := p.Measure(context.Background(), req)
	if err != nil || len(hs) != 2 || hs[0] != 5 {
		t.Fatalf("Measure = %v, %v", hs, err)
	}

	req.Blocks = append(req.Blocks, Block{Key: "c", Role: "bogus"})
	if _, err := p.Measure(context.Background(), req); err == nil {
		t.Fatalf("unknown role should fail")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Measure(ctx, req); err == nil {
		t.Fatalf("cancelled context should fail")
	}
}
