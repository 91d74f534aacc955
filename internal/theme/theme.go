// Package theme maps theme identifiers to layout descriptors.
package theme

import "resume-builder/internal/fonts"

// Layout is the column structure of a theme.
type Layout string

const (
	SingleColumn Layout = "single-column"
	Sidebar      Layout = "sidebar"
)

// Default is the theme every unknown identifier resolves to.
const Default = "standard"

// SectionContact is the logical id of the contact details split out of the
// personal block under sidebar layouts.
const SectionContact = "contact"

// Palette holds the colours renderers paint with. None of it affects geometry.
type Palette struct {
	Accent       string `json:"accent"`
	Ink          string `json:"ink"`
	Muted        string `json:"muted"`
	Rule         string `json:"rule"`
	ChipFill     string `json:"chipFill"`
	ChipInk      string `json:"chipInk"`
	SidebarFill  string `json:"sidebarFill,omitempty"`
	SidebarInk   string `json:"sidebarInk,omitempty"`
	SidebarMuted string `json:"sidebarMuted,omitempty"`
}

// Descriptor is the resolved, structural description of a theme.
type Descriptor struct {
	ID    string `json:"id"`
	Label string `json:"label"`

	Layout          Layout   `json:"layout"`
	SidebarWidth    float64  `json:"sidebarWidth,omitempty"`
	SidebarPadding  float64  `json:"sidebarPadding,omitempty"`
	SidebarSections []string `json:"sidebarSections,omitempty"`

	FontFamily string     `json:"fontFamily"`
	Palette    Palette    `json:"palette"`
	Styles     Stylesheet `json:"styles"`
}

// HasSidebar reports whether the theme renders a secondary column.
func (d Descriptor) HasSidebar() bool { return d.Layout == Sidebar }

// InSidebar reports whether the logical section routes to the secondary
// column. Always false for single column themes.
func (d Descriptor) InSidebar(section string) bool {
	if d.Layout != Sidebar {
		return false
	}
	for _, s := range d.SidebarSections {
		if s == section {
			return true
		}
	}
	return false
}

var order = []string{"standard", "executive", "modern", "minimal"}

var registry = map[string]func() Descriptor{
	"standard":  standard,
	"executive": executive,
	"modern":    modern,
	"minimal":   minimal,
}

// Resolve returns the descriptor for id. Unknown ids resolve to Default.
func Resolve(id string) Descriptor {
	build, ok := registry[id]
	if !ok {
		build = registry[Default]
	}
	return finish(build())
}

// Known reports whether id names a theme without falling back.
func Known(id string) bool {
	_, ok := registry[id]
	return ok
}

// All returns every theme descriptor in presentation order.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(order))
	for _, id := range order {
		out = append(out, finish(registry[id]()))
	}
	return out
}

// finish sets the descriptor's family on every role of its stylesheet.
func finish(d Descriptor) Descriptor {
	d.Styles = d.Styles.WithFamily(d.FontFamily)
	return d
}

func standard() Descriptor {
	return Descriptor{
		ID:              "standard",
		Label:           "Atlantic Blue",
		Layout:          Sidebar,
		SidebarWidth:    240,
		SidebarPadding:  24,
		SidebarSections: []string{SectionContact, "skills", "languages", "interests"},
		FontFamily:      fonts.Sans,
		Palette: Palette{
			Accent:       "#1d4ed8",
			Ink:          "#0f172a",
			Muted:        "#475569",
			Rule:         "#cbd5e1",
			ChipFill:     "#1e293b",
			ChipInk:      "#f8fafc",
			SidebarFill:  "#0f172a",
			SidebarInk:   "#f8fafc",
			SidebarMuted: "#94a3b8",
		},
		Styles: baseStyles(),
	}
}

func executive() Descriptor {
	s := baseStyles()
	s.Name.Size, s.Name.LineHeight = 40, 44
	s.Heading.Size = 15
	s.Heading.Border = 2
	s.Identity.Border = 3
	return Descriptor{
		ID:         "executive",
		Label:      "Executive",
		Layout:     SingleColumn,
		FontFamily: fonts.Serif,
		Palette: Palette{
			Accent:   "#111827",
			Ink:      "#111827",
			Muted:    "#4b5563",
			Rule:     "#111827",
			ChipFill: "#f3f4f6",
			ChipInk:  "#111827",
		},
		Styles: s,
	}
}

func modern() Descriptor {
	s := baseStyles()
	s.Name.Size, s.Name.LineHeight = 32, 40
	s.Heading.Border = 0
	s.Heading.PaddingBottom = 0
	return Descriptor{
		ID:              "modern",
		Label:           "Corporate",
		Layout:          Sidebar,
		SidebarWidth:    260,
		SidebarPadding:  24,
		SidebarSections: []string{SectionContact, "skills", "languages", "interests"},
		FontFamily:      fonts.Sans,
		Palette: Palette{
			Accent:       "#0f766e",
			Ink:          "#1f2937",
			Muted:        "#6b7280",
			Rule:         "#e5e7eb",
			ChipFill:     "#ccfbf1",
			ChipInk:      "#134e4a",
			SidebarFill:  "#f1f5f9",
			SidebarInk:   "#1f2937",
			SidebarMuted: "#64748b",
		},
		Styles: s,
	}
}

func minimal() Descriptor {
	s := baseStyles()
	s.Name.Size, s.Name.LineHeight = 30, 36
	s.Heading.Border = 0
	s.Heading.PaddingTop = 4
	s.Heading.MarginBottom = 12
	s.Identity.Border = 1
	return Descriptor{
		ID:         "minimal",
		Label:      "Finance",
		Layout:     SingleColumn,
		FontFamily: fonts.Sans,
		Palette: Palette{
			Accent:   "#374151",
			Ink:      "#111827",
			Muted:    "#6b7280",
			Rule:     "#d1d5db",
			ChipFill: "#f9fafb",
			ChipInk:  "#111827",
		},
		Styles: s,
	}
}
