package layout

import (
	"fmt"
	"math"

	"resume-builder/internal/theme"
)

// PageGeometry describes the page frame in page units (CSS pixels at 96 DPI).
type PageGeometry struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
	// SidebarWidth overrides the theme's sidebar width when positive.
	SidebarWidth float64 `json:"sidebarWidth,omitempty"`
}

// DefaultGeometry is A4 at 96 DPI with 48 units of padding.
func DefaultGeometry() PageGeometry {
	return PageGeometry{Width: 794, Height: 1123, Padding: 48}
}

// ContentHeight is the usable height of the main column on one page.
func (g PageGeometry) ContentHeight() float64 { return g.Height - 2*g.Padding }

// Sidebar returns the sidebar width for desc, zero for single column themes.
func (g PageGeometry) Sidebar(desc theme.Descriptor) float64 {
	if !desc.HasSidebar() {
		return 0
	}
	if g.SidebarWidth > 0 {
		return g.SidebarWidth
	}
	return desc.SidebarWidth
}

// MainLeft is the x offset of the main column content.
func (g PageGeometry) MainLeft(desc theme.Descriptor) float64 {
	return g.Sidebar(desc) + g.Padding
}

// MainWidth is the content width of the main column.
func (g PageGeometry) MainWidth(desc theme.Descriptor) float64 {
	return g.Width - 2*g.Padding - g.Sidebar(desc)
}

// SecondaryWidth is the content width of the sidebar column.
func (g PageGeometry) SecondaryWidth(desc theme.Descriptor) float64 {
	return math.Max(g.Sidebar(desc)-2*desc.SidebarPadding, 0)
}

// Validate rejects geometries that leave no room for content.
func (g PageGeometry) Validate(desc theme.Descriptor) error {
	if g.ContentHeight() <= 0 || math.IsNaN(g.ContentHeight()) {
		return fmt.Errorf("%w: content height %.2f", ErrInvalidGeometry, g.ContentHeight())
	}
	if g.MainWidth(desc) <= 0 || math.IsNaN(g.MainWidth(desc)) {
		return fmt.Errorf("%w: main width %.2f", ErrInvalidGeometry, g.MainWidth(desc))
	}
	return nil
}
