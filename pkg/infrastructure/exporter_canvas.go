package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"resume-builder/internal/layout"
	"resume-builder/internal/theme"
)

// CanvasExporter draws page frames straight to PDF with tdewolff/canvas,
// without a browser. Positions come from the measured block heights, so the
// output follows the same pagination as the preview.
type CanvasExporter struct {
	ts *CanvasTypesetter
}

func NewCanvasExporter(ts *CanvasTypesetter) *CanvasExporter { return &CanvasExporter{ts: ts} }

func (e *CanvasExporter) Name() string { return "canvas" }

func (e *CanvasExporter) ExportPDF(ctx context.Context, res layout.Result, _ []byte, title string) ([]byte, error) {
	if len(res.Frames) == 0 {
		return nil, errors.New("canvas export: no frames to render")
	}
	g := res.Geometry
	w, h := g.Width*pxToMm, g.Height*pxToMm

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)
	writer.SetInfo(title, "Resume", "", title, "resume-builder")
	for i, frame := range res.Frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 {
			writer.NewPage(w, h)
		}
		c := canvas.New(w, h)
		cctx := canvas.NewContext(c)
		cctx.SetCoordSystem(canvas.CartesianIV)
		p := &painter{ctx: cctx, ts: e.ts, desc: res.Theme}
		p.frame(frame, g)
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("canvas export: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// painter draws one frame. All arguments are in page units; conversion to
// millimetres happens at the canvas calls.
type painter struct {
	ctx     *canvas.Context
	ts      *CanvasTypesetter
	desc    theme.Descriptor
	sidebar bool
}

func (p *painter) frame(f layout.Frame, g layout.PageGeometry) {
	pal := p.desc.Palette
	if f.Sidebar {
		p.rect(0, 0, g.Sidebar(p.desc), g.Height, pal.SidebarFill)
		p.sidebar = true
		x, y := p.desc.SidebarPadding, g.Padding
		width := g.SecondaryWidth(p.desc)
		for i, b := range f.Secondary {
			p.block(b, x, y, width)
			y += f.SecondaryHeights[i]
		}
		if f.Continuation != "" {
			p.line(f.Continuation, theme.Font{Family: p.desc.FontFamily, Size: 11}, 16, x, y, pal.SidebarMuted, canvas.Left)
		}
		p.sidebar = false
	}

	x, y := g.MainLeft(p.desc), g.Padding
	width := g.MainWidth(p.desc)
	for i, b := range f.Main {
		p.block(b, x, y, width)
		y += f.MainHeights[i]
	}

	if f.Marker != "" {
		p.line(f.Marker, theme.Font{Family: p.desc.FontFamily, Size: 11}, 16, g.Width-g.Padding, g.Height-g.Padding/2-8, pal.Muted, canvas.Right)
	}
}

func (p *painter) ink() string {
	if p.sidebar {
		return p.desc.Palette.SidebarInk
	}
	return p.desc.Palette.Ink
}

func (p *painter) muted() string {
	if p.sidebar {
		return p.desc.Palette.SidebarMuted
	}
	return p.desc.Palette.Muted
}

func (p *painter) rect(x, y, w, h float64, hex string) {
	if hex == "" || w <= 0 || h <= 0 {
		return
	}
	p.ctx.SetFillColor(canvas.Hex(hex))
	p.ctx.SetStrokeColor(canvas.Transparent)
	p.ctx.DrawPath(x*pxToMm, y*pxToMm, canvas.Rectangle(w*pxToMm, h*pxToMm))
}

func (p *painter) face(font theme.Font, hex string) *canvas.FontFace {
	ink := canvas.Black
	if hex != "" {
		ink = canvas.Hex(hex)
	}
	return p.ts.face(font, color.RGBA(ink))
}

// line draws a single line of text whose box starts at top.
func (p *painter) line(text string, font theme.Font, lineHeight, x, top float64, hex string, align canvas.TextAlign) {
	face := p.face(font, hex)
	m := face.Metrics()
	lh := lineHeight * pxToMm
	baseline := top*pxToMm + (lh-(m.Ascent+m.Descent))/2 + m.Ascent
	p.ctx.DrawText(x*pxToMm, baseline, canvas.NewTextLine(face, caseFor(text, font), align))
}

// text draws wrapped text and returns the height it used.
func (p *painter) text(text string, st theme.Style, x, top, width float64, hex string) float64 {
	if text == "" {
		return 0
	}
	lines, _ := p.ts.Wrap(text, st.Font, math.Max(width, 1))
	for i, l := range lines {
		p.line(l, st.Font, st.LineHeight, x, top+float64(i)*st.LineHeight, hex, canvas.Left)
	}
	return float64(len(lines)) * st.LineHeight
}

// run draws a text run inside a block and returns its outer height.
func (p *painter) run(text string, st theme.Style, x, top, width float64, hex string) float64 {
	if text == "" {
		return 0
	}
	return st.Outer() + p.text(text, st, x, top+st.MarginTop+st.PaddingTop, width, hex)
}

func (p *painter) block(b layout.Block, x, y, width float64) {
	s := p.desc.Styles
	pal := p.desc.Palette
	switch b.Role {
	case layout.RoleHeading:
		st := s.Heading
		if b.First {
			st.MarginTop = 0
		}
		top := y + st.MarginTop + st.PaddingTop
		accent, rule := pal.Accent, pal.Rule
		if p.sidebar {
			accent, rule = pal.SidebarInk, pal.SidebarMuted
		}
		h := p.text(b.Text, st, x, top, width, accent)
		p.rect(x, top+h+st.PaddingBottom, width, st.Border, rule)
	case layout.RoleIdentity:
		p.identity(b, x, y, width)
	case layout.RoleContact:
		p.stack(b.Items, s.Contact, x, y+s.Contact.MarginTop+s.Contact.PaddingTop, width, p.ink())
	case layout.RoleSummary:
		p.run(b.Text, s.Summary, x, y, width, p.ink())
	case layout.RoleSkills:
		p.chips(b.Items, x, y+s.Skills.MarginTop+s.Skills.PaddingTop, width)
	case layout.RoleSkillList:
		p.stack(b.Items, s.SkillList, x, y+s.SkillList.MarginTop+s.SkillList.PaddingTop, width, p.ink())
	case layout.RoleEntry:
		p.entry(b, s.Entry, s.EntryTitle, s.EntrySubtitle, x, y, width)
	case layout.RoleEducation:
		p.entry(b, s.Education, s.EntryTitle, s.EntrySubtitle, x, y, width)
	case layout.RoleBullet:
		p.run(b.Text, s.Bullet, x+s.Bullet.Indent, y, width-s.Bullet.Indent, p.ink())
	case layout.RoleDetail:
		p.run(b.Text, s.Detail, x+s.Detail.Indent, y, width-s.Detail.Indent, p.muted())
	case layout.RoleCompact:
		p.run(b.Text, s.Compact, x, y, width, p.ink())
	case layout.RoleItem:
		top := y + s.Item.MarginTop + s.Item.PaddingTop
		top += p.titleRow(b.Title, b.Aside, s.ItemTitle, x, top, width)
		top += p.run(b.Subtitle, s.ItemSubtitle, x, top, width, p.muted())
		if b.Body != "" {
			top += s.ItemBody.MarginTop + s.ItemBody.PaddingTop
			for _, para := range strings.Split(b.Body, "\n") {
				h := p.text(strings.TrimSpace(para), s.ItemBody, x, top, width, p.ink())
				if h == 0 {
					h = s.ItemBody.LineHeight
				}
				top += h
			}
		}
	}
}

func (p *painter) identity(b layout.Block, x, y, width float64) {
	s := p.desc.Styles
	pal := p.desc.Palette
	top := y + s.Identity.MarginTop + s.Identity.PaddingTop
	top += p.run(b.Title, s.Name, x, top, width, pal.Ink)
	top += p.run(b.Subtitle, s.JobTitle, x, top, width, pal.Accent)
	if len(b.Items) > 0 {
		row := s.ContactRow
		cx, cy := x, top
		for _, item := range b.Items {
			tw, _ := p.ts.TextWidth(item, row.Font)
			w := tw + row.Indent
			if cx > x && cx+w > x+width {
				cx = x
				cy += row.LineHeight + row.Gap
			}
			p.dot(cx+7, cy+row.LineHeight/2, 7, pal.Accent)
			p.line(item, row.Font, row.LineHeight, cx+row.Indent, cy, pal.Muted, canvas.Left)
			cx += w + row.Gap
		}
		top = cy + row.LineHeight
	}
	p.rect(x, top+s.Identity.PaddingBottom, width, s.Identity.Border, pal.Accent)
}

// dot fills a circle centred on (cx, cy).
func (p *painter) dot(cx, cy, r float64, hex string) {
	p.ctx.SetFillColor(canvas.Hex(hex))
	p.ctx.SetStrokeColor(canvas.Transparent)
	p.ctx.DrawPath(cx*pxToMm, cy*pxToMm, dotPath(r))
}

// dotPath is a circle of radius r around the path origin.
func dotPath(r float64) *canvas.Path { return canvas.Circle(r * pxToMm) }

func (p *painter) stack(items []string, st theme.Style, x, top, width float64, hex string) {
	for i, it := range items {
		if i > 0 {
			top += st.Gap
		}
		top += p.text(it, st, x, top, width, hex)
	}
}

func (p *painter) chips(items []string, x, top, width float64) {
	st := p.desc.Styles.Chip
	pal := p.desc.Palette
	rowH := st.LineHeight + st.PaddingTop + st.PaddingBottom
	cx, cy := x, top
	for _, it := range items {
		tw, _ := p.ts.TextWidth(it, st.Font)
		w := tw + 2*st.PaddingX
		if cx > x && cx+w > x+width {
			cx = x
			cy += rowH + st.Gap
		}
		p.rect(cx, cy, w, rowH, pal.ChipFill)
		p.line(it, st.Font, st.LineHeight, cx+st.PaddingX, cy+st.PaddingTop, pal.ChipInk, canvas.Left)
		cx += w + st.Gap
	}
}

// titleRow draws a wrapping title with a right-aligned aside and returns
// the row's outer height.
func (p *painter) titleRow(title, aside string, st theme.Style, x, top, width float64) float64 {
	if title == "" && aside == "" {
		return 0
	}
	as := p.desc.Styles.EntryAside
	row := top + st.MarginTop + st.PaddingTop
	avail := width
	asideH := 0.0
	if aside != "" {
		aw, _ := p.ts.TextWidth(aside, as.Font)
		avail = width - aw - as.Gap
		asideH = as.LineHeight
		p.line(aside, as.Font, as.LineHeight, x+width, row, p.muted(), canvas.Right)
	}
	th := p.text(title, st, x, row, avail, p.ink())
	return math.Max(th, asideH) + st.Outer()
}

func (p *painter) entry(b layout.Block, box, titleStyle, subStyle theme.Style, x, y, width float64) {
	top := y + box.MarginTop + box.PaddingTop
	top += p.titleRow(b.Title, b.Aside, titleStyle, x, top, width)
	p.run(b.Subtitle, subStyle, x, top, width, p.muted())
}
