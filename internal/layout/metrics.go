package layout

import (
	"context"
	"fmt"
	"math"
	"strings"

	"resume-builder/internal/theme"
)

// Typesetter measures text in page units.
type Typesetter interface {
	// Wrap breaks text into lines no wider than width. Empty text yields no
	// lines; explicit newlines always break.
	Wrap(text string, font theme.Font, width float64) ([]string, error)
	TextWidth(text string, font theme.Font) (float64, error)
}

// MetricsProbe computes block heights from the theme stylesheet and font
// metrics, without a browser. It follows the same box model as the HTML
// renderer: column children do not collapse margins.
type MetricsProbe struct {
	ts Typesetter
}

func NewMetricsProbe(ts Typesetter) *MetricsProbe { return &MetricsProbe{ts: ts} }

func (p *MetricsProbe) Measure(ctx context.Context, req MeasureRequest) ([]float64, error) {
	if req.Width <= 0 {
		return nil, fmt.Errorf("%w: probe width %.2f", ErrInvalidGeometry, req.Width)
	}
	out := make([]float64, len(req.Blocks))
	for i, b := range req.Blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		h, err := p.BlockHeight(b, req.Theme.Styles, req.Width)
		if err != nil {
			return nil, fmt.Errorf("measure %s: %w", b.Key, err)
		}
		out[i] = h
	}
	return out, nil
}

// BlockHeight returns the outer height of b laid out at width.
func (p *MetricsProbe) BlockHeight(b Block, s theme.Stylesheet, width float64) (float64, error) {
	switch b.Role {
	case RoleSpacer:
		return b.Height, nil
	case RoleHeading:
		st := s.Heading
		if b.First {
			st.MarginTop = 0
		}
		h, err := p.text(b.Text, st, width)
		return st.Outer() + h, err
	case RoleIdentity:
		return p.identity(b, s, width)
	case RoleContact:
		h, err := p.stack(b.Items, s.Contact, width)
		return s.Contact.Outer() + h, err
	case RoleSummary:
		h, err := p.text(b.Text, s.Summary, width)
		return s.Summary.Outer() + h, err
	case RoleSkills:
		h, err := p.flow(b.Items, s.Chip, width, 2*s.Chip.PaddingX, s.Chip.LineHeight+s.Chip.PaddingTop+s.Chip.PaddingBottom)
		return s.Skills.Outer() + h, err
	case RoleSkillList:
		h, err := p.stack(b.Items, s.SkillList, width)
		return s.SkillList.Outer() + h, err
	case RoleEntry:
		h, err := p.entry(b, s, s.EntryTitle, s.EntrySubtitle, width)
		return s.Entry.Outer() + h, err
	case RoleEducation:
		h, err := p.entry(b, s, s.EntryTitle, s.EntrySubtitle, width)
		return s.Education.Outer() + h, err
	case RoleBullet:
		h, err := p.text(b.Text, s.Bullet, width-s.Bullet.Indent)
		return s.Bullet.Outer() + h, err
	case RoleDetail:
		h, err := p.text(b.Text, s.Detail, width-s.Detail.Indent)
		return s.Detail.Outer() + h, err
	case RoleCompact:
		h, err := p.text(b.Text, s.Compact, width)
		return s.Compact.Outer() + h, err
	case RoleItem:
		return p.item(b, s, width)
	}
	return 0, fmt.Errorf("unknown block role %q", b.Role)
}

func (p *MetricsProbe) lines(text string, st theme.Style, width float64) (int, error) {
	if text == "" {
		return 0, nil
	}
	if st.Uppercase {
		text = strings.ToUpper(text)
	}
	lines, err := p.ts.Wrap(text, st.Font, math.Max(width, 1))
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// text is the content height of a wrapped paragraph.
func (p *MetricsProbe) text(text string, st theme.Style, width float64) (float64, error) {
	n, err := p.lines(text, st, width)
	return float64(n) * st.LineHeight, err
}

// run is a text run inside a block: its lines plus its own margins, or
// nothing when the run is empty.
func (p *MetricsProbe) run(text string, st theme.Style, width float64) (float64, error) {
	if text == "" {
		return 0, nil
	}
	h, err := p.text(text, st, width)
	return h + st.Outer(), err
}

// stack lays items out one under another, separated by st.Gap.
func (p *MetricsProbe) stack(items []string, st theme.Style, width float64) (float64, error) {
	total := 0.0
	for i, it := range items {
		h, err := p.text(it, st, width)
		if err != nil {
			return 0, err
		}
		if i > 0 {
			total += st.Gap
		}
		total += h
	}
	return total, nil
}

// flow wraps inline items into rows like a wrapping flex container. Each
// item is its text width plus extra; rows are rowHeight tall and both axes
// are separated by st.Gap.
func (p *MetricsProbe) flow(items []string, st theme.Style, width, extra, rowHeight float64) (float64, error) {
	if len(items) == 0 {
		return 0, nil
	}
	rows, used := 1, 0.0
	for _, it := range items {
		tw, err := p.ts.TextWidth(it, st.Font)
		if err != nil {
			return 0, err
		}
		w := tw + extra
		switch {
		case used == 0:
			used = w
		case used+st.Gap+w > width:
			rows++
			used = w
		default:
			used += st.Gap + w
		}
	}
	return float64(rows)*rowHeight + float64(rows-1)*st.Gap, nil
}

func (p *MetricsProbe) identity(b Block, s theme.Stylesheet, width float64) (float64, error) {
	total := s.Identity.Outer()
	name, err := p.run(b.Title, s.Name, width)
	if err != nil {
		return 0, err
	}
	title, err := p.run(b.Subtitle, s.JobTitle, width)
	if err != nil {
		return 0, err
	}
	contacts, err := p.flow(b.Items, s.ContactRow, width, s.ContactRow.Indent, s.ContactRow.LineHeight)
	if err != nil {
		return 0, err
	}
	return total + name + title + contacts, nil
}

// titleRow is a title that wraps beside a single-line aside.
func (p *MetricsProbe) titleRow(title, aside string, st, asideStyle theme.Style, width float64) (float64, error) {
	if title == "" && aside == "" {
		return 0, nil
	}
	avail := width
	asideH := 0.0
	if aside != "" {
		aw, err := p.ts.TextWidth(aside, asideStyle.Font)
		if err != nil {
			return 0, err
		}
		avail = width - aw - asideStyle.Gap
		asideH = asideStyle.LineHeight
	}
	th, err := p.text(title, st, avail)
	if err != nil {
		return 0, err
	}
	return math.Max(th, asideH) + st.Outer(), nil
}

func (p *MetricsProbe) entry(b Block, s theme.Stylesheet, titleStyle, subStyle theme.Style, width float64) (float64, error) {
	row, err := p.titleRow(b.Title, b.Aside, titleStyle, s.EntryAside, width)
	if err != nil {
		return 0, err
	}
	sub, err := p.run(b.Subtitle, subStyle, width)
	if err != nil {
		return 0, err
	}
	return row + sub, nil
}

func (p *MetricsProbe) item(b Block, s theme.Stylesheet, width float64) (float64, error) {
	row, err := p.titleRow(b.Title, b.Aside, s.ItemTitle, s.EntryAside, width)
	if err != nil {
		return 0, err
	}
	sub, err := p.run(b.Subtitle, s.ItemSubtitle, width)
	if err != nil {
		return 0, err
	}
	body := 0.0
	if b.Body != "" {
		// the body keeps its line breaks; a blank line still takes a line
		for _, para := range strings.Split(b.Body, "\n") {
			n, err := p.lines(strings.TrimSpace(para), s.ItemBody, width)
			if err != nil {
				return 0, err
			}
			if n == 0 {
				n = 1
			}
			body += float64(n) * s.ItemBody.LineHeight
		}
		body += s.ItemBody.Outer()
	}
	return s.Item.Outer() + row + sub + body, nil
}
