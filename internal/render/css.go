package render

import (
	"fmt"
	"strings"

	"resume-builder/internal/fonts"
	"resume-builder/internal/layout"
	"resume-builder/internal/theme"
)

// font writes the text properties of a style.
func font(b *strings.Builder, st theme.Style) {
	fmt.Fprintf(b, "font-size:%s;line-height:%s;", px(st.Size), px(st.LineHeight))
	if st.Bold {
		b.WriteString("font-weight:700;")
	}
	if st.Uppercase {
		b.WriteString("text-transform:uppercase;")
	}
}

// box writes the vertical box model of a style. Border colour comes from
// the caller's rule.
func box(b *strings.Builder, st theme.Style) {
	fmt.Fprintf(b, "margin-top:%s;margin-bottom:%s;padding-top:%s;padding-bottom:%s;",
		px(st.MarginTop), px(st.MarginBottom), px(st.PaddingTop), px(st.PaddingBottom))
	if st.Border > 0 {
		fmt.Fprintf(b, "border-bottom:%s solid;", px(st.Border))
	}
}

func rule(b *strings.Builder, selector string, st theme.Style, withFont bool, extra string) {
	b.WriteString(selector + "{")
	if withFont {
		font(b, st)
	}
	box(b, st)
	b.WriteString(extra + "}\n")
}

// blockCSS styles every block role from the theme stylesheet. Column
// children never collapse margins because columns are flex containers.
// The theme family is inlined so the browser paints the faces the metrics
// probe measures.
func blockCSS(desc theme.Descriptor) string {
	s := desc.Styles
	p := desc.Palette
	var b strings.Builder
	b.WriteString(fonts.CSS(desc.FontFamily))
	fmt.Fprintf(&b, "*{box-sizing:border-box;margin:0;padding:0}\nbody{font-family:%s;color:%s;-webkit-print-color-adjust:exact;print-color-adjust:exact}\n", fonts.Stack(desc.FontFamily), p.Ink)
	b.WriteString(".column{display:flex;flex-direction:column;align-items:stretch}\n.block{display:flow-root;flex-shrink:0;overflow-wrap:break-word}\n")

	rule(&b, ".identity", s.Identity, false, "border-color:"+p.Accent+";")
	rule(&b, ".identity .name", s.Name, true, "color:"+p.Ink+";")
	rule(&b, ".identity .job-title", s.JobTitle, true, "color:"+p.Accent+";")
	rule(&b, ".identity .contacts", s.ContactRow, true, fmt.Sprintf("display:flex;flex-wrap:wrap;gap:%s;color:%s;", px(s.ContactRow.Gap), p.Muted))
	fmt.Fprintf(&b, ".identity .contacts span{white-space:nowrap;padding-left:%s;position:relative}\n", px(s.ContactRow.Indent))
	fmt.Fprintf(&b, ".identity .contacts span::before{content:\"\";position:absolute;left:0;top:3px;width:14px;height:14px;border-radius:7px;background:%s}\n", p.Accent)

	rule(&b, ".contact", s.Contact, true, "")
	fmt.Fprintf(&b, ".contact .line+.line{margin-top:%s}\n", px(s.Contact.Gap))

	rule(&b, ".heading", s.Heading, true, fmt.Sprintf("color:%s;border-color:%s;", p.Accent, p.Rule))
	b.WriteString(".heading.first{margin-top:0}\n")
	rule(&b, ".summary", s.Summary, true, "")

	rule(&b, ".skills", s.Skills, false, "")
	fmt.Fprintf(&b, ".chips{display:flex;flex-wrap:wrap;gap:%s}\n", px(s.Chip.Gap))
	fmt.Fprintf(&b, ".chip{flex-shrink:0;white-space:nowrap;font-size:%s;line-height:%s;padding:%s %s %s;background:%s;color:%s;border-radius:4px}\n",
		px(s.Chip.Size), px(s.Chip.LineHeight), px(s.Chip.PaddingTop), px(s.Chip.PaddingX), px(s.Chip.PaddingBottom), p.ChipFill, p.ChipInk)
	rule(&b, ".skill-list", s.SkillList, true, "")
	fmt.Fprintf(&b, ".skill-list .line+.line{margin-top:%s}\n", px(s.SkillList.Gap))

	rule(&b, ".entry", s.Entry, false, "")
	rule(&b, ".education", s.Education, false, "")
	b.WriteString(".entry .row,.education .row,.item .row{display:flex;align-items:flex-start}\n")
	b.WriteString(".row .title{flex:1 1 auto;min-width:0}\n")
	rule(&b, ".entry .row,.education .row", s.EntryTitle, false, "")
	rule(&b, ".entry .title,.education .title", theme.Style{Font: s.EntryTitle.Font, LineHeight: s.EntryTitle.LineHeight}, true, "")
	rule(&b, ".entry .subtitle,.education .subtitle", s.EntrySubtitle, true, "color:"+p.Muted+";")
	rule(&b, ".aside", theme.Style{Font: s.EntryAside.Font, LineHeight: s.EntryAside.LineHeight}, true,
		fmt.Sprintf("flex-shrink:0;white-space:nowrap;margin-left:%s;color:%s;", px(s.EntryAside.Gap), p.Muted))
	rule(&b, ".bullet", s.Bullet, true, "padding-left:"+px(s.Bullet.Indent)+";")
	rule(&b, ".detail", s.Detail, true, "padding-left:"+px(s.Detail.Indent)+";color:"+p.Muted+";")

	rule(&b, ".compact", s.Compact, true, "")
	rule(&b, ".item", s.Item, false, "")
	rule(&b, ".item .row", s.ItemTitle, false, "")
	rule(&b, ".item .title", theme.Style{Font: s.ItemTitle.Font, LineHeight: s.ItemTitle.LineHeight}, true, "")
	rule(&b, ".item .subtitle", s.ItemSubtitle, true, "color:"+p.Muted+";")
	rule(&b, ".item .body", s.ItemBody, true, "white-space:pre-line;")

	if desc.HasSidebar() {
		fmt.Fprintf(&b, ".sidebar-scope,.sidebar{color:%s}\n", p.SidebarInk)
		fmt.Fprintf(&b, ".sidebar-scope .heading,.sidebar .heading{color:%s;border-color:%s}\n", p.SidebarInk, p.SidebarMuted)
		fmt.Fprintf(&b, ".sidebar .continuation{font-size:11px;line-height:16px;font-style:italic;color:%s}\n", p.SidebarMuted)
	}
	return b.String()
}

// pageCSS positions the fixed-size frames and their columns.
func pageCSS(desc theme.Descriptor, g layout.PageGeometry) string {
	var b strings.Builder
	b.WriteString("@page{size:A4;margin:0}\nhtml,body{background:#e2e8f0}\n@media print{html,body{background:#fff}.a4-page{margin:0}}\n")
	fmt.Fprintf(&b, ".a4-page{position:relative;width:%s;height:%s;overflow:hidden;background:#fff;margin:0 auto 24px;break-after:page}\n", px(g.Width), px(g.Height))
	if desc.HasSidebar() {
		fmt.Fprintf(&b, ".sidebar{position:absolute;left:0;top:0;bottom:0;width:%s;padding:%s %s;background:%s}\n",
			px(g.Sidebar(desc)), px(g.Padding), px(desc.SidebarPadding), desc.Palette.SidebarFill)
	}
	fmt.Fprintf(&b, ".main{position:absolute;left:%s;top:%s;width:%s;height:%s;overflow:hidden}\n",
		px(g.MainLeft(desc)), px(g.Padding), px(g.MainWidth(desc)), px(g.ContentHeight()))
	fmt.Fprintf(&b, ".marker{position:absolute;right:%s;bottom:%s;font-size:11px;line-height:16px;color:%s}\n",
		px(g.Padding), px(g.Padding/2-8), desc.Palette.Muted)
	return b.String()
}

// probeCSS lays the probe column out of view without constraining height.
func probeCSS() string {
	return "html,body{background:#fff}\n#probe{position:absolute;left:0;top:0;height:auto;visibility:hidden;pointer-events:none}\n"
}
