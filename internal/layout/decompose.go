package layout

import (
	"strconv"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/theme"
)

// compactSections render their items as one "label: value" row.
var compactSections = map[string]bool{"languages": true, "interests": true, "skills": true}

// Decompose turns a document into the ordered blocks of each column. The
// personal block always comes first; sections follow document.SectionOrder
// and empty sections contribute nothing.
func Decompose(doc model.Document, desc theme.Descriptor, labels Labels) Columns {
	labels = labels.WithDefaults()
	var cols Columns

	p := doc.Personal
	identity := Block{
		Key:      "header",
		Kind:     KindContent,
		Role:     RoleIdentity,
		Section:  model.SectionPersonal,
		Title:    strings.TrimSpace(p.FullName),
		Subtitle: strings.TrimSpace(p.JobTitle),
	}
	contacts := ContactLines(p)
	if desc.HasSidebar() {
		cols.Main = append(cols.Main, identity)
		if len(contacts) > 0 {
			cols.Secondary = append(cols.Secondary, Block{
				Key:     "contact",
				Kind:    KindContent,
				Role:    RoleContact,
				Section: theme.SectionContact,
				Items:   contacts,
			})
		}
	} else {
		identity.Items = contacts
		cols.Main = append(cols.Main, identity)
	}

	seen := map[string]bool{model.SectionPersonal: true}
	for _, id := range doc.SectionOrder {
		if seen[id] {
			continue
		}
		seen[id] = true

		name := sectionName(doc, id)
		secondary := desc.InSidebar(name)
		blocks := sectionBlocks(doc, id, desc.Styles.Spacing, labels, secondary)
		if len(blocks) == 0 {
			continue
		}
		if secondary {
			cols.Secondary = append(cols.Secondary, blocks...)
		} else {
			cols.Main = append(cols.Main, blocks...)
		}
	}

	markFirstHeading(cols.Main)
	markFirstHeading(cols.Secondary)
	return cols
}

// sectionName is the logical name used for column routing: the id for
// standard sections, the internal name for custom ones.
func sectionName(doc model.Document, id string) string {
	if model.IsStandardSection(id) {
		return id
	}
	if cs, ok := doc.CustomSection(id); ok {
		return cs.Name
	}
	return id
}

func sectionBlocks(doc model.Document, id string, spacing theme.Spacing, labels Labels, secondary bool) []Block {
	switch id {
	case model.SectionSummary:
		return summaryBlocks(doc.Summary, labels)
	case model.SectionSkills:
		return skillBlocks(doc.Skills, labels, secondary)
	case model.SectionExperience:
		return experienceBlocks(doc.Experience, labels, spacing.Experience)
	case model.SectionEducation:
		return educationBlocks(doc.Education, labels, spacing.Education)
	}
	cs, ok := doc.CustomSection(id)
	if !ok {
		return nil
	}
	return customBlocks(cs, spacing.Custom)
}

func heading(key, section, title string) Block {
	return Block{Key: key, Kind: KindHeading, Role: RoleHeading, Section: section, Text: title}
}

func summaryBlocks(summary string, labels Labels) []Block {
	text := strings.TrimSpace(summary)
	if text == "" {
		return nil
	}
	return []Block{
		heading("summary-title", model.SectionSummary, labels.Summary),
		{Key: "summary", Kind: KindContent, Role: RoleSummary, Section: model.SectionSummary, Text: text},
	}
}

func skillBlocks(skills []string, labels Labels, secondary bool) []Block {
	items := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			items = append(items, s)
		}
	}
	if len(items) == 0 {
		return nil
	}
	role := RoleSkills
	if secondary {
		role = RoleSkillList
	}
	return []Block{
		heading("skills-title", model.SectionSkills, labels.Skills),
		{Key: "skills", Kind: KindContent, Role: role, Section: model.SectionSkills, Items: items},
	}
}

func experienceBlocks(entries []model.Experience, labels Labels, spacer float64) []Block {
	if len(entries) == 0 {
		return nil
	}
	const section = model.SectionExperience
	out := []Block{heading("exp-title", section, labels.Experience)}
	for i, e := range entries {
		out = append(out, Block{
			Key:      "exp-header-" + e.ID,
			Kind:     KindContent,
			Role:     RoleEntry,
			Section:  section,
			Title:    strings.TrimSpace(e.Role),
			Subtitle: joinNonEmpty(" | ", e.Company, e.Location),
			Aside:    strings.TrimSpace(e.Dates),
		})
		out = append(out, lineBlocks("exp-desc-"+e.ID, section, RoleBullet, e.Description)...)
		if i < len(entries)-1 {
			out = append(out, spacerBlock("exp-spacer-"+e.ID, section, spacer))
		}
	}
	return out
}

func educationBlocks(entries []model.Education, labels Labels, spacer float64) []Block {
	if len(entries) == 0 {
		return nil
	}
	const section = model.SectionEducation
	out := []Block{heading("edu-title", section, labels.Education)}
	for i, e := range entries {
		out = append(out, Block{
			Key:      "edu-header-" + e.ID,
			Kind:     KindContent,
			Role:     RoleEducation,
			Section:  section,
			Title:    strings.TrimSpace(e.School),
			Subtitle: strings.TrimSpace(e.Degree),
			Aside:    strings.TrimSpace(e.Dates),
		})
		out = append(out, lineBlocks("edu-desc-"+e.ID, section, RoleDetail, e.Details)...)
		if i < len(entries)-1 {
			out = append(out, spacerBlock("edu-spacer-"+e.ID, section, spacer))
		}
	}
	return out
}

// lineBlocks emits one block per non-blank line. Keys use the line's index
// in the unfiltered text so they stay stable while other lines change.
func lineBlocks(prefix, section string, role Role, text string) []Block {
	var out []Block
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, Block{
			Key:     prefix + "-" + strconv.Itoa(i),
			Kind:    KindContent,
			Role:    role,
			Section: section,
			Text:    line,
		})
	}
	return out
}

func customBlocks(cs model.CustomSection, spacer float64) []Block {
	if len(cs.Items) == 0 {
		return nil
	}
	title := strings.TrimSpace(cs.Title)
	if title == "" {
		title = cs.Name
	}
	out := []Block{heading("custom-title-"+cs.ID, cs.ID, title)}
	compact := compactSections[cs.Name]
	for i, it := range cs.Items {
		b := Block{
			Key:     "custom-item-" + cs.ID + "-" + it.ID,
			Kind:    KindContent,
			Section: cs.ID,
		}
		if compact {
			b.Role = RoleCompact
			b.Title = strings.TrimSpace(it.Title)
			b.Subtitle = strings.TrimSpace(it.Subtitle)
			b.Text = b.Title
			if b.Subtitle != "" {
				b.Text = joinNonEmpty(": ", b.Title, b.Subtitle)
			}
		} else {
			b.Role = RoleItem
			b.Title = strings.TrimSpace(it.Title)
			b.Subtitle = strings.TrimSpace(it.Subtitle)
			b.Aside = strings.TrimSpace(it.Date)
			b.Body = strings.TrimSpace(it.Description)
		}
		out = append(out, b)
		if i < len(cs.Items)-1 {
			out = append(out, spacerBlock("custom-spacer-"+cs.ID+"-"+it.ID, cs.ID, spacer))
		}
	}
	return out
}

func spacerBlock(key, section string, h float64) Block {
	return Block{Key: key, Kind: KindSpacer, Role: RoleSpacer, Section: section, Height: h}
}

func markFirstHeading(blocks []Block) {
	for i := range blocks {
		if blocks[i].Kind == KindHeading {
			blocks[i].First = true
			return
		}
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
