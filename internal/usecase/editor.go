package usecase

import (
	"fmt"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// CustomKinds is the vocabulary of sections that can be added on top of the
// standard ones. Anything outside it is still accepted as a custom section.
var CustomKinds = []string{
	"languages", "certificates", "interests", "projects", "courses", "awards",
	"organisations", "publications", "references", "declaration", "custom",
}

// Editor applies document edits. Every method returns a new Document and
// leaves its input untouched.
type Editor struct {
	ids domain.IDGenerator
}

func NewEditor(ids domain.IDGenerator) *Editor {
	if ids == nil {
		ids = domain.UUIDGenerator{}
	}
	return &Editor{ids: ids}
}

func (e *Editor) NewID() string { return e.ids.NewID() }

func (e *Editor) SetPersonal(d model.Document, field, value string) (model.Document, error) {
	out := d.Clone()
	p := &out.Personal
	switch field {
	case "fullName":
		p.FullName = value
	case "jobTitle":
		p.JobTitle = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "location":
		p.Location = value
	case "linkedin":
		p.LinkedIn = value
	case "website":
		p.Website = value
	default:
		return d, fmt.Errorf("%w: personal field %q", ErrInvalidEdit, field)
	}
	return out, nil
}

func (e *Editor) SetSummary(d model.Document, text string) model.Document {
	out := d.Clone()
	out.Summary = text
	return out
}

// SetSkills replaces the skills with the comma separated buffer.
func (e *Editor) SetSkills(d model.Document, buffer string) model.Document {
	out := d.Clone()
	out.Skills = model.ParseSkills(buffer)
	return out
}

func (e *Editor) SetTheme(d model.Document, id string) model.Document {
	out := d.Clone()
	out.Theme = id
	return out
}

// AddExperience puts a blank entry at the top of the list.
func (e *Editor) AddExperience(d model.Document) (model.Document, string) {
	out := d.Clone()
	id := e.ids.NewID()
	out.Experience = append([]model.Experience{{ID: id}}, out.Experience...)
	return out, id
}

func (e *Editor) UpdateExperience(d model.Document, id, field, value string) (model.Document, error) {
	out := d.Clone()
	i := experienceIndex(out, id)
	if i < 0 {
		return d, fmt.Errorf("%w: experience %q", ErrNotFound, id)
	}
	x := &out.Experience[i]
	switch field {
	case "role":
		x.Role = value
	case "company":
		x.Company = value
	case "location":
		x.Location = value
	case "dates":
		x.Dates = value
	case "description":
		x.Description = value
	default:
		return d, fmt.Errorf("%w: experience field %q", ErrInvalidEdit, field)
	}
	return out, nil
}

// DuplicateExperience inserts a copy right after the source entry.
func (e *Editor) DuplicateExperience(d model.Document, id string) (model.Document, string, error) {
	i := experienceIndex(d, id)
	if i < 0 {
		return d, "", fmt.Errorf("%w: experience %q", ErrNotFound, id)
	}
	out := d.Clone()
	cp := out.Experience[i]
	cp.ID = e.ids.NewID()
	out.Experience = append(out.Experience[:i+1], append([]model.Experience{cp}, out.Experience[i+1:]...)...)
	return out, cp.ID, nil
}

func (e *Editor) RemoveExperience(d model.Document, id string) (model.Document, error) {
	i := experienceIndex(d, id)
	if i < 0 {
		return d, fmt.Errorf("%w: experience %q", ErrNotFound, id)
	}
	out := d.Clone()
	out.Experience = append(out.Experience[:i], out.Experience[i+1:]...)
	return out, nil
}

func experienceIndex(d model.Document, id string) int {
	for i, x := range d.Experience {
		if x.ID == id {
			return i
		}
	}
	return -1
}

func (e *Editor) AddEducation(d model.Document) (model.Document, string) {
	out := d.Clone()
	id := e.ids.NewID()
	out.Education = append([]model.Education{{ID: id}}, out.Education...)
	return out, id
}

func (e *Editor) UpdateEducation(d model.Document, id, field, value string) (model.Document, error) {
	out := d.Clone()
	i := educationIndex(out, id)
	if i < 0 {
		return d, fmt.Errorf("%w: education %q", ErrNotFound, id)
	}
	x := &out.Education[i]
	switch field {
	case "school":
		x.School = value
	case "degree":
		x.Degree = value
	case "dates":
		x.Dates = value
	case "details":
		x.Details = value
	default:
		return d, fmt.Errorf("%w: education field %q", ErrInvalidEdit, field)
	}
	return out, nil
}

func (e *Editor) DuplicateEducation(d model.Document, id string) (model.Document, string, error) {
	i := educationIndex(d, id)
	if i < 0 {
		return d, "", fmt.Errorf("%w: education %q", ErrNotFound, id)
	}
	out := d.Clone()
	cp := out.Education[i]
	cp.ID = e.ids.NewID()
	out.Education = append(out.Education[:i+1], append([]model.Education{cp}, out.Education[i+1:]...)...)
	return out, cp.ID, nil
}

func (e *Editor) RemoveEducation(d model.Document, id string) (model.Document, error) {
	i := educationIndex(d, id)
	if i < 0 {
		return d, fmt.Errorf("%w: education %q", ErrNotFound, id)
	}
	out := d.Clone()
	out.Education = append(out.Education[:i], out.Education[i+1:]...)
	return out, nil
}

func educationIndex(d model.Document, id string) int {
	for i, x := range d.Education {
		if x.ID == id {
			return i
		}
	}
	return -1
}

// AddSection re-adds a removed standard section at the end of the order, or
// creates a custom section of the given kind with one blank item. Adding a
// standard section that is already shown changes nothing. The returned id is
// the section's id.
func (e *Editor) AddSection(d model.Document, kind, title string) (model.Document, string, error) {
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return d, "", fmt.Errorf("%w: section kind is required", ErrInvalidEdit)
	}
	if model.IsStandardSection(kind) {
		if d.HasSection(kind) {
			return d, kind, nil
		}
		out := d.Clone()
		out.SectionOrder = append(out.SectionOrder, kind)
		return out, kind, nil
	}

	out := d.Clone()
	cs := model.CustomSection{
		ID:    "custom-" + kind + "-" + e.ids.NewID(),
		Name:  kind,
		Title: title,
		Items: []model.CustomItem{{ID: e.ids.NewID()}},
	}
	out.CustomSections = append(out.CustomSections, cs)
	out.SectionOrder = append(out.SectionOrder, cs.ID)
	return out, cs.ID, nil
}

// RemoveSection drops id from the order, and the custom section itself when
// id names one.
func (e *Editor) RemoveSection(d model.Document, id string) (model.Document, error) {
	if id == model.SectionPersonal {
		return d, ErrPersonalNotRemovable
	}
	_, custom := d.CustomSection(id)
	if !custom && !d.HasSection(id) {
		return d, fmt.Errorf("%w: section %q", ErrNotFound, id)
	}
	out := d.Clone()
	order := out.SectionOrder[:0]
	for _, s := range out.SectionOrder {
		if s != id {
			order = append(order, s)
		}
	}
	out.SectionOrder = order
	if custom {
		sections := out.CustomSections[:0]
		for _, cs := range out.CustomSections {
			if cs.ID != id {
				sections = append(sections, cs)
			}
		}
		out.CustomSections = sections
	}
	return out, nil
}

func (e *Editor) RenameSection(d model.Document, id, title string) (model.Document, error) {
	out := d.Clone()
	i := customIndex(out, id)
	if i < 0 {
		return d, fmt.Errorf("%w: custom section %q", ErrNotFound, id)
	}
	out.CustomSections[i].Title = title
	return out, nil
}

func (e *Editor) AddCustomItem(d model.Document, sectionID string) (model.Document, string, error) {
	out := d.Clone()
	i := customIndex(out, sectionID)
	if i < 0 {
		return d, "", fmt.Errorf("%w: custom section %q", ErrNotFound, sectionID)
	}
	id := e.ids.NewID()
	out.CustomSections[i].Items = append(out.CustomSections[i].Items, model.CustomItem{ID: id})
	return out, id, nil
}

func (e *Editor) UpdateCustomItem(d model.Document, sectionID, itemID, field, value string) (model.Document, error) {
	out := d.Clone()
	i, j := customItemIndex(out, sectionID, itemID)
	if j < 0 {
		return d, fmt.Errorf("%w: item %q in section %q", ErrNotFound, itemID, sectionID)
	}
	it := &out.CustomSections[i].Items[j]
	switch field {
	case "title":
		it.Title = value
	case "subtitle":
		it.Subtitle = value
	case "date":
		it.Date = value
	case "description":
		it.Description = value
	default:
		return d, fmt.Errorf("%w: item field %q", ErrInvalidEdit, field)
	}
	return out, nil
}

func (e *Editor) RemoveCustomItem(d model.Document, sectionID, itemID string) (model.Document, error) {
	i, j := customItemIndex(d, sectionID, itemID)
	if j < 0 {
		return d, fmt.Errorf("%w: item %q in section %q", ErrNotFound, itemID, sectionID)
	}
	out := d.Clone()
	items := out.CustomSections[i].Items
	out.CustomSections[i].Items = append(items[:j], items[j+1:]...)
	return out, nil
}

func customIndex(d model.Document, id string) int {
	for i, cs := range d.CustomSections {
		if cs.ID == id {
			return i
		}
	}
	return -1
}

func customItemIndex(d model.Document, sectionID, itemID string) (int, int) {
	i := customIndex(d, sectionID)
	if i < 0 {
		return -1, -1
	}
	for j, it := range d.CustomSections[i].Items {
		if it.ID == itemID {
			return i, j
		}
	}
	return i, -1
}

// MoveSection moves id to index in the section order. The index is clamped
// to the order's bounds.
func (e *Editor) MoveSection(d model.Document, id string, index int) (model.Document, error) {
	from := -1
	for i, s := range d.SectionOrder {
		if s == id {
			from = i
			break
		}
	}
	if from < 0 {
		return d, fmt.Errorf("%w: section %q", ErrNotFound, id)
	}
	out := d.Clone()
	order := append(out.SectionOrder[:from], out.SectionOrder[from+1:]...)
	if index < 0 {
		index = 0
	}
	if index > len(order) {
		index = len(order)
	}
	order = append(order[:index], append([]string{id}, order[index:]...)...)
	out.SectionOrder = order
	return out, nil
}

// ReorderSections replaces the order with a permutation of the current one.
func (e *Editor) ReorderSections(d model.Document, order []string) (model.Document, error) {
	if len(order) != len(d.SectionOrder) {
		return d, fmt.Errorf("%w: order has %d sections, want %d", ErrInvalidEdit, len(order), len(d.SectionOrder))
	}
	current := map[string]bool{}
	for _, s := range d.SectionOrder {
		current[s] = true
	}
	seen := map[string]bool{}
	for _, s := range order {
		if !current[s] || seen[s] {
			return d, fmt.Errorf("%w: order is not a permutation of the current sections", ErrInvalidEdit)
		}
		seen[s] = true
	}
	out := d.Clone()
	out.SectionOrder = append([]string(nil), order...)
	return out, nil
}
