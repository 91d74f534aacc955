package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDocument is returned when a document fails schema validation or
// breaks one of the model invariants.
var ErrInvalidDocument = errors.New("invalid document")

// ParseSkills splits a comma separated edit buffer into trimmed, non-empty
// skills. Order is preserved and duplicates are kept.
func ParseSkills(buffer string) []string {
	out := []string{}
	for _, part := range strings.Split(buffer, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Normalize returns a copy of d repaired to satisfy the model invariants:
// skills are trimmed, missing or duplicate ids are replaced using newID, and
// the section order is rebuilt so that it holds "personal" first, no
// duplicates, no dangling ids, and every custom section.
func Normalize(d Document, newID func() string) Document {
	out := d.Clone()

	skills := make([]string, 0, len(out.Skills))
	for _, s := range out.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	out.Skills = skills

	seen := map[string]bool{}
	for i := range out.Experience {
		out.Experience[i].ID = uniqueID(out.Experience[i].ID, seen, newID)
	}
	seen = map[string]bool{}
	for i := range out.Education {
		out.Education[i].ID = uniqueID(out.Education[i].ID, seen, newID)
	}
	seen = map[string]bool{}
	for i := range out.CustomSections {
		cs := &out.CustomSections[i]
		cs.ID = uniqueID(cs.ID, seen, newID)
		items := map[string]bool{}
		for j := range cs.Items {
			cs.Items[j].ID = uniqueID(cs.Items[j].ID, items, newID)
		}
	}

	out.SectionOrder = normalizeOrder(out)
	return out
}

func uniqueID(id string, seen map[string]bool, newID func() string) string {
	id = strings.TrimSpace(id)
	for id == "" || seen[id] {
		id = newID()
	}
	seen[id] = true
	return id
}

func normalizeOrder(d Document) []string {
	custom := map[string]bool{}
	for _, cs := range d.CustomSections {
		custom[cs.ID] = true
	}
	placed := map[string]bool{}
	order := make([]string, 0, len(d.SectionOrder)+1)
	order = append(order, SectionPersonal)
	placed[SectionPersonal] = true
	for _, id := range d.SectionOrder {
		if placed[id] || (!IsStandardSection(id) && !custom[id]) {
			continue
		}
		placed[id] = true
		order = append(order, id)
	}
	for _, cs := range d.CustomSections {
		if !placed[cs.ID] {
			placed[cs.ID] = true
			order = append(order, cs.ID)
		}
	}
	return order
}

// CheckInvariants verifies id uniqueness and section order consistency.
func CheckInvariants(d Document) error {
	var problems []string
	dup := func(kind string, ids []string) {
		seen := map[string]bool{}
		for _, id := range ids {
			if id == "" {
				problems = append(problems, kind+" with empty id")
				continue
			}
			if seen[id] {
				problems = append(problems, fmt.Sprintf("duplicate %s id %q", kind, id))
			}
			seen[id] = true
		}
	}

	ids := make([]string, 0, len(d.Experience))
	for _, e := range d.Experience {
		ids = append(ids, e.ID)
	}
	dup("experience", ids)
	ids = ids[:0]
	for _, e := range d.Education {
		ids = append(ids, e.ID)
	}
	dup("education", ids)
	ids = ids[:0]
	custom := map[string]bool{}
	for _, cs := range d.CustomSections {
		ids = append(ids, cs.ID)
		custom[cs.ID] = true
		items := make([]string, 0, len(cs.Items))
		for _, it := range cs.Items {
			items = append(items, it.ID)
		}
		dup("item", items)
	}
	dup("custom section", ids)

	seen := map[string]bool{}
	for _, id := range d.SectionOrder {
		if seen[id] {
			problems = append(problems, fmt.Sprintf("section %q listed twice", id))
		}
		seen[id] = true
		if !IsStandardSection(id) && !custom[id] {
			problems = append(problems, fmt.Sprintf("section %q does not exist", id))
		}
	}
	if !seen[SectionPersonal] {
		problems = append(problems, "section order is missing personal")
	}
	for _, cs := range d.CustomSections {
		if !seen[cs.ID] {
			problems = append(problems, fmt.Sprintf("custom section %q is not ordered", cs.ID))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(problems, "; "))
	}
	return nil
}
