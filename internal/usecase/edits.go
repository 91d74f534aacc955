package usecase

import (
	"fmt"

	"resume-builder/internal/model"
)

// Edit is one editor operation as it arrives over the wire. Op selects the
// operation; the other fields are its arguments and are ignored when the
// operation does not take them.
type Edit struct {
	Op        string   `json:"op"`
	Field     string   `json:"field,omitempty"`
	Value     string   `json:"value,omitempty"`
	ID        string   `json:"id,omitempty"`
	SectionID string   `json:"sectionId,omitempty"`
	ItemID    string   `json:"itemId,omitempty"`
	Kind      string   `json:"kind,omitempty"`
	Title     string   `json:"title,omitempty"`
	Index     int      `json:"index,omitempty"`
	Order     []string `json:"order,omitempty"`
}

// Edit operation names.
const (
	OpSetPersonal         = "setPersonal"
	OpSetSummary          = "setSummary"
	OpSetSkills           = "setSkills"
	OpSetTheme            = "setTheme"
	OpAddExperience       = "addExperience"
	OpUpdateExperience    = "updateExperience"
	OpDuplicateExperience = "duplicateExperience"
	OpRemoveExperience    = "removeExperience"
	OpAddEducation        = "addEducation"
	OpUpdateEducation     = "updateEducation"
	OpDuplicateEducation  = "duplicateEducation"
	OpRemoveEducation     = "removeEducation"
	OpAddSection          = "addSection"
	OpRemoveSection       = "removeSection"
	OpRenameSection       = "renameSection"
	OpAddCustomItem       = "addCustomItem"
	OpUpdateCustomItem    = "updateCustomItem"
	OpRemoveCustomItem    = "removeCustomItem"
	OpMoveSection         = "moveSection"
	OpReorderSections     = "reorderSections"
)

// Apply runs ed against d. The returned id is the id of anything the edit
// created, or empty.
func (e *Editor) Apply(d model.Document, ed Edit) (model.Document, string, error) {
	switch ed.Op {
	case OpSetPersonal:
		out, err := e.SetPersonal(d, ed.Field, ed.Value)
		return out, "", err
	case OpSetSummary:
		return e.SetSummary(d, ed.Value), "", nil
	case OpSetSkills:
		return e.SetSkills(d, ed.Value), "", nil
	case OpSetTheme:
		return e.SetTheme(d, ed.Value), "", nil
	case OpAddExperience:
		out, id := e.AddExperience(d)
		return out, id, nil
	case OpUpdateExperience:
		out, err := e.UpdateExperience(d, ed.ID, ed.Field, ed.Value)
		return out, "", err
	case OpDuplicateExperience:
		return e.DuplicateExperience(d, ed.ID)
	case OpRemoveExperience:
		out, err := e.RemoveExperience(d, ed.ID)
		return out, "", err
	case OpAddEducation:
		out, id := e.AddEducation(d)
		return out, id, nil
	case OpUpdateEducation:
		out, err := e.UpdateEducation(d, ed.ID, ed.Field, ed.Value)
		return out, "", err
	case OpDuplicateEducation:
		return e.DuplicateEducation(d, ed.ID)
	case OpRemoveEducation:
		out, err := e.RemoveEducation(d, ed.ID)
		return out, "", err
	case OpAddSection:
		return e.AddSection(d, ed.Kind, ed.Title)
	case OpRemoveSection:
		out, err := e.RemoveSection(d, ed.SectionID)
		return out, "", err
	case OpRenameSection:
		out, err := e.RenameSection(d, ed.SectionID, ed.Title)
		return out, "", err
	case OpAddCustomItem:
		return e.AddCustomItem(d, ed.SectionID)
	case OpUpdateCustomItem:
		out, err := e.UpdateCustomItem(d, ed.SectionID, ed.ItemID, ed.Field, ed.Value)
		return out, "", err
	case OpRemoveCustomItem:
		out, err := e.RemoveCustomItem(d, ed.SectionID, ed.ItemID)
		return out, "", err
	case OpMoveSection:
		out, err := e.MoveSection(d, ed.SectionID, ed.Index)
		return out, "", err
	case OpReorderSections:
		out, err := e.ReorderSections(d, ed.Order)
		return out, "", err
	}
	return d, "", fmt.Errorf("%w: %q", ErrUnknownEdit, ed.Op)
}
