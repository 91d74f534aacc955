package model

// Go models for the editable resume document. JSON tags follow the shape
// accepted by document.schema.json.

// Section identifiers for the standard sections.
const (
	SectionPersonal   = "personal"
	SectionSummary    = "summary"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
)

// StandardSections lists the sections that are not backed by a CustomSection.
var StandardSections = []string{SectionPersonal, SectionSummary, SectionExperience, SectionEducation, SectionSkills}

// DefaultSectionOrder is the order used for new documents.
var DefaultSectionOrder = []string{SectionPersonal, SectionSummary, SectionExperience, SectionEducation, SectionSkills}

type Personal struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
}

type Experience struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Dates       string `json:"dates"`
	Description string `json:"description"`
}

type Education struct {
	ID      string `json:"id"`
	School  string `json:"school"`
	Degree  string `json:"degree"`
	Dates   string `json:"dates"`
	Details string `json:"details"`
}

// CustomItem has four generic slots; their display role depends on the
// parent section's Name.
type CustomItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type CustomSection struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Title string       `json:"title"`
	Items []CustomItem `json:"items"`
}

type Document struct {
	Personal       Personal        `json:"personal"`
	Summary        string          `json:"summary"`
	Skills         []string        `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Education      []Education     `json:"education"`
	CustomSections []CustomSection `json:"customSections"`
	SectionOrder   []string        `json:"sectionOrder"`
	Theme          string          `json:"theme"`
}

// IsStandardSection reports whether id names one of the standard sections.
func IsStandardSection(id string) bool {
	for _, s := range StandardSections {
		if s == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of d. Slices of the copy never alias d.
func (d Document) Clone() Document {
	out := d
	out.Skills = append([]string(nil), d.Skills...)
	out.Experience = append([]Experience(nil), d.Experience...)
	out.Education = append([]Education(nil), d.Education...)
	out.SectionOrder = append([]string(nil), d.SectionOrder...)
	if d.CustomSections != nil {
		out.CustomSections = make([]CustomSection, len(d.CustomSections))
		for i, cs := range d.CustomSections {
			cs.Items = append([]CustomItem(nil), cs.Items...)
			out.CustomSections[i] = cs
		}
	}
	return out
}

// CustomSection looks up a custom section by id.
func (d Document) CustomSection(id string) (CustomSection, bool) {
	for _, cs := range d.CustomSections {
		if cs.ID == id {
			return cs, true
		}
	}
	return CustomSection{}, false
}

// HasSection reports whether id is present in the section order.
func (d Document) HasSection(id string) bool {
	for _, s := range d.SectionOrder {
		if s == id {
			return true
		}
	}
	return false
}
