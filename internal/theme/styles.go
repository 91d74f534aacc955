package theme

// Font selects a face for text measurement and painting. Sizes are in page
// units (CSS pixels at 96 DPI).
type Font struct {
	Family    string  `json:"family,omitempty"`
	Size      float64 `json:"size"`
	Bold      bool    `json:"bold,omitempty"`
	Uppercase bool    `json:"uppercase,omitempty"`
}

// Style is the box model of one block role. Border is the bottom border only.
type Style struct {
	Font
	LineHeight    float64 `json:"lineHeight"`
	MarginTop     float64 `json:"marginTop,omitempty"`
	MarginBottom  float64 `json:"marginBottom,omitempty"`
	PaddingTop    float64 `json:"paddingTop,omitempty"`
	PaddingBottom float64 `json:"paddingBottom,omitempty"`
	PaddingX      float64 `json:"paddingX,omitempty"`
	Border        float64 `json:"border,omitempty"`
	Indent        float64 `json:"indent,omitempty"`
	Gap           float64 `json:"gap,omitempty"`
}

// Outer is the vertical space the style adds around its content.
func (s Style) Outer() float64 {
	return s.MarginTop + s.PaddingTop + s.PaddingBottom + s.Border + s.MarginBottom
}

// Spacing holds the fixed heights of the spacer blocks between entries.
type Spacing struct {
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Custom     float64 `json:"custom"`
}

// Stylesheet has one style per block role and per text run inside a role.
type Stylesheet struct {
	Identity   Style `json:"identity"`
	Name       Style `json:"name"`
	JobTitle   Style `json:"jobTitle"`
	ContactRow Style `json:"contactRow"`
	Contact    Style `json:"contact"`

	Heading Style `json:"heading"`
	Summary Style `json:"summary"`

	Skills    Style `json:"skills"`
	Chip      Style `json:"chip"`
	SkillList Style `json:"skillList"`

	Entry         Style `json:"entry"`
	Education     Style `json:"education"`
	EntryTitle    Style `json:"entryTitle"`
	EntrySubtitle Style `json:"entrySubtitle"`
	EntryAside    Style `json:"entryAside"`
	Bullet        Style `json:"bullet"`
	Detail        Style `json:"detail"`

	Compact      Style `json:"compact"`
	Item         Style `json:"item"`
	ItemTitle    Style `json:"itemTitle"`
	ItemSubtitle Style `json:"itemSubtitle"`
	ItemBody     Style `json:"itemBody"`

	Spacing Spacing `json:"spacing"`
}

// roles lists every style of the sheet.
func (s *Stylesheet) roles() []*Style {
	return []*Style{
		&s.Identity, &s.Name, &s.JobTitle, &s.ContactRow, &s.Contact,
		&s.Heading, &s.Summary,
		&s.Skills, &s.Chip, &s.SkillList,
		&s.Entry, &s.Education, &s.EntryTitle, &s.EntrySubtitle, &s.EntryAside, &s.Bullet, &s.Detail,
		&s.Compact, &s.Item, &s.ItemTitle, &s.ItemSubtitle, &s.ItemBody,
	}
}

// WithFamily returns a copy of s with every role set in family.
func (s Stylesheet) WithFamily(family string) Stylesheet {
	for _, st := range s.roles() {
		st.Family = family
	}
	return s
}

func baseStyles() Stylesheet {
	return Stylesheet{
		Identity:   Style{PaddingBottom: 24, Border: 2, MarginBottom: 24},
		Name:       Style{Font: Font{Size: 36, Bold: true}, LineHeight: 40, MarginBottom: 8},
		JobTitle:   Style{Font: Font{Size: 20}, LineHeight: 28, MarginBottom: 16},
		ContactRow: Style{Font: Font{Size: 14}, LineHeight: 20, Gap: 16, Indent: 20},
		Contact:    Style{Font: Font{Size: 13}, LineHeight: 20, Gap: 8, MarginBottom: 24},

		Heading: Style{Font: Font{Size: 14, Bold: true, Uppercase: true}, LineHeight: 20, MarginTop: 8, PaddingTop: 8, PaddingBottom: 4, Border: 1, MarginBottom: 16},
		Summary: Style{Font: Font{Size: 14}, LineHeight: 22.75, MarginBottom: 24},

		Skills:    Style{MarginBottom: 24},
		Chip:      Style{Font: Font{Size: 12}, LineHeight: 16, PaddingX: 12, PaddingTop: 4, PaddingBottom: 4, Gap: 8},
		SkillList: Style{Font: Font{Size: 13}, LineHeight: 20, Gap: 4, MarginBottom: 24},

		Entry:         Style{MarginBottom: 8},
		Education:     Style{MarginBottom: 4},
		EntryTitle:    Style{Font: Font{Size: 16, Bold: true}, LineHeight: 24, MarginBottom: 4},
		EntrySubtitle: Style{Font: Font{Size: 14}, LineHeight: 20},
		EntryAside:    Style{Font: Font{Size: 14}, LineHeight: 20, Gap: 16},
		Bullet:        Style{Font: Font{Size: 14}, LineHeight: 22.75, Indent: 4},
		Detail:        Style{Font: Font{Size: 12}, LineHeight: 18, MarginTop: 2},

		Compact:      Style{Font: Font{Size: 14}, LineHeight: 20, MarginBottom: 4},
		Item:         Style{MarginBottom: 8},
		ItemTitle:    Style{Font: Font{Size: 14, Bold: true}, LineHeight: 20, MarginBottom: 2},
		ItemSubtitle: Style{Font: Font{Size: 14}, LineHeight: 20, MarginBottom: 4},
		ItemBody:     Style{Font: Font{Size: 14}, LineHeight: 22.75},

		Spacing: Spacing{Experience: 20, Education: 16, Custom: 12},
	}
}
