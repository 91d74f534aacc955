package layout

import "strings"

// Labels are the display strings the decomposer and frame builder use.
type Labels struct {
	Summary    string `json:"summary"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Skills     string `json:"skills"`
	PageOf     string `json:"pageOf"`
	Continued  string `json:"continued"`
}

// DefaultLabels returns the English labels.
func DefaultLabels() Labels {
	return Labels{
		Summary:    "Professional Summary",
		Experience: "Work Experience",
		Education:  "Education",
		Skills:     "Core Competencies",
		PageOf:     "Page %d of %d",
		Continued:  "continued",
	}
}

// WithDefaults fills blank labels from DefaultLabels. A PageOf format that
// does not take exactly two %d verbs is replaced too.
func (l Labels) WithDefaults() Labels {
	def := DefaultLabels()
	pick := func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return strings.TrimSpace(v)
	}
	out := Labels{
		Summary:    pick(l.Summary, def.Summary),
		Experience: pick(l.Experience, def.Experience),
		Education:  pick(l.Education, def.Education),
		Skills:     pick(l.Skills, def.Skills),
		PageOf:     pick(l.PageOf, def.PageOf),
		Continued:  pick(l.Continued, def.Continued),
	}
	if strings.Count(out.PageOf, "%d") != 2 || strings.Count(out.PageOf, "%") != 2 {
		out.PageOf = def.PageOf
	}
	return out
}

// LabelsFromMap reads labels keyed by their JSON names. Unknown keys are
// ignored and missing ones default.
func LabelsFromMap(m map[string]string) Labels {
	return Labels{
		Summary:    m["summary"],
		Experience: m["experience"],
		Education:  m["education"],
		Skills:     m["skills"],
		PageOf:     m["pageOf"],
		Continued:  m["continued"],
	}.WithDefaults()
}
