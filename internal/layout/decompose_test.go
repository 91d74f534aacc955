package layout

import (
	"reflect"
	"testing"

	"resume-builder/internal/model"
	"resume-builder/internal/theme"
)

func personalOnly() model.Document {
	return model.Document{
		Personal: model.Personal{
			FullName: "Dana Lee",
			JobTitle: "Analyst",
			Email:    "dana@example.com",
		},
		SectionOrder: append([]string(nil), model.DefaultSectionOrder...),
	}
}

func TestDecomposePersonalOnlyDocument(t *testing.T) {
	doc := personalOnly()

	single := Decompose(doc, theme.Resolve("executive"), DefaultLabels())
	if len(single.Main) != 1 || len(single.Secondary) != 0 {
		t.Fatalf("single column: got %v / %v", keys(single.Main), keys(single.Secondary))
	}
	if !reflect.DeepEqual(single.Main[0].Items, []string{"dana@example.com"}) {
		t.Fatalf("contacts belong to the identity block: %v", single.Main[0].Items)
	}

	sidebar := Decompose(doc, theme.Resolve("standard"), DefaultLabels())
	if len(sidebar.Main)+len(sidebar.Secondary) != 2 {
		t.Fatalf("sidebar: got %v / %v", keys(sidebar.Main), keys(sidebar.Secondary))
	}
	if sidebar.Main[0].Key != "header" || sidebar.Secondary[0].Key != "contact" {
		t.Fatalf("unexpected keys %v / %v", keys(sidebar.Main), keys(sidebar.Secondary))
	}

	pages, err := Pack(single.Main, []float64{180}, DefaultGeometry().ContentHeight())
	if err != nil || len(pages) != 1 {
		t.Fatalf("expected one page, got %d (%v)", len(pages), err)
	}
}

func TestDecomposeSkillsRouteToSidebar(t *testing.T) {
	doc := model.SampleDocument()
	// skills placed first must still never reach main
	doc.SectionOrder = []string{"personal", "skills", "summary", "experience", "education"}
	cols := Decompose(doc, theme.Resolve("standard"), DefaultLabels())

	for _, b := range cols.Main {
		if b.Section == model.SectionSkills {
			t.Fatalf("skills block %s routed to main", b.Key)
		}
	}
	var found bool
	for _, b := range cols.Secondary {
		if b.Key == "skills" {
			found = true
			if b.Role != RoleSkillList {
				t.Fatalf("sidebar skills should use the list rendering, got %s", b.Role)
			}
		}
	}
	if !found {
		t.Fatalf("skills missing from secondary: %v", keys(cols.Secondary))
	}
}

func TestDecomposeSampleKeys(t *testing.T) {
	cols := Decompose(model.SampleDocument(), theme.Resolve("executive"), DefaultLabels())
	want := []string{
		"header",
		"summary-title", "summary",
		"exp-title",
		"exp-header-1", "exp-desc-1-0", "exp-desc-1-1", "exp-desc-1-2", "exp-spacer-1",
		"exp-header-2", "exp-desc-2-0", "exp-desc-2-1", "exp-desc-2-2",
		"edu-title", "edu-header-1", "edu-desc-1-0",
		"skills-title", "skills",
	}
	if got := keys(cols.Main); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v\nwant %v", got, want)
	}
	if !cols.Main[1].First || cols.Main[3].First {
		t.Fatalf("only the first heading is marked first")
	}
	if cols.Main[1].Text != "Professional Summary" || cols.Main[16].Text != "Core Competencies" {
		t.Fatalf("unexpected headings %q / %q", cols.Main[1].Text, cols.Main[16].Text)
	}
}

func TestDecomposeDescriptionLines(t *testing.T) {
	doc := personalOnly()
	doc.Experience = []model.Experience{{ID: "x", Role: "Dev", Description: "one\n\n  \ntwo\r\n"}}
	cols := Decompose(doc, theme.Resolve("minimal"), DefaultLabels())
	want := []string{"header", "exp-title", "exp-header-x", "exp-desc-x-0", "exp-desc-x-3"}
	if got := keys(cols.Main); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if cols.Main[4].Text != "two" {
		t.Fatalf("line text %q", cols.Main[4].Text)
	}
}

func TestDecomposeSpacersBetweenEntriesOnly(t *testing.T) {
	doc := personalOnly()
	doc.Education = []model.Education{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	cols := Decompose(doc, theme.Resolve("executive"), DefaultLabels())
	spacers := 0
	for _, b := range cols.Main {
		if b.Kind == KindSpacer {
			spacers++
			if b.Height != 16 {
				t.Fatalf("education spacer height %v", b.Height)
			}
		}
	}
	if spacers != 2 {
		t.Fatalf("expected 2 spacers, got %d", spacers)
	}
	if last := cols.Main[len(cols.Main)-1]; last.Kind == KindSpacer {
		t.Fatalf("section must not end with a spacer")
	}
}

func TestDecomposeElidesEmptySections(t *testing.T) {
	doc := model.SampleDocument()
	doc.CustomSections = []model.CustomSection{{ID: "c1", Name: "projects", Title: "Projects"}}
	doc.SectionOrder = []string{"personal", "summary", "c1"}
	cols := Decompose(doc, theme.Resolve("executive"), DefaultLabels())
	want := []string{"header", "summary-title", "summary"}
	if got := keys(cols.Main); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}

	doc.Summary = "   "
	cols = Decompose(doc, theme.Resolve("executive"), DefaultLabels())
	if got := keys(cols.Main); !reflect.DeepEqual(got, []string{"header"}) {
		t.Fatalf("blank summary should vanish, got %v", got)
	}
}

func TestDecomposeCustomSections(t *testing.T) {
	doc := personalOnly()
	doc.CustomSections = []model.CustomSection{
		{ID: "lang", Name: "languages", Title: "Languages", Items: []model.CustomItem{
			{ID: "1", Title: "English", Subtitle: "Native"},
			{ID: "2", Title: "Spanish"},
		}},
		{ID: "proj", Name: "projects", Title: "", Items: []model.CustomItem{
			{ID: "p", Title: "Atlas", Subtitle: "Lead", Date: "2023", Description: " Built it.\n"},
		}},
	}
	doc.SectionOrder = []string{"personal", "lang", "proj"}

	cols := Decompose(doc, theme.Resolve("executive"), DefaultLabels())
	want := []string{"header", "custom-title-lang", "custom-item-lang-1", "custom-spacer-lang-1", "custom-item-lang-2", "custom-title-proj", "custom-item-proj-p"}
	if got := keys(cols.Main); !reflect.DeepEqual(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	if cols.Main[2].Role != RoleCompact || cols.Main[2].Text != "English: Native" || cols.Main[4].Text != "Spanish" {
		t.Fatalf("compact items: %+v / %+v", cols.Main[2], cols.Main[4])
	}
	item := cols.Main[6]
	if item.Role != RoleItem || item.Aside != "2023" || item.Body != "Built it." {
		t.Fatalf("full item: %+v", item)
	}
	if cols.Main[5].Text != "projects" {
		t.Fatalf("blank title falls back to the section name, got %q", cols.Main[5].Text)
	}

	sidebar := Decompose(doc, theme.Resolve("standard"), DefaultLabels())
	if got := keys(sidebar.Secondary); got[0] != "contact" || got[1] != "custom-title-lang" {
		t.Fatalf("languages should route to the sidebar, got %v", got)
	}
	if !sidebar.Secondary[1].First {
		t.Fatalf("first sidebar heading should be marked")
	}
}

func TestDecomposeIsDeterministic(t *testing.T) {
	doc := model.SampleDocument()
	desc := theme.Resolve("modern")
	a := Decompose(doc, desc, DefaultLabels())
	b := Decompose(doc, desc, DefaultLabels())
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("decomposition differs between runs")
	}
}

func TestDecomposeUsesLabels(t *testing.T) {
	labels := Labels{Experience: "Berufserfahrung"}
	cols := Decompose(model.SampleDocument(), theme.Resolve("executive"), labels)
	for _, b := range cols.Main {
		if b.Key == "exp-title" && b.Text != "Berufserfahrung" {
			t.Fatalf("heading %q", b.Text)
		}
		if b.Key == "edu-title" && b.Text != "Education" {
			t.Fatalf("missing labels should default, got %q", b.Text)
		}
	}
}
