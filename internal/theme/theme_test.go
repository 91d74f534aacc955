package theme

import "testing"

func TestResolveKnownThemes(t *testing.T) {
	cases := []struct {
		id     string
		layout Layout
	}{
		{"standard", Sidebar},
		{"modern", Sidebar},
		{"executive", SingleColumn},
		{"minimal", SingleColumn},
	}
	for _, c := range cases {
		d := Resolve(c.id)
		if d.ID != c.id || d.Layout != c.layout {
			t.Errorf("Resolve(%q) = %s/%s, want %s/%s", c.id, d.ID, d.Layout, c.id, c.layout)
		}
		if d.HasSidebar() && d.SidebarWidth <= 0 {
			t.Errorf("%s: sidebar theme without width", c.id)
		}
	}
}

func TestResolveFallsBackToStandard(t *testing.T) {
	for _, id := range []string{"", "STANDARD", "neon", "  modern"} {
		if d := Resolve(id); d.ID != Default {
			t.Errorf("Resolve(%q) = %q, want %q", id, d.ID, Default)
		}
	}
}

func TestInSidebar(t *testing.T) {
	std := Resolve("standard")
	if !std.InSidebar("skills") || !std.InSidebar(SectionContact) {
		t.Fatalf("standard should route skills and contact to the sidebar")
	}
	if std.InSidebar("experience") {
		t.Fatalf("experience must stay in main")
	}
	exec := Resolve("executive")
	if exec.InSidebar("skills") {
		t.Fatalf("single column themes never route to the sidebar")
	}
}

func TestResolveReturnsIndependentCopies(t *testing.T) {
	a := Resolve("standard")
	a.SidebarSections[0] = "mutated"
	a.Styles.Heading.Size = 99
	b := Resolve("standard")
	if b.SidebarSections[0] == "mutated" || b.Styles.Heading.Size == 99 {
		t.Fatalf("descriptors share state")
	}
}

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != 4 || all[0].ID != "standard" || all[3].ID != "minimal" {
		t.Fatalf("unexpected order: %v", all)
	}
}

func TestEveryRoleUsesTheThemeFamily(t *testing.T) {
	for _, d := range All() {
		if d.FontFamily == "" {
			t.Fatalf("%s: no font family", d.ID)
		}
		for i, st := range d.Styles.roles() {
			if st.Family != d.FontFamily {
				t.Fatalf("%s: role %d family %q, want %q", d.ID, i, st.Family, d.FontFamily)
			}
		}
	}
	if Resolve("executive").FontFamily == Resolve("standard").FontFamily {
		t.Fatalf("executive should set a different family")
	}
	if Resolve("neon").Styles.Summary.Family != Resolve(Default).FontFamily {
		t.Fatalf("fallback descriptor lost its family")
	}
}
