package renderer

import "testing"

func TestScrollToSection(t *testing.T) {
	vp := NewViewport(SectionIDs...)

	if !ScrollToSection(vp, "projects") {
		t.Fatal("expected scroll to existing section")
	}
	el, _ := vp.ElementByID("projects")
	n, b := el.(*Section).Scrolls()
	if n != 1 {
		t.Errorf("scrolls = %d, want 1", n)
	}
	if b != Smooth {
		t.Errorf("behavior = %q, want smooth", b)
	}

	for _, id := range SectionIDs {
		if id == "projects" {
			continue
		}
		el, _ := vp.ElementByID(id)
		if n, _ := el.(*Section).Scrolls(); n != 0 {
			t.Errorf("section %q scrolled %d times", id, n)
		}
	}
}

func TestScrollToSectionMissing(t *testing.T) {
	vp := NewViewport("about")
	if ScrollToSection(vp, "projects") {
		t.Error("scroll reported for missing section")
	}
	if ScrollToSection(nil, "projects") {
		t.Error("scroll reported without a DOM")
	}
}

func TestDrawerClosesAfterSelect(t *testing.T) {
	vp := NewViewport("about", "projects")

	tests := []struct {
		name         string
		link         NavLink
		wantScrolled bool
	}{
		{"existing section", NavLink{Href: "#projects", Label: "Projects"}, true},
		{"missing section", NavLink{Href: "#contact", Label: "Contact"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Drawer
			if d.IsOpen() {
				t.Fatal("drawer should start closed")
			}
			d.Open()
			if !d.IsOpen() {
				t.Fatal("drawer should be open after trigger")
			}
			if got := d.Select(vp, tt.link); got != tt.wantScrolled {
				t.Errorf("Select scrolled = %v, want %v", got, tt.wantScrolled)
			}
			if d.IsOpen() {
				t.Error("drawer still open after selecting a link")
			}
		})
	}
}

func TestNavLinkTarget(t *testing.T) {
	for _, l := range NavLinks {
		if l.Target() == "" || l.Target()[0] == '#' {
			t.Errorf("Target(%q) = %q", l.Href, l.Target())
		}
	}
}

func TestViewportReleaseIsIdempotent(t *testing.T) {
	vp := NewViewport()
	release := vp.OnScroll(func(float64) {})
	other := vp.OnScroll(func(float64) {})
	release()
	release()
	if n := vp.Listeners(); n != 1 {
		t.Errorf("listeners = %d, want 1", n)
	}
	other()
	if n := vp.Listeners(); n != 0 {
		t.Errorf("listeners = %d, want 0", n)
	}
}
