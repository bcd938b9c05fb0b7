package scenes

import (
	"testing"

	"github.com/decker502/portfolio/pkg/config"
)

func TestBuildLayoutSectionsStack(t *testing.T) {
	l := BuildLayout(1280, 800)

	if len(l.Sections) != len(sectionNavKeys) {
		t.Fatalf("sections: got %d, want %d", len(l.Sections), len(sectionNavKeys))
	}
	if l.Mobile {
		t.Error("1280 wide viewport should not be mobile")
	}

	y := 0.0
	for i, sec := range l.Sections {
		if sec.ID != sectionNavKeys[i].id {
			t.Errorf("section %d: got %q, want %q", i, sec.ID, sectionNavKeys[i].id)
		}
		if sec.Top != y {
			t.Errorf("section %q top: got %v, want %v", sec.ID, sec.Top, y)
		}
		if sec.Height < config.SectionMinHeight {
			t.Errorf("section %q height %v below minimum", sec.ID, sec.Height)
		}
		for _, b := range sec.Blocks {
			if b.Rect.Y < sec.Top || b.Rect.Y+b.Rect.H > sec.Top+sec.Height {
				t.Errorf("block %q outside section %q", b.Key, sec.ID)
			}
		}
		y += sec.Height
	}
	if l.Total != y {
		t.Errorf("Total: got %v, want %v", l.Total, y)
	}

	home, _ := l.Section(SectionHome)
	if home.Height != 800 {
		t.Errorf("home should fill the viewport, got height %v", home.Height)
	}
}

func TestBuildLayoutMobileSingleColumn(t *testing.T) {
	l := BuildLayout(600, 900)
	if !l.Mobile {
		t.Fatal("600 wide viewport should be mobile")
	}

	projects, _ := l.Section(SectionProjects)
	var xs []float64
	for _, b := range projects.Blocks {
		if b.Kind == BlockProject {
			xs = append(xs, b.Rect.X)
		}
	}
	if len(xs) != 3 {
		t.Fatalf("project cards: got %d, want 3", len(xs))
	}
	for _, x := range xs[1:] {
		if x != xs[0] {
			t.Errorf("mobile cards should share one column, got x=%v", xs)
		}
	}
}

func TestMobileBreakpointBoundary(t *testing.T) {
	if BuildLayout(config.MobileBreakpoint-1, 800).Mobile != true {
		t.Error("width below breakpoint should be mobile")
	}
	if BuildLayout(config.MobileBreakpoint, 800).Mobile {
		t.Error("width at breakpoint should not be mobile")
	}
}

func TestActiveSection(t *testing.T) {
	l := BuildLayout(1280, 800)
	about, _ := l.Section(SectionAbout)
	contact, _ := l.Section(SectionContact)

	tests := []struct {
		name    string
		scrollY float64
		want    string
		ok      bool
	}{
		{"top of page", 0, SectionHome, true},
		{"just before about", about.Top - config.ActiveSectionOffset - 1, SectionHome, true},
		{"about boundary", about.Top - config.ActiveSectionOffset, SectionAbout, true},
		{"contact", contact.Top, SectionContact, true},
		{"past the end", l.Total, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.ActiveSection(tt.scrollY)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ActiveSection(%v) = (%q, %v), want (%q, %v)", tt.scrollY, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNavTarget(t *testing.T) {
	l := BuildLayout(1280, 800)
	about, _ := l.Section(SectionAbout)

	if got, ok := l.NavTarget(SectionAbout); !ok || got != about.Top-config.NavScrollOffset {
		t.Errorf("NavTarget(about) = (%v, %v), want %v", got, ok, about.Top-config.NavScrollOffset)
	}
	if got, _ := l.NavTarget(SectionHome); got != 0 {
		t.Errorf("NavTarget(home) should clamp to 0, got %v", got)
	}
	if got, _ := l.NavTarget(SectionContact); got > l.MaxScroll() {
		t.Errorf("NavTarget(contact) = %v exceeds MaxScroll %v", got, l.MaxScroll())
	}
	if _, ok := l.NavTarget("missing"); ok {
		t.Error("unknown section should not have a target")
	}
}

func TestNavHasShadow(t *testing.T) {
	if NavHasShadow(50) {
		t.Error("shadow should appear only above the threshold")
	}
	if !NavHasShadow(51) {
		t.Error("shadow expected past the threshold")
	}
}
