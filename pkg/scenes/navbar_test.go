package scenes

import (
	"testing"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
)

func fixedWidth(s string) float64 {
	return float64(len(s)) * 8
}

var testLabels = NavLabels{
	Links: []string{"Home", "About", "Skills", "Projects", "Contact"},
	Theme: "Dark",
}

func TestNavbarDesktopLinks(t *testing.T) {
	n := NewNavbar()
	n.Layout(1280, false, testLabels, fixedWidth)

	if !n.LinksVisible() {
		t.Fatal("desktop links should always be visible")
	}
	links := n.Links()
	if len(links) != 5 {
		t.Fatalf("links: got %d, want 5", len(links))
	}
	for i := 1; i < len(links); i++ {
		if links[i].Rect.X <= links[i-1].Rect.X+links[i-1].Rect.W {
			t.Errorf("link %d overlaps link %d", i, i-1)
		}
	}
	if last := links[len(links)-1].Rect; last.X+last.W > n.ThemeButton().X {
		t.Error("links should sit left of the theme button")
	}

	cx, cy := links[2].Rect.Center()
	hit := n.Click(cx, cy)
	if hit.Action != NavLink || hit.Section != SectionSkills {
		t.Errorf("click on skills link: got %+v", hit)
	}
	if n.Active != SectionSkills {
		t.Errorf("Active: got %q, want %q", n.Active, SectionSkills)
	}
}

func TestNavbarButtons(t *testing.T) {
	n := NewNavbar()
	n.Layout(1280, false, testLabels, fixedWidth)

	if hit := n.HitTest(n.ThemeButton().Center()); hit.Action != NavTheme {
		t.Errorf("theme button: got %+v", hit)
	}
	langs := n.Langs()
	if langs[0].Lang != game.LangES || langs[1].Lang != game.LangEN {
		t.Fatalf("language order: got %v, %v", langs[0].Lang, langs[1].Lang)
	}
	if hit := n.HitTest(langs[1].Rect.Center()); hit.Action != NavLanguage || hit.Lang != game.LangEN {
		t.Errorf("EN option: got %+v", hit)
	}
	if hit := n.HitTest(10, config.NavbarHeight+100); hit.Action != NavNone {
		t.Errorf("page content: got %+v", hit)
	}
}

func TestNavbarMobileMenu(t *testing.T) {
	n := NewNavbar()
	n.Layout(400, true, testLabels, fixedWidth)

	if n.LinksVisible() {
		t.Fatal("mobile links should be hidden until the menu opens")
	}
	link := n.Links()[1].Rect
	if hit := n.HitTest(link.Center()); hit.Action == NavLink {
		t.Error("hidden links must not be clickable")
	}

	// 打开
	if hit := n.Click(n.MenuButton().Center()); hit.Action != NavToggleMenu || !n.MenuOpen {
		t.Fatalf("toggle should open the menu, got %+v open=%v", hit, n.MenuOpen)
	}
	// 再次点击关闭
	n.Click(n.MenuButton().Center())
	if n.MenuOpen {
		t.Error("second toggle should close the menu")
	}

	// 点击链接后关闭
	n.Click(n.MenuButton().Center())
	if hit := n.Click(link.Center()); hit.Section != SectionAbout || n.MenuOpen {
		t.Errorf("link click: got %+v open=%v", hit, n.MenuOpen)
	}

	// 点击菜单外部关闭
	n.Click(n.MenuButton().Center())
	panel := n.MenuPanel()
	n.Click(200, panel.Y+panel.H+50)
	if n.MenuOpen {
		t.Error("click outside should close the menu")
	}

	// 点击面板空白处保持打开
	n.Click(n.MenuButton().Center())
	n.Click(panel.X+1, panel.Y+panel.H-2)
	if !n.MenuOpen {
		t.Error("click inside the panel padding should keep the menu open")
	}
}

func TestNavbarLeavingMobileClosesMenu(t *testing.T) {
	n := NewNavbar()
	n.Layout(400, true, testLabels, fixedWidth)
	n.MenuOpen = true

	n.Layout(1280, false, testLabels, fixedWidth)
	if n.MenuOpen {
		t.Error("menu should close when the layout becomes desktop")
	}
	if n.MenuButton().W != 0 {
		t.Error("desktop layout has no menu button")
	}
}
