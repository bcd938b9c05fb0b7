package scenes

import (
	"errors"
	"strings"
	"testing"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/particlefield"
)

const testStrings = `
[TOAST_EMAIL_COPIED]
en: Email copied!
es: ¡Email copiado!

[THEME_DARK]
en: Dark
es: Oscuro

[THEME_LIGHT]
en: Light
es: Claro
`

// newTestScene 创建不分配 GPU 图像的场景（尺寸为 0），再手动设置布局
func newTestScene(t *testing.T) (*PortfolioScene, *[]string) {
	t.Helper()

	table, err := game.ParseStrings(strings.NewReader(testStrings))
	if err != nil {
		t.Fatalf("ParseStrings() error: %v", err)
	}

	var copied []string
	scene, err := NewPortfolioScene(Options{
		Page:    game.NewPageState(nil),
		Strings: table,
		Profile: config.ProfileConfig{Name: "Test", Email: "me@example.com"},
		Field:   particlefield.DefaultConfig(),
		Palette: particlefield.DefaultPalette(),
		CopyText: func(s string) error {
			copied = append(copied, s)
			return nil
		},
	})
	if err != nil {
		t.Fatalf("NewPortfolioScene() error: %v", err)
	}

	scene.width, scene.height = 1280, 800
	scene.layout = BuildLayout(1280, 800)
	scene.navbar.Layout(1280, false, scene.navLabels(), func(s string) float64 {
		return measure(scene.fonts.Nav, s)
	})
	return scene, &copied
}

func TestPortfolioSceneNavigateTo(t *testing.T) {
	scene, _ := newTestScene(t)

	scene.NavigateTo(SectionProjects)
	if scene.navbar.Active != SectionProjects {
		t.Errorf("Active: got %q, want %q", scene.navbar.Active, SectionProjects)
	}
	if !scene.scroller.Animating() {
		t.Fatal("navigation should scroll smoothly")
	}

	scene.scroller.Update(config.SmoothScrollDuration)
	want, _ := scene.layout.NavTarget(SectionProjects)
	if scene.scroller.Y() != want {
		t.Errorf("scroll after navigation: got %v, want %v", scene.scroller.Y(), want)
	}

	scene.NavigateTo("missing")
	if scene.navbar.Active != SectionProjects {
		t.Error("unknown section should not change the active link")
	}
}

func TestPortfolioSceneCopyEmail(t *testing.T) {
	scene, copied := newTestScene(t)

	scene.CopyEmail()
	if len(*copied) != 1 || (*copied)[0] != "me@example.com" {
		t.Errorf("copied: got %v", *copied)
	}
	if !scene.toast.Active() || scene.toast.Text() != "¡Email copiado!" {
		t.Errorf("toast: active=%v text=%q", scene.toast.Active(), scene.toast.Text())
	}

	scene.page.SetLanguage(game.LangEN)
	scene.CopyEmail()
	if scene.toast.Text() != "Email copied!" {
		t.Errorf("english toast: got %q", scene.toast.Text())
	}
}

func TestPortfolioSceneCopyEmailFailure(t *testing.T) {
	scene, _ := newTestScene(t)
	scene.copyText = func(string) error { return errors.New("no clipboard") }

	scene.CopyEmail()
	if scene.toast.Active() {
		t.Error("toast should not show when the clipboard write fails")
	}
}

func TestPortfolioSceneClickEmail(t *testing.T) {
	scene, copied := newTestScene(t)
	scene.scroller.ScrollBy(1e9, scene.layout)

	r := scene.emailRect()
	if r.W <= 0 || r.Y < config.NavbarHeight {
		t.Fatalf("email should be visible below the navbar, got %+v", r)
	}
	scene.handleClick(r.X+1, r.Y+1)
	if len(*copied) != 1 {
		t.Errorf("clicking the email should copy it, copied=%v", *copied)
	}

	scene.handleClick(r.X+r.W+50, r.Y+1)
	if len(*copied) != 1 {
		t.Error("clicking beside the email should not copy")
	}
}

func TestPortfolioSceneNavbarClicks(t *testing.T) {
	scene, _ := newTestScene(t)

	scene.handleClick(scene.navbar.ThemeButton().Center())
	if scene.page.IsDark() {
		t.Error("theme button should switch to light")
	}

	langs := scene.navbar.Langs()
	scene.handleClick(langs[0].Rect.Center())
	if scene.page.Language() != game.LangES {
		t.Error("clicking the active language should keep it")
	}
	scene.handleClick(langs[1].Rect.Center())
	if scene.page.Language() != game.LangEN {
		t.Errorf("language: got %q, want en", scene.page.Language())
	}
}

func TestPortfolioSceneClose(t *testing.T) {
	scene, _ := newTestScene(t)
	if !scene.background.Running() {
		t.Fatal("background should run after creation")
	}
	scene.Close()
	if scene.background.Running() {
		t.Error("background should stop after Close")
	}
}
