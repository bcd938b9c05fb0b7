package scenes

import (
	"log"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/particlefield"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// statValues 统计卡片数值，与 statKeys 一一对应
var statValues = []string{"8+", "30+", "6"}

// Options 页面场景参数
type Options struct {
	Page    *game.PageState
	Strings *game.Strings
	Profile config.ProfileConfig
	Field   particlefield.Config
	Palette particlefield.Palette

	// CopyText 写入剪贴板，为 nil 时使用系统剪贴板
	CopyText func(string) error

	// 初始视口尺寸，Layout 回调后由 Resize 更新
	Width, Height int
}

// PortfolioScene 作品集单页
type PortfolioScene struct {
	page     *game.PageState
	strings  *game.Strings
	profile  config.ProfileConfig
	copyText func(string) error

	fonts      *Fonts
	background *Background
	layout     *PageLayout
	navbar     *Navbar
	scroller   Scroller
	touch      utils.TouchScroll
	revealer   *Revealer
	fade       PageFade
	toast      Toast

	hoveredCard string
	tilt        Tilt

	layer     *ebiten.Image
	cardLayer *ebiten.Image

	width, height int
}

// NewPortfolioScene 创建页面场景
//
// 返回：
//   - *PortfolioScene: 页面场景
//   - error: 字体加载失败时返回错误
func NewPortfolioScene(opts Options) (*PortfolioScene, error) {
	fonts, err := LoadFonts(config.TitleFontSize, config.BodyFontSize, config.SmallFontSize, config.NavLinkFontSize)
	if err != nil {
		return nil, err
	}

	page := opts.Page
	if page == nil {
		page = game.NewPageState(nil)
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = utils.CopyText
	}

	s := &PortfolioScene{
		page:     page,
		strings:  opts.Strings,
		profile:  opts.Profile,
		copyText: copyText,
		fonts:    fonts,
		navbar:   NewNavbar(),
		revealer: NewRevealer(),
	}
	s.background = NewBackground(opts.Width, opts.Height, opts.Field, opts.Palette, page)
	s.applySize(opts.Width, opts.Height)

	log.Printf("[PortfolioScene] Created (%dx%d, theme=%s, lang=%s)", opts.Width, opts.Height, page.Theme(), page.Language())
	return s, nil
}

// Resize 视口尺寸变化（实现 game.Resizer）
func (s *PortfolioScene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.background.Resize(width, height)
	s.applySize(width, height)
}

func (s *PortfolioScene) applySize(width, height int) {
	s.width, s.height = width, height
	s.layout = BuildLayout(float64(width), float64(height))
	s.scroller.Clamp(s.layout)
	s.page.SetScrollY(s.scroller.Y())

	if s.layer != nil {
		s.layer.Deallocate()
		s.layer = nil
	}
	if width > 0 && height > 0 {
		s.layer = ebiten.NewImage(width, height)
	}
}

// Close 停止粒子动画（实现 game.Closer）
func (s *PortfolioScene) Close() {
	s.background.Close()
	log.Printf("[PortfolioScene] Closed")
}

// text 返回当前语言的文本
func (s *PortfolioScene) text(key string) string {
	if s.strings == nil {
		return "[" + key + "]"
	}
	return s.strings.Get(s.page.Language(), key)
}

func (s *PortfolioScene) navLabels() NavLabels {
	labels := NavLabels{Links: make([]string, len(sectionNavKeys))}
	for i, nav := range sectionNavKeys {
		labels.Links[i] = s.text(nav.key)
	}
	if s.page.IsDark() {
		labels.Theme = s.text("THEME_DARK")
	} else {
		labels.Theme = s.text("THEME_LIGHT")
	}
	return labels
}

// Update 更新页面状态
func (s *PortfolioScene) Update(deltaTime float64) {
	s.navbar.Layout(float64(s.width), s.layout.Mobile, s.navLabels(), func(label string) float64 {
		return measure(s.fonts.Nav, label)
	})

	s.handleScrollInput()
	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		s.handleClick(float64(x), float64(y))
	}

	s.scroller.Update(deltaTime)
	scrollY := s.scroller.Y()
	s.page.SetScrollY(scrollY)

	if id, ok := s.layout.ActiveSection(scrollY); ok {
		s.navbar.Active = id
	}

	s.observeReveals(scrollY)
	s.revealer.Update(deltaTime)
	s.updateTilt(scrollY)

	s.fade.Update(deltaTime)
	s.toast.Update(deltaTime)
	s.background.Update()
}

// handleScrollInput 处理滚轮、触摸拖动和键盘滚动
func (s *PortfolioScene) handleScrollInput() {
	if dy := utils.WheelDelta(); dy != 0 {
		s.scroller.ScrollBy(-dy*config.WheelScrollStep, s.layout)
	}
	if dy := s.touch.Update(); dy != 0 {
		s.scroller.ScrollBy(-dy, s.layout)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		s.scroller.ScrollBy(config.WheelScrollStep, s.layout)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.scroller.ScrollBy(-config.WheelScrollStep, s.layout)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.scroller.ScrollBy(float64(s.height)-config.NavbarHeight, s.layout)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		s.scroller.ScrollBy(config.NavbarHeight-float64(s.height), s.layout)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.scroller.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.scroller.ScrollTo(s.layout.MaxScroll())
	}
}

// handleClick 处理点击（屏幕坐标）
func (s *PortfolioScene) handleClick(x, y float64) {
	onNavbar := s.navbar.Contains(x, y)
	hit := s.navbar.Click(x, y)

	switch hit.Action {
	case NavLink:
		s.NavigateTo(hit.Section)
		return
	case NavToggleMenu:
		return
	case NavTheme:
		theme := s.page.ToggleTheme()
		log.Printf("[PortfolioScene] Theme switched to %s", theme)
		return
	case NavLanguage:
		if s.page.SetLanguage(hit.Lang) {
			log.Printf("[PortfolioScene] Language switched to %s", hit.Lang)
		}
		return
	}

	if onNavbar {
		return
	}
	if s.emailRect().Contains(x, y) {
		s.CopyEmail()
	}
}

// NavigateTo 平滑滚动到区块并激活对应链接
func (s *PortfolioScene) NavigateTo(section string) {
	target, ok := s.layout.NavTarget(section)
	if !ok {
		log.Printf("[PortfolioScene] Unknown section %q", section)
		return
	}
	s.navbar.Active = section
	s.navbar.MenuOpen = false
	s.scroller.ScrollTo(target)
}

// CopyEmail 复制联系邮箱，成功后显示提示
func (s *PortfolioScene) CopyEmail() {
	if err := s.copyText(s.profile.Email); err != nil {
		log.Printf("[PortfolioScene] Warning: failed to copy email: %v", err)
		return
	}
	s.toast.Show(s.text("TOAST_EMAIL_COPIED"))
}

// emailRect 联系邮箱的屏幕坐标区域（只覆盖文本本身）
func (s *PortfolioScene) emailRect() Rect {
	sec, ok := s.layout.Section(SectionContact)
	if !ok {
		return Rect{}
	}
	for _, b := range sec.Blocks {
		if b.Kind != BlockEmail {
			continue
		}
		_, offset := s.revealer.Style(sec.ID)
		r := b.Rect.Offset(0, offset-s.scroller.Y())
		r.W = measure(s.fonts.Bold, s.profile.Email)
		return r
	}
	return Rect{}
}

// observeReveals 检查区块和卡片是否进入视口
func (s *PortfolioScene) observeReveals(scrollY float64) {
	viewH := float64(s.height)
	for _, sec := range s.layout.Sections {
		s.revealer.Observe(sec.ID, sec.Bounds(s.layout.Width), scrollY, viewH)
		for _, b := range sec.Blocks {
			if b.Kind.IsCard() {
				s.revealer.Observe(b.RevealID(sec.ID), b.Rect, scrollY, viewH)
			}
		}
	}
}

// updateTilt 计算指针下项目卡片的倾斜
func (s *PortfolioScene) updateTilt(scrollY float64) {
	s.hoveredCard = ""
	s.tilt = Tilt{}

	present, px, py := s.background.Pointer()
	if !present || s.navbar.Contains(px, py) {
		return
	}

	sec, ok := s.layout.Section(SectionProjects)
	if !ok {
		return
	}
	for _, b := range sec.Blocks {
		if b.Kind != BlockProject {
			continue
		}
		r := s.cardScreenRect(sec.ID, b, scrollY)
		if r.Contains(px, py) {
			s.hoveredCard = b.Key
			s.tilt = TiltFor(r, px, py)
			return
		}
	}
}

// cardScreenRect 卡片的屏幕坐标（含进入动画偏移）
func (s *PortfolioScene) cardScreenRect(sectionID string, b Block, scrollY float64) Rect {
	_, secOffset := s.revealer.Style(sectionID)
	_, cardOffset := s.revealer.Style(b.RevealID(sectionID))
	return b.Rect.Offset(0, secOffset+cardOffset-scrollY)
}
