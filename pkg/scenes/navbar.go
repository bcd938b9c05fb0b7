package scenes

import (
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
)

// NavAction 导航栏点击结果
type NavAction int

const (
	NavNone NavAction = iota
	NavLink
	NavToggleMenu
	NavTheme
	NavLanguage
)

// NavHit 点击命中的导航栏元素
type NavHit struct {
	Action  NavAction
	Section string        // NavLink
	Lang    game.Language // NavLanguage
}

// NavItem 导航链接
type NavItem struct {
	Rect    Rect
	Section string
	Label   string
}

// LangItem 语言选项
type LangItem struct {
	Rect Rect
	Lang game.Language
}

// NavLabels 导航栏文本（当前语言）
type NavLabels struct {
	Links []string // 与 sectionNavKeys 顺序一致
	Theme string
}

const (
	navPadding     = 24.0
	navButtonH     = 32.0
	navThemeW      = 84.0
	navLangW       = 36.0
	navMenuButtonW = 44.0
)

// Navbar 固定在顶部的导航栏
type Navbar struct {
	MenuOpen bool
	Active   string

	mobile      bool
	links       []NavItem
	themeButton Rect
	langs       [2]LangItem
	menuButton  Rect
	menuPanel   Rect
}

// NewNavbar 创建导航栏，初始激活首屏链接
func NewNavbar() *Navbar {
	return &Navbar{Active: SectionHome}
}

// Layout 计算导航栏元素位置
// 桌面端从右向左依次为语言选项、主题按钮和导航链接；
// 移动端链接折叠到菜单按钮后的下拉面板中
func (n *Navbar) Layout(width float64, mobile bool, labels NavLabels, measure func(string) float64) {
	n.mobile = mobile
	if !mobile {
		n.MenuOpen = false
	}

	btnY := (config.NavbarHeight - navButtonH) / 2
	x := width - navPadding

	if mobile {
		x -= navMenuButtonW
		n.menuButton = Rect{X: x, Y: btnY, W: navMenuButtonW, H: navButtonH}
		x -= navPadding / 2
	} else {
		n.menuButton = Rect{}
	}

	for i, lang := range []game.Language{game.LangEN, game.LangES} {
		x -= navLangW
		n.langs[1-i] = LangItem{Rect: Rect{X: x, Y: btnY, W: navLangW, H: navButtonH}, Lang: lang}
	}
	x -= navPadding / 2

	x -= navThemeW
	n.themeButton = Rect{X: x, Y: btnY, W: navThemeW, H: navButtonH}
	x -= config.NavLinkSpacing

	n.links = n.links[:0]
	if mobile {
		panelH := float64(len(sectionNavKeys))*config.MobileMenuItemGap + navPadding/2
		n.menuPanel = Rect{Y: config.NavbarHeight, W: width, H: panelH}
		for i, nav := range sectionNavKeys {
			n.links = append(n.links, NavItem{
				Rect:    Rect{X: 0, Y: config.NavbarHeight + float64(i)*config.MobileMenuItemGap, W: width, H: config.MobileMenuItemGap},
				Section: nav.id,
				Label:   labelAt(labels.Links, i),
			})
		}
		return
	}

	n.menuPanel = Rect{}
	items := make([]NavItem, len(sectionNavKeys))
	for i := len(sectionNavKeys) - 1; i >= 0; i-- {
		label := labelAt(labels.Links, i)
		w := measure(label)
		x -= w
		items[i] = NavItem{
			Rect:    Rect{X: x, Y: btnY, W: w, H: navButtonH},
			Section: sectionNavKeys[i].id,
			Label:   label,
		}
		x -= config.NavLinkSpacing
	}
	n.links = append(n.links, items...)
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

// LinksVisible 链接是否可见（移动端需要展开菜单）
func (n *Navbar) LinksVisible() bool {
	return !n.mobile || n.MenuOpen
}

// HitTest 返回坐标（屏幕坐标）处的导航栏元素，不改变状态
func (n *Navbar) HitTest(x, y float64) NavHit {
	if n.LinksVisible() {
		for _, link := range n.links {
			if link.Rect.Contains(x, y) {
				return NavHit{Action: NavLink, Section: link.Section}
			}
		}
	}
	if n.mobile && n.menuButton.Contains(x, y) {
		return NavHit{Action: NavToggleMenu}
	}
	if n.themeButton.Contains(x, y) {
		return NavHit{Action: NavTheme}
	}
	for _, l := range n.langs {
		if l.Rect.Contains(x, y) {
			return NavHit{Action: NavLanguage, Lang: l.Lang}
		}
	}
	return NavHit{}
}

// Click 处理一次点击并更新菜单状态
// 点击菜单按钮切换菜单；点击链接激活该链接并收起菜单；
// 点击菜单面板和菜单按钮以外的位置收起菜单
func (n *Navbar) Click(x, y float64) NavHit {
	hit := n.HitTest(x, y)
	switch hit.Action {
	case NavToggleMenu:
		n.MenuOpen = !n.MenuOpen
	case NavLink:
		n.Active = hit.Section
		n.MenuOpen = false
	default:
		if !(n.MenuOpen && n.menuPanel.Contains(x, y)) {
			n.MenuOpen = false
		}
	}
	return hit
}

// Contains 坐标是否落在导航栏（含展开的菜单面板）上
func (n *Navbar) Contains(x, y float64) bool {
	if y < config.NavbarHeight {
		return true
	}
	return n.MenuOpen && n.menuPanel.Contains(x, y)
}

// Links 导航链接
func (n *Navbar) Links() []NavItem {
	return n.links
}

// ThemeButton 主题按钮位置
func (n *Navbar) ThemeButton() Rect {
	return n.themeButton
}

// Langs 语言选项
func (n *Navbar) Langs() [2]LangItem {
	return n.langs
}

// MenuButton 菜单按钮位置（仅移动端）
func (n *Navbar) MenuButton() Rect {
	return n.menuButton
}

// MenuPanel 下拉菜单面板位置（仅移动端）
func (n *Navbar) MenuPanel() Rect {
	return n.menuPanel
}
