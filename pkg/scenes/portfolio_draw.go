package scenes

import (
	"image/color"
	"strings"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const cardPadding = 20.0

// Draw 绘制页面
// 页面内容先绘制到 layer，再按加载淡入的透明度合成到屏幕
func (s *PortfolioScene) Draw(screen *ebiten.Image) {
	theme := config.PageThemeFor(s.page.IsDark())
	screen.Fill(theme.Background)
	if s.layer == nil {
		return
	}

	s.layer.Clear()
	s.background.Draw(s.layer)
	s.drawSections(s.layer, theme)
	s.drawNavbar(s.layer, theme)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(s.fade.Alpha()))
	screen.DrawImage(s.layer, op)

	// 提示不参与页面淡入
	s.drawToast(screen, theme)
}

func (s *PortfolioScene) drawSections(dst *ebiten.Image, theme config.PageTheme) {
	scrollY := s.scroller.Y()
	viewH := float64(s.height)

	for _, sec := range s.layout.Sections {
		if sec.Top-scrollY > viewH || sec.Top+sec.Height-scrollY < 0 {
			continue
		}
		secAlpha, secOffset := s.revealer.Style(sec.ID)
		if secAlpha <= 0 {
			continue
		}

		for _, b := range sec.Blocks {
			alpha := secAlpha
			r := b.Rect.Offset(0, secOffset-scrollY)
			if b.Kind.IsCard() {
				cardAlpha, cardOffset := s.revealer.Style(b.RevealID(sec.ID))
				alpha *= cardAlpha
				r = r.Offset(0, cardOffset)
			}
			if alpha <= 0 || r.Y > viewH || r.Y+r.H < 0 {
				continue
			}
			s.drawBlock(dst, theme, b, r, alpha)
		}
	}
}

func (s *PortfolioScene) drawBlock(dst *ebiten.Image, theme config.PageTheme, b Block, r Rect, alpha float64) {
	switch b.Kind {
	case BlockHero:
		lineH := config.TitleFontSize * 1.4
		drawText(dst, s.text("HERO_GREETING"), s.fonts.Body, r.X, r.Y, fade(theme.TextMuted, alpha), text.AlignStart)
		drawText(dst, s.profile.Name, s.fonts.Title, r.X, r.Y+config.BodyFontSize*1.6, fade(theme.Text, alpha), text.AlignStart)
		drawText(dst, s.text("HERO_ROLE"), s.fonts.Title, r.X, r.Y+config.BodyFontSize*1.6+lineH, fade(theme.Accent, alpha), text.AlignStart)
		drawText(dst, s.text("HERO_TAGLINE"), s.fonts.Body, r.X, r.Y+config.BodyFontSize*1.6+lineH*2, fade(theme.TextMuted, alpha), text.AlignStart)

	case BlockTitle:
		drawText(dst, s.text(b.Key), s.fonts.Title, r.X, r.Y, fade(theme.Text, alpha), text.AlignStart)

	case BlockText:
		s.drawParagraph(dst, s.text(b.Key), s.fonts.Body, r, fade(theme.TextMuted, alpha))

	case BlockEmail:
		email := s.profile.Email
		drawText(dst, email, s.fonts.Bold, r.X, r.Y, fade(theme.Accent, alpha), text.AlignStart)
		underline := Rect{X: r.X, Y: r.Y + config.BodyFontSize*1.4, W: measure(s.fonts.Bold, email), H: 1.5}
		fillRect(dst, underline, fade(theme.Accent, alpha))

	case BlockStat:
		drawCardFrame(dst, r, theme, alpha)
		value := ""
		if b.Index < len(statValues) {
			value = statValues[b.Index]
		}
		cx := r.X + r.W/2
		drawText(dst, value, s.fonts.Title, cx, r.Y+cardPadding/2, fade(theme.Accent, alpha), text.AlignCenter)
		drawText(dst, s.text(b.Key), s.fonts.Small, cx, r.Y+r.H-cardPadding-config.SmallFontSize, fade(theme.TextMuted, alpha), text.AlignCenter)

	case BlockSkill:
		drawCardFrame(dst, r, theme, alpha)
		drawText(dst, s.text(b.Key), s.fonts.Bold, r.X+r.W/2, r.Y+(r.H-config.BodyFontSize*1.3)/2, fade(theme.Text, alpha), text.AlignCenter)

	case BlockProject:
		if b.Key == s.hoveredCard && !s.tilt.IsZero() {
			s.drawTiltedProject(dst, theme, b, r, alpha)
			return
		}
		s.drawProject(dst, theme, b, r, alpha)
	}
}

func drawCardFrame(dst *ebiten.Image, r Rect, theme config.PageTheme, alpha float64) {
	fillRect(dst, r, fade(theme.Card, alpha))
	strokeRect(dst, r, 1, fade(theme.Border, alpha))
}

func (s *PortfolioScene) drawProject(dst *ebiten.Image, theme config.PageTheme, b Block, r Rect, alpha float64) {
	drawCardFrame(dst, r, theme, alpha)
	inner := Rect{X: r.X + cardPadding, Y: r.Y + cardPadding, W: r.W - 2*cardPadding, H: r.H - 2*cardPadding}
	drawText(dst, s.text(b.Key+"_TITLE"), s.fonts.Bold, inner.X, inner.Y, fade(theme.Text, alpha), text.AlignStart)
	inner.Y += config.BodyFontSize * 1.8
	s.drawParagraph(dst, s.text(b.Key+"_DESC"), s.fonts.Small, inner, fade(theme.TextMuted, alpha))
}

// drawTiltedProject 先把卡片画到离屏图像，再映射到倾斜后的四边形
func (s *PortfolioScene) drawTiltedProject(dst *ebiten.Image, theme config.PageTheme, b Block, r Rect, alpha float64) {
	w, h := int(r.W)+1, int(r.H)+1
	if s.cardLayer == nil || s.cardLayer.Bounds().Dx() != w || s.cardLayer.Bounds().Dy() != h {
		if s.cardLayer != nil {
			s.cardLayer.Deallocate()
		}
		s.cardLayer = ebiten.NewImage(w, h)
	}
	s.cardLayer.Clear()
	s.drawProject(s.cardLayer, theme, b, Rect{W: r.W, H: r.H}, 1)

	corners := s.tilt.Project(r)
	src := [4][2]float32{{0, 0}, {float32(r.W), 0}, {0, float32(r.H)}, {float32(r.W), float32(r.H)}}
	vertices := make([]ebiten.Vertex, 4)
	for i := range vertices {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(corners[i][0]),
			DstY:   float32(corners[i][1]),
			SrcX:   src[i][0],
			SrcY:   src[i][1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: float32(alpha),
		}
	}
	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear, AntiAlias: true}
	dst.DrawTriangles(vertices, []uint16{0, 1, 2, 1, 3, 2}, s.cardLayer, op)
}

func (s *PortfolioScene) drawParagraph(dst *ebiten.Image, str string, face *text.GoTextFace, r Rect, c color.Color) {
	lineH := face.Size * 1.5
	for i, line := range utils.WrapText(str, face, r.W) {
		y := r.Y + float64(i)*lineH
		if y+lineH > r.Y+r.H+lineH/2 {
			return
		}
		drawText(dst, line, face, r.X, y, c, text.AlignStart)
	}
}

func (s *PortfolioScene) drawNavbar(dst *ebiten.Image, theme config.PageTheme) {
	width := float64(s.width)
	bar := Rect{W: width, H: config.NavbarHeight}

	if NavHasShadow(s.scroller.Y()) {
		for i := 0; i < 6; i++ {
			fillRect(dst, Rect{Y: config.NavbarHeight + float64(i), W: width, H: 1}, fade(theme.Shadow, 1-float64(i)/6))
		}
	}
	fillRect(dst, bar, theme.Card)
	fillRect(dst, Rect{Y: config.NavbarHeight - 1, W: width, H: 1}, theme.Border)

	textY := (config.NavbarHeight - config.NavLinkFontSize*1.3) / 2
	drawText(dst, s.profile.Name, s.fonts.Bold, navPadding, textY, theme.Text, text.AlignStart)

	if s.navbar.LinksVisible() {
		if s.navbar.MenuOpen {
			fillRect(dst, s.navbar.MenuPanel(), theme.Card)
		}
		for _, link := range s.navbar.Links() {
			c := theme.TextMuted
			if link.Section == s.navbar.Active {
				c = theme.Accent
			}
			x, align := link.Rect.X, text.AlignStart
			if s.navbar.MenuOpen {
				x, align = link.Rect.X+link.Rect.W/2, text.AlignCenter
			}
			drawText(dst, link.Label, s.fonts.Nav, x, link.Rect.Y+(link.Rect.H-config.NavLinkFontSize*1.3)/2, c, align)
		}
	}

	labels := s.navLabels()
	btn := s.navbar.ThemeButton()
	strokeRect(dst, btn, 1, theme.Border)
	drawText(dst, labels.Theme, s.fonts.Small, btn.X+btn.W/2, btn.Y+(btn.H-config.SmallFontSize*1.3)/2, theme.Text, text.AlignCenter)

	current := s.page.Language()
	for _, l := range s.navbar.Langs() {
		c := theme.TextMuted
		if l.Lang == current {
			c = theme.Accent
			fillRect(dst, Rect{X: l.Rect.X + 8, Y: l.Rect.Y + l.Rect.H - 4, W: l.Rect.W - 16, H: 2}, theme.Accent)
		}
		drawText(dst, strings.ToUpper(string(l.Lang)), s.fonts.Small, l.Rect.X+l.Rect.W/2, l.Rect.Y+(l.Rect.H-config.SmallFontSize*1.3)/2, c, text.AlignCenter)
	}

	if mb := s.navbar.MenuButton(); mb.W > 0 {
		for i := 0; i < 3; i++ {
			y := mb.Y + mb.H/2 + float64(i-1)*7
			if s.navbar.MenuOpen && i == 1 {
				continue
			}
			fillRect(dst, Rect{X: mb.X + 10, Y: y - 1, W: mb.W - 20, H: 2}, theme.Text)
		}
	}
}

func (s *PortfolioScene) drawToast(dst *ebiten.Image, theme config.PageTheme) {
	alpha := s.toast.Alpha()
	if alpha <= 0 {
		return
	}
	msg := s.toast.Text()
	w := measure(s.fonts.Bold, msg) + 48
	h := config.BodyFontSize*1.3 + 24
	r := Rect{
		X: float64(s.width) - config.ToastMargin - w,
		Y: float64(s.height) - config.ToastMargin - h,
		W: w,
		H: h,
	}
	fillRect(dst, r, fade(theme.Accent, alpha))
	drawText(dst, msg, s.fonts.Bold, r.X+24, r.Y+12, fade(theme.Background, alpha), text.AlignStart)
}
