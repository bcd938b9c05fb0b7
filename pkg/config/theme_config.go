package config

import "image/color"

// PageTheme 页面配色（与粒子色板分开，粒子色板见 PaletteConfig）
type PageTheme struct {
	Background color.NRGBA // 页面背景
	Card       color.NRGBA // 卡片 / 导航栏背景
	Border     color.NRGBA // 卡片边框
	Text       color.NRGBA // 正文
	TextMuted  color.NRGBA // 次要文本
	Accent     color.NRGBA // 强调色（激活链接、按钮）
	Shadow     color.NRGBA // 导航栏阴影
}

// DarkPageTheme 深色主题
var DarkPageTheme = PageTheme{
	Background: color.NRGBA{R: 0x0a, G: 0x0e, B: 0x1a, A: 0xff},
	Card:       color.NRGBA{R: 0x14, G: 0x1b, B: 0x2d, A: 0xf0},
	Border:     color.NRGBA{R: 0x24, G: 0x30, B: 0x4a, A: 0xff},
	Text:       color.NRGBA{R: 0xe6, G: 0xed, B: 0xf3, A: 0xff},
	TextMuted:  color.NRGBA{R: 0x8b, G: 0x98, B: 0xa9, A: 0xff},
	Accent:     color.NRGBA{R: 0x00, G: 0xd4, B: 0xff, A: 0xff},
	Shadow:     color.NRGBA{A: 0x1a},
}

// LightPageTheme 浅色主题
var LightPageTheme = PageTheme{
	Background: color.NRGBA{R: 0xf5, G: 0xf7, B: 0xfa, A: 0xff},
	Card:       color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf0},
	Border:     color.NRGBA{R: 0xdc, G: 0xe3, B: 0xec, A: 0xff},
	Text:       color.NRGBA{R: 0x1a, G: 0x20, B: 0x2c, A: 0xff},
	TextMuted:  color.NRGBA{R: 0x5a, G: 0x67, B: 0x78, A: 0xff},
	Accent:     color.NRGBA{R: 0x00, G: 0x77, B: 0xcc, A: 0xff},
	Shadow:     color.NRGBA{A: 0x1a},
}

// PageThemeFor 返回主题对应的页面配色
func PageThemeFor(dark bool) PageTheme {
	if dark {
		return DarkPageTheme
	}
	return LightPageTheme
}
