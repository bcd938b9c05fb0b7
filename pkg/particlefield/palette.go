package particlefield

import (
	"image/color"
	"math"
)

// 颜色策略中的基础透明度
const (
	particleAlpha = 0.6 // 粒子填充
	lineAlpha     = 0.3 // 粒子连线
	accentAlpha   = 0.8 // 指针高亮线

	connectionLineWidth = 0.5
	pointerLineWidth    = 1.0
)

// ThemeSource 提供当前主题
// 每帧都会被查询一次，实现方不应假设结果被缓存
type ThemeSource interface {
	IsDark() bool
}

// ThemeFunc 让普通函数满足 ThemeSource
type ThemeFunc func() bool

// IsDark 实现 ThemeSource
func (f ThemeFunc) IsDark() bool { return f() }

// Palette 每个主题对应的基础色相（Alpha 通道被忽略）
type Palette struct {
	Dark  color.NRGBA
	Light color.NRGBA
}

// DefaultPalette 返回默认色板：深色 #00d4ff，浅色 #0077cc
func DefaultPalette() Palette {
	return Palette{
		Dark:  color.NRGBA{R: 0x00, G: 0xd4, B: 0xff, A: 0xff},
		Light: color.NRGBA{R: 0x00, G: 0x77, B: 0xcc, A: 0xff},
	}
}

// ThemeColors 某一主题下派生出的三种颜色
type ThemeColors struct {
	base color.NRGBA
}

// Colors 根据主题返回派生颜色
// 对同一 Palette 和同一主题，多次调用结果相同
func (p Palette) Colors(dark bool) ThemeColors {
	if dark {
		return ThemeColors{base: p.Dark}
	}
	return ThemeColors{base: p.Light}
}

// Particle 粒子填充色
func (c ThemeColors) Particle() color.NRGBA {
	return c.withAlpha(particleAlpha)
}

// Line 粒子连线颜色，opacity 为距离缩放后的不透明度
func (c ThemeColors) Line(opacity float64) color.NRGBA {
	return c.withAlpha(lineAlpha * clamp01(opacity))
}

// Accent 指针高亮线颜色
func (c ThemeColors) Accent(opacity float64) color.NRGBA {
	return c.withAlpha(accentAlpha * clamp01(opacity))
}

func (c ThemeColors) withAlpha(a float64) color.NRGBA {
	out := c.base
	out.A = uint8(math.Round(clamp01(a) * 255))
	return out
}

// Opacity 根据距离计算线条不透明度：1 - distance/threshold，限制在 [0, 1]
// threshold <= 0 时返回 0
func Opacity(distance, threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	return clamp01(1 - distance/threshold)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
