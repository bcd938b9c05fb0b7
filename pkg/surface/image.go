// Package surface 提供粒子场的绘制目标实现
//
//   - Image: Ebitengine 离屏图像，窗口模式使用
//   - Terminal: tcell 终端屏幕，终端模式使用
package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Image 基于 Ebitengine 离屏图像的绘制面
//
// 粒子场在 Update 阶段绘制到离屏图像，Draw 阶段再合成到屏幕。
// 尺寸为 0 时不分配图像，所有绘制调用直接忽略。
type Image struct {
	img           *ebiten.Image
	width, height int
}

// NewImage 创建指定尺寸的离屏绘制面
func NewImage(width, height int) *Image {
	s := &Image{}
	s.Resize(width, height)
	return s
}

// Size 返回绘制面尺寸
func (s *Image) Size() (int, int) {
	return s.width, s.height
}

// Resize 重新分配离屏图像（实现 particlefield.Resizer）
func (s *Image) Resize(width, height int) {
	if width == s.width && height == s.height && (s.img != nil || width <= 0 || height <= 0) {
		return
	}
	if s.img != nil {
		s.img.Deallocate()
		s.img = nil
	}
	s.width, s.height = max(width, 0), max(height, 0)
	if s.width > 0 && s.height > 0 {
		s.img = ebiten.NewImage(s.width, s.height)
	}
}

// Clear 清空为透明
func (s *Image) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// FillCircle 绘制实心圆（抗锯齿）
func (s *Image) FillCircle(x, y, radius float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), c, true)
}

// StrokeLine 绘制线段（抗锯齿）
func (s *Image) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// DrawTo 将离屏图像合成到目标图像
// alpha 用于页面加载淡入
func (s *Image) DrawTo(dst *ebiten.Image, alpha float64) {
	if s.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(s.img, op)
}
