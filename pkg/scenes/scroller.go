package scenes

import (
	"github.com/decker502/portfolio/pkg/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scroller 页面滚动位置
// 滚轮和触摸拖动立即生效；导航跳转使用缓动动画，期间的手动滚动会打断动画
type Scroller struct {
	y     float64
	tween *gween.Tween
}

// Y 当前滚动位置
func (s *Scroller) Y() float64 {
	return s.y
}

// Animating 是否正在执行平滑滚动
func (s *Scroller) Animating() bool {
	return s.tween != nil
}

// ScrollBy 立即滚动 dy 并限制在页面范围内
func (s *Scroller) ScrollBy(dy float64, layout *PageLayout) {
	s.tween = nil
	s.y = layout.ClampScroll(s.y + dy)
}

// ScrollTo 从当前位置平滑滚动到 target
func (s *Scroller) ScrollTo(target float64) {
	if target == s.y {
		s.tween = nil
		return
	}
	s.tween = gween.New(float32(s.y), float32(target), config.SmoothScrollDuration, ease.OutCubic)
}

// Clamp 布局变化后重新限制滚动位置
func (s *Scroller) Clamp(layout *PageLayout) {
	s.y = layout.ClampScroll(s.y)
}

// Update 推进平滑滚动
func (s *Scroller) Update(dt float64) {
	if s.tween == nil {
		return
	}
	v, finished := s.tween.Update(float32(dt))
	s.y = float64(v)
	if finished {
		s.tween = nil
	}
}
