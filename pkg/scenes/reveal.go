package scenes

import (
	"math"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// revealItem 单个元素的进入动画状态
type revealItem struct {
	tween    *gween.Tween
	progress float64 // 0 = 隐藏且下移，1 = 完全显示
}

// Revealer 元素进入视口时的淡入上移动画
// 元素一旦显示就不再隐藏
type Revealer struct {
	items map[string]*revealItem
}

// NewRevealer 创建动画管理器
func NewRevealer() *Revealer {
	return &Revealer{items: make(map[string]*revealItem)}
}

// Intersects 判断元素是否达到进入视口的条件
// 视口底部向内收缩 RevealBottomMargin，元素可见高度占自身高度的比例不小于 RevealThreshold
func Intersects(rect Rect, scrollY, viewportH float64) bool {
	if rect.H <= 0 {
		return false
	}
	top := scrollY
	bottom := scrollY + viewportH - config.RevealBottomMargin
	visible := math.Min(rect.Y+rect.H, bottom) - math.Max(rect.Y, top)
	return visible > 0 && visible/rect.H >= config.RevealThreshold
}

// Observe 检查元素（页面坐标）是否进入视口，进入时开始动画
func (r *Revealer) Observe(id string, rect Rect, scrollY, viewportH float64) {
	item := r.item(id)
	if item.tween != nil || item.progress >= 1 {
		return
	}
	if Intersects(rect, scrollY, viewportH) {
		item.tween = gween.New(0, 1, config.RevealDuration, ease.OutQuad)
	}
}

// Update 推进所有进行中的动画
func (r *Revealer) Update(dt float64) {
	for _, item := range r.items {
		if item.tween == nil {
			continue
		}
		v, finished := item.tween.Update(float32(dt))
		item.progress = float64(v)
		if finished {
			item.progress = 1
			item.tween = nil
		}
	}
}

// Style 返回元素当前的透明度与纵向偏移
func (r *Revealer) Style(id string) (alpha, offsetY float64) {
	p := r.item(id).progress
	return p, (1 - p) * config.RevealDistance
}

// Revealed 动画是否已经开始（或已完成）
func (r *Revealer) Revealed(id string) bool {
	item := r.item(id)
	return item.tween != nil || item.progress >= 1
}

func (r *Revealer) item(id string) *revealItem {
	item, ok := r.items[id]
	if !ok {
		item = &revealItem{}
		r.items[id] = item
	}
	return item
}

// PageFade 页面加载淡入：延迟 PageFadeDelay 后在 PageFadeDuration 内从 0 到 1
type PageFade struct {
	elapsed float64
	tween   *gween.Tween
	alpha   float64
}

// Update 推进淡入
func (f *PageFade) Update(dt float64) {
	if f.alpha >= 1 {
		return
	}
	if f.tween == nil {
		f.elapsed += dt
		if f.elapsed < config.PageFadeDelay {
			return
		}
		f.tween = gween.New(0, 1, config.PageFadeDuration, ease.OutQuad)
		dt = f.elapsed - config.PageFadeDelay
	}
	v, finished := f.tween.Update(float32(dt))
	f.alpha = float64(v)
	if finished {
		f.alpha = 1
		f.tween = nil
	}
}

// Alpha 当前页面透明度
func (f *PageFade) Alpha() float64 {
	return f.alpha
}
