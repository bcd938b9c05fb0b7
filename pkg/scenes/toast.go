package scenes

import "github.com/decker502/portfolio/pkg/config"

// Toast 屏幕右下角的短暂提示
// 淡入 ToastFadeDuration，停留 ToastDuration 后淡出 ToastFadeDuration
type Toast struct {
	text    string
	elapsed float64
	active  bool
}

// Show 显示提示，已有提示时替换并重新计时
func (t *Toast) Show(text string) {
	t.text = text
	t.elapsed = 0
	t.active = true
}

// Update 推进计时
func (t *Toast) Update(dt float64) {
	if !t.active {
		return
	}
	t.elapsed += dt
	if t.elapsed >= config.ToastDuration+config.ToastFadeDuration {
		t.active = false
	}
}

// Active 提示是否可见
func (t *Toast) Active() bool {
	return t.active
}

// Text 提示文本
func (t *Toast) Text() string {
	return t.text
}

// Alpha 当前透明度
func (t *Toast) Alpha() float64 {
	switch {
	case !t.active:
		return 0
	case t.elapsed < config.ToastFadeDuration:
		return t.elapsed / config.ToastFadeDuration
	case t.elapsed <= config.ToastDuration:
		return 1
	default:
		return 1 - (t.elapsed-config.ToastDuration)/config.ToastFadeDuration
	}
}
