// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 单帧采样到的指针状态
type PointerSample struct {
	// 指针位置（逻辑像素）
	X, Y int
	// 指针是否在窗口内（桌面端同时要求窗口有焦点）
	Inside bool
	// 是否来自触摸
	Touching bool
}

// PointerEvent 指针状态变化
type PointerEvent int

const (
	// PointerNone 无变化
	PointerNone PointerEvent = iota
	// PointerMoved 指针进入或移动
	PointerMoved
	// PointerLeft 指针离开窗口
	PointerLeft
)

// PointerTracker 将逐帧采样转换为移动 / 离开事件
// ebiten 没有鼠标进出事件，这里通过比较相邻两帧的采样得到
type PointerTracker struct {
	present      bool
	lastX, lastY int
}

// Apply 应用本帧采样
// 返回：
//   - PointerMoved: 指针刚进入窗口或位置发生变化
//   - PointerLeft: 指针刚离开窗口
//   - PointerNone: 其他情况
func (pt *PointerTracker) Apply(s PointerSample) PointerEvent {
	if !s.Inside {
		if pt.present {
			pt.present = false
			return PointerLeft
		}
		return PointerNone
	}

	if pt.present && s.X == pt.lastX && s.Y == pt.lastY {
		return PointerNone
	}
	pt.present = true
	pt.lastX, pt.lastY = s.X, s.Y
	return PointerMoved
}

// Present 指针当前是否在窗口内
func (pt *PointerTracker) Present() bool {
	return pt.present
}

// Position 最后一次记录的指针位置
func (pt *PointerTracker) Position() (int, int) {
	return pt.lastX, pt.lastY
}

// SamplePointer 采样当前帧的指针状态
// 触摸优先；移动端手指抬起即视为离开
func SamplePointer(width, height int) PointerSample {
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerSample{X: x, Y: y, Inside: true, Touching: true}
	}
	if IsMobile() {
		return PointerSample{}
	}

	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < width && y < height
	return PointerSample{X: x, Y: y, Inside: inside}
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	if touchIDs := inpututil.AppendJustPressedTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// WheelDelta 返回本帧鼠标滚轮的纵向滚动量（向下滚动为负）
func WheelDelta() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// TouchScroll 跟踪单指拖动，用于移动端滚动页面
type TouchScroll struct {
	id     ebiten.TouchID
	lastY  int
	active bool
}

// Update 每帧调用一次，返回本帧手指的纵向位移（像素）
func (ts *TouchScroll) Update() float64 {
	if !ts.active {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			ts.id = ids[0]
			_, ts.lastY = ebiten.TouchPosition(ts.id)
			ts.active = true
		}
		return 0
	}

	if inpututil.IsTouchJustReleased(ts.id) {
		ts.active = false
		return 0
	}
	_, y := ebiten.TouchPosition(ts.id)
	dy := y - ts.lastY
	ts.lastY = y
	return float64(dy)
}
