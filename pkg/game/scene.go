package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page scene (e.g., the portfolio page, a field viewer).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizer 是一个可选接口，场景在窗口逻辑尺寸变化时收到通知
type Resizer interface {
	Resize(width, height int)
}

// Closer 是一个可选接口，用于在场景被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 切换到其他场景
//   - 窗口关闭 / 程序退出
type Closer interface {
	Close()
}
