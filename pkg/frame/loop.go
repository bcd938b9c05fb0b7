// Package frame 提供带显式启动/停止的帧调度器
//
// 两种驱动方式：
//   - Step: 宿主自带刷新回调（如 Ebitengine 的 Update），每次回调调用一次
//   - Run: 宿主没有刷新回调（如终端），由 Loop 自己按固定间隔驱动
//
// 停止后不再调用 TickFunc，拆除时调用 Stop 即可确定性地结束动画。
package frame

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval Run 的默认帧间隔（约 60 FPS）
const DefaultInterval = time.Second / 60

// TickFunc 每帧执行的回调
type TickFunc func()

// Loop 帧调度器
type Loop struct {
	tick    TickFunc
	running atomic.Bool
	frames  atomic.Uint64

	mu   sync.Mutex
	stop chan struct{}
}

// NewLoop 创建调度器，初始为停止状态
func NewLoop(tick TickFunc) *Loop {
	return &Loop{tick: tick}
}

// Start 启动调度，重复调用无副作用
func (l *Loop) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.running.Load() {
		return
	}
	l.stop = make(chan struct{})
	l.running.Store(true)
}

// Stop 停止调度，可在任意 goroutine 调用
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.running.Load() {
		return
	}
	l.running.Store(false)
	close(l.stop)
}

// Running 返回调度器是否处于运行状态
func (l *Loop) Running() bool {
	return l.running.Load()
}

// Frames 返回已执行的帧数
func (l *Loop) Frames() uint64 {
	return l.frames.Load()
}

// Step 在运行状态下执行一帧
//
// 返回：
//   - bool: 本次是否执行了 TickFunc
func (l *Loop) Step() bool {
	if !l.running.Load() || l.tick == nil {
		return false
	}
	l.tick()
	l.frames.Add(1)
	return true
}

// Run 启动调度并按 interval 驱动，直到 Stop 或 ctx 取消
//
// 参数：
//   - ctx: 取消时停止调度
//   - interval: 帧间隔，<= 0 时使用 DefaultInterval
//
// 返回：
//   - error: ctx 取消时返回 ctx.Err()，Stop 时返回 nil
func (l *Loop) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	l.Start()
	l.mu.Lock()
	stop := l.stop
	l.mu.Unlock()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-stop:
			return nil
		case <-ticker.C:
			l.Step()
		}
	}
}
