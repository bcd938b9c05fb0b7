// Package termview 在终端中运行粒子背景
//
// tcell 事件在独立 goroutine 中读取并通过 channel 转交给帧循环，
// 粒子场只在帧循环所在的 goroutine 上被修改和绘制。
package termview

import (
	"context"
	"log"
	"time"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/frame"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/particlefield"
	"github.com/decker502/portfolio/pkg/surface"
	"github.com/gdamore/tcell/v2"
)

// Options 终端视图配置
type Options struct {
	Field   particlefield.Config
	Palette particlefield.Palette
	FPS     int
	Page    *game.PageState
}

// Viewer 终端粒子背景
type Viewer struct {
	screen tcell.Screen
	term   *surface.Terminal
	field  *particlefield.Field
	page   *game.PageState
	loop   *frame.Loop
	fps    int

	events chan tcell.Event
}

// NewViewer 创建终端视图，screen 需已完成 Init
func NewViewer(screen tcell.Screen, opts Options) *Viewer {
	page := opts.Page
	if page == nil {
		page = game.NewPageState(nil)
	}

	palette := opts.Palette
	if palette == (particlefield.Palette{}) {
		palette = particlefield.DefaultPalette()
	}

	v := &Viewer{
		screen: screen,
		page:   page,
		fps:    opts.FPS,
		events: make(chan tcell.Event, 64),
	}
	v.term = surface.NewTerminal(screen, config.PageThemeFor(page.IsDark()).Background)
	v.field = particlefield.New(v.term, opts.Field, page, particlefield.WithPalette(palette))
	v.loop = frame.NewLoop(v.tick)
	return v
}

// Field 返回粒子场
func (v *Viewer) Field() *particlefield.Field {
	return v.field
}

// Stop 停止帧循环，Run 随后返回 nil
func (v *Viewer) Stop() {
	v.loop.Stop()
}

// Run 运行直到用户退出（q / Esc / Ctrl-C）或 ctx 取消
func (v *Viewer) Run(ctx context.Context) error {
	v.screen.EnableMouse()
	v.screen.EnableFocus()
	v.screen.HideCursor()

	done := make(chan struct{})
	defer close(done)
	go v.pollEvents(done)

	interval := frame.DefaultInterval
	if v.fps > 0 {
		interval = time.Second / time.Duration(v.fps)
	}
	log.Printf("[TermView] Running at %v per frame", interval)
	return v.loop.Run(ctx, interval)
}

// pollEvents 读取 tcell 事件；screen.Fini 后 PollEvent 返回 nil
func (v *Viewer) pollEvents(done <-chan struct{}) {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case v.events <- ev:
		case <-done:
			return
		}
	}
}

// tick 处理积压事件后推进一帧
func (v *Viewer) tick() {
	for drained := false; !drained; {
		select {
		case ev := <-v.events:
			v.handle(ev)
		default:
			drained = true
		}
	}

	if !v.loop.Running() {
		return
	}

	v.term.SetBackground(config.PageThemeFor(v.page.IsDark()).Background)
	v.field.Tick()
	v.term.Show()
}

// handle 处理单个事件
func (v *Viewer) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		cols, rows := ev.Size()
		v.field.Resize(cols, rows*surface.RowUnits)

	case *tcell.EventMouse:
		x, y := ev.Position()
		// 取字符格中心
		v.field.PointerMove(float64(x)+0.5, float64(y*surface.RowUnits)+float64(surface.RowUnits)/2)

	case *tcell.EventFocus:
		if !ev.Focused {
			v.field.PointerLeave()
		}

	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			v.loop.Stop()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			v.loop.Stop()
		case ev.Key() == tcell.KeyRune && ev.Rune() == 't':
			theme := v.page.ToggleTheme()
			log.Printf("[TermView] Theme switched to %s", theme)
		}
	}
}
