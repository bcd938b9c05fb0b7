package scenes

import (
	"github.com/decker502/portfolio/pkg/frame"
	"github.com/decker502/portfolio/pkg/particlefield"
	"github.com/decker502/portfolio/pkg/surface"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// Background 页面背后的粒子网络
// 粒子场绘制到离屏图像，由 frame.Loop 在每次 Update 时推进一帧
type Background struct {
	img     *surface.Image
	field   *particlefield.Field
	loop    *frame.Loop
	pointer utils.PointerTracker
}

// NewBackground 创建并启动粒子背景
func NewBackground(width, height int, cfg particlefield.Config, palette particlefield.Palette, theme particlefield.ThemeSource) *Background {
	b := &Background{img: surface.NewImage(width, height)}
	b.field = particlefield.New(b.img, cfg, theme, particlefield.WithPalette(palette))
	b.loop = frame.NewLoop(b.field.Tick)
	b.loop.Start()
	return b
}

// Update 同步指针状态并推进一帧
func (b *Background) Update() {
	w, h := b.field.Size()
	switch b.pointer.Apply(utils.SamplePointer(w, h)) {
	case utils.PointerMoved:
		x, y := b.pointer.Position()
		b.field.PointerMove(float64(x), float64(y))
	case utils.PointerLeft:
		b.field.PointerLeave()
	}
	b.loop.Step()
}

// Pointer 返回指针是否在窗口内及其位置
func (b *Background) Pointer() (present bool, x, y float64) {
	p := b.field.Pointer()
	return p.Present, p.X, p.Y
}

// Resize 窗口尺寸变化时重新生成粒子
func (b *Background) Resize(width, height int) {
	b.field.Resize(width, height)
}

// Draw 将粒子层合成到目标图像
func (b *Background) Draw(dst *ebiten.Image) {
	b.img.DrawTo(dst, 1)
}

// Close 停止动画，之后 Update 不再推进粒子
func (b *Background) Close() {
	b.loop.Stop()
}

// Running 动画是否在运行
func (b *Background) Running() bool {
	return b.loop.Running()
}

// Field 返回粒子场
func (b *Background) Field() *particlefield.Field {
	return b.field
}
