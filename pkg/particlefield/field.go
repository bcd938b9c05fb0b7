package particlefield

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"
)

// Surface 粒子场的绘制目标
// 坐标单位与 Size() 返回的尺寸一致
type Surface interface {
	Size() (width, height int)
	Clear()
	FillCircle(x, y, radius float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
}

// Resizer 是 Surface 的可选接口
// 实现该接口的绘制目标会在 Field.Resize 时同步调整自身尺寸
type Resizer interface {
	Resize(width, height int)
}

// Particle 单个粒子的状态
type Particle struct {
	X, Y   float64 // 位置（绘制面坐标）
	VX, VY float64 // 速度（单位/帧）
	Radius float64 // 绘制半径
}

// PointerState 指针位置；Present 为 false 表示指针不在跟踪区域内
type PointerState struct {
	X, Y    float64
	Present bool
}

// Option 构造选项
type Option func(*Field)

// WithRand 指定随机源（测试中用于获得确定性结果）
func WithRand(r *rand.Rand) Option {
	return func(f *Field) { f.rng = r }
}

// WithPalette 指定色板
func WithPalette(p Palette) Option {
	return func(f *Field) { f.palette = p }
}

// Field 粒子网络动画
type Field struct {
	surface Surface
	theme   ThemeSource
	palette Palette
	config  Config
	rng     *rand.Rand

	width, height int
	particles     []Particle
	pointer       PointerState
}

// New 创建绑定到 surface 的粒子场
//
// 参数：
//   - surface: 绘制目标，为 nil 时不初始化，返回 nil
//   - cfg: 粒子场配置
//   - theme: 主题查询，为 nil 时按深色主题处理
//
// 返回：
//   - *Field: 已按绘制面当前尺寸生成粒子的实例
func New(surface Surface, cfg Config, theme ThemeSource, opts ...Option) *Field {
	if surface == nil {
		log.Printf("[ParticleField] No surface, skipping initialization")
		return nil
	}

	f := &Field{
		surface: surface,
		theme:   theme,
		palette: DefaultPalette(),
		config:  cfg.normalized(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.width, f.height = surface.Size()
	f.createParticles()
	log.Printf("[ParticleField] Initialized %d particles on %dx%d surface", len(f.particles), f.width, f.height)
	return f
}

// createParticles 按当前尺寸整体重新生成粒子
func (f *Field) createParticles() {
	w := float64(max(f.width, 0))
	h := float64(max(f.height, 0))
	cfg := f.config

	f.particles = make([]Particle, cfg.ParticleCount)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:      f.random() * w,
			Y:      f.random() * h,
			VX:     (f.random() - 0.5) * 2 * cfg.MaxSpeed,
			VY:     (f.random() - 0.5) * 2 * cfg.MaxSpeed,
			Radius: cfg.MinRadius + f.random()*(cfg.MaxRadius-cfg.MinRadius),
		}
	}
}

func (f *Field) random() float64 {
	if f.rng != nil {
		return f.rng.Float64()
	}
	return rand.Float64()
}

// Tick 推进并绘制一帧
func (f *Field) Tick() {
	f.surface.Clear()

	colors := f.palette.Colors(f.isDark())
	particleColor := colors.Particle()
	w, h := float64(f.width), float64(f.height)
	connect := f.config.ConnectionDistance
	reach := f.config.PointerDistance

	for i := range f.particles {
		p := &f.particles[i]

		p.X += p.VX
		p.Y += p.VY

		// 反弹：只反转速度，位置允许越界一帧
		if p.X < 0 || p.X > w {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > h {
			p.VY = -p.VY
		}

		f.surface.FillCircle(p.X, p.Y, p.Radius, particleColor)

		// 每个无序对只访问一次；j 尚未在本帧移动
		for j := i + 1; j < len(f.particles); j++ {
			q := &f.particles[j]
			d := math.Hypot(q.X-p.X, q.Y-p.Y)
			if d < connect {
				f.surface.StrokeLine(p.X, p.Y, q.X, q.Y, connectionLineWidth, colors.Line(Opacity(d, connect)))
			}
		}

		if f.pointer.Present {
			d := math.Hypot(f.pointer.X-p.X, f.pointer.Y-p.Y)
			if d < reach {
				f.surface.StrokeLine(p.X, p.Y, f.pointer.X, f.pointer.Y, pointerLineWidth, colors.Accent(Opacity(d, reach)))
			}
		}
	}
}

func (f *Field) isDark() bool {
	if f.theme == nil {
		return true
	}
	return f.theme.IsDark()
}

// Resize 调整绘制面尺寸并整体重新生成粒子
// 旧粒子的轨迹被丢弃，不做按比例缩放
func (f *Field) Resize(width, height int) {
	if r, ok := f.surface.(Resizer); ok {
		r.Resize(width, height)
	}
	f.width, f.height = width, height
	f.createParticles()
	log.Printf("[ParticleField] Resized to %dx%d, regenerated %d particles", width, height, len(f.particles))
}

// PointerMove 更新指针位置
func (f *Field) PointerMove(x, y float64) {
	f.pointer = PointerState{X: x, Y: y, Present: true}
}

// PointerLeave 清除指针位置
func (f *Field) PointerLeave() {
	f.pointer = PointerState{}
}

// Pointer 返回当前指针状态
func (f *Field) Pointer() PointerState {
	return f.pointer
}

// Particles 返回粒子状态的副本
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Config 返回粒子场配置
func (f *Field) Config() Config {
	return f.config
}

// Size 返回粒子场当前尺寸
func (f *Field) Size() (width, height int) {
	return f.width, f.height
}
