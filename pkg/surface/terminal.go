package surface

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// 终端字符
const (
	glyphLarge = '●'
	glyphSmall = '•'
	glyphLine  = '·'
)

// RowUnits 每行字符对应的纵向单位数
// 终端字符高约为宽的两倍，纵向按 2 个单位计算使圆点和距离看起来是等比的
const RowUnits = 2

// Terminal 基于 tcell 屏幕的绘制面
//
// 横向 1 个单位对应 1 列，纵向 RowUnits 个单位对应 1 行。
// 颜色的 Alpha 通过与背景色混合来模拟。
type Terminal struct {
	screen tcell.Screen
	bg     colorful.Color
	style  tcell.Style
}

// NewTerminal 创建终端绘制面，bg 为背景色
func NewTerminal(screen tcell.Screen, bg color.Color) *Terminal {
	t := &Terminal{screen: screen}
	t.SetBackground(bg)
	return t
}

// SetBackground 设置背景色（主题切换时调用）
func (t *Terminal) SetBackground(bg color.Color) {
	t.bg = toColorful(bg)
	t.style = tcell.StyleDefault.Background(tcellColor(t.bg))
}

// Size 返回绘制面尺寸（单位）
func (t *Terminal) Size() (int, int) {
	cols, rows := t.screen.Size()
	return cols, rows * RowUnits
}

// Clear 用背景色填充整个屏幕
func (t *Terminal) Clear() {
	t.screen.Fill(' ', t.style)
}

// FillCircle 在粒子所在的字符格绘制圆点
func (t *Terminal) FillCircle(x, y, radius float64, c color.Color) {
	col, row := t.cell(x, y)
	if !t.inside(col, row) {
		return
	}
	glyph := glyphSmall
	if radius >= 1 {
		glyph = glyphLarge
	}
	t.screen.SetContent(col, row, glyph, nil, t.style.Foreground(t.blend(c)))
}

// StrokeLine 用 Bresenham 算法在字符格上绘制线段
// 已有圆点的格子不会被覆盖
func (t *Terminal) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	style := t.style.Foreground(t.blend(c))
	c0, r0 := t.cell(x0, y0)
	c1, r1 := t.cell(x1, y1)

	for _, p := range bresenham(c0, r0, c1, r1) {
		if !t.inside(p[0], p[1]) {
			continue
		}
		if mainc, _, _, _ := t.screen.GetContent(p[0], p[1]); mainc == glyphLarge || mainc == glyphSmall {
			continue
		}
		t.screen.SetContent(p[0], p[1], glyphLine, nil, style)
	}
}

// Show 刷新屏幕
func (t *Terminal) Show() {
	t.screen.Show()
}

// cell 将绘制面坐标转换为字符格坐标
func (t *Terminal) cell(x, y float64) (int, int) {
	return int(x), int(y / RowUnits)
}

func (t *Terminal) inside(col, row int) bool {
	cols, rows := t.screen.Size()
	return col >= 0 && row >= 0 && col < cols && row < rows
}

// blend 按颜色的 Alpha 将其与背景混合
func (t *Terminal) blend(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	fg := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	return tcellColor(t.bg.BlendRgb(fg, float64(n.A)/255))
}

func toColorful(c color.Color) colorful.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// bresenham 返回两个格子之间（含端点）的所有格子
func bresenham(x0, y0, x1, y1 int) [][2]int {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	points := make([][2]int, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		points = append(points, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
