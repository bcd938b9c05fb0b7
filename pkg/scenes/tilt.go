package scenes

import (
	"math"

	"github.com/decker502/portfolio/pkg/config"
)

// perspective 透视距离（像素）
const perspective = 1000.0

// Tilt 卡片悬停倾斜
type Tilt struct {
	RotateX float64 // 绕水平轴，角度
	RotateY float64 // 绕竖直轴，角度
	Lift    float64 // 上移距离
}

// IsZero 未倾斜
func (t Tilt) IsZero() bool {
	return t == Tilt{}
}

// TiltFor 根据指针在卡片内的位置计算倾斜
// 指针所在的一侧朝向观察者
func TiltFor(card Rect, px, py float64) Tilt {
	x, y := px-card.X, py-card.Y
	cx, cy := card.W/2, card.H/2
	return Tilt{
		RotateX: (y - cy) / config.TiltDivisor,
		RotateY: (cx - x) / config.TiltDivisor,
		Lift:    config.TiltLift,
	}
}

// Project 返回倾斜后卡片四个角的屏幕坐标
// 顺序为左上、右上、左下、右下
func (t Tilt) Project(card Rect) [4][2]float64 {
	cx, cy := card.Center()
	rx := t.RotateX * math.Pi / 180
	ry := t.RotateY * math.Pi / 180

	corners := [4][2]float64{
		{-card.W / 2, -card.H / 2},
		{card.W / 2, -card.H / 2},
		{-card.W / 2, card.H / 2},
		{card.W / 2, card.H / 2},
	}

	var out [4][2]float64
	for i, c := range corners {
		x, y, z := c[0], c[1], 0.0
		// 绕 X 轴
		y, z = y*math.Cos(rx)-z*math.Sin(rx), y*math.Sin(rx)+z*math.Cos(rx)
		// 绕 Y 轴
		x, z = x*math.Cos(ry)+z*math.Sin(ry), -x*math.Sin(ry)+z*math.Cos(ry)

		scale := perspective / (perspective - z)
		out[i] = [2]float64{cx + x*scale, cy + y*scale - t.Lift}
	}
	return out
}
