// Package scenes 实现作品集页面场景
package scenes

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/decker502/portfolio/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Fonts 页面使用的字体
type Fonts struct {
	Title *text.GoTextFace
	Body  *text.GoTextFace
	Bold  *text.GoTextFace
	Small *text.GoTextFace
	Nav   *text.GoTextFace
}

// LoadFonts 从内置的 Go 字体创建页面字体
func LoadFonts(titleSize, bodySize, smallSize, navSize float64) (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &Fonts{
		Title: &text.GoTextFace{Source: bold, Size: titleSize},
		Body:  &text.GoTextFace{Source: regular, Size: bodySize},
		Bold:  &text.GoTextFace{Source: bold, Size: bodySize},
		Small: &text.GoTextFace{Source: regular, Size: smallSize},
		Nav:   &text.GoTextFace{Source: regular, Size: navSize},
	}, nil
}

// measure 返回文本宽度
func measure(face text.Face, s string) float64 {
	w, _ := text.Measure(s, face, 0)
	return w
}

func fillRect(dst *ebiten.Image, r Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, true)
}

func strokeRect(dst *ebiten.Image, r Rect, width float64, c color.Color) {
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c, true)
}

// drawText 在 (x, y) 绘制文本，y 为文本顶部
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}

// fade 按比例降低颜色的 Alpha
func fade(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		c.A = 0
		return c
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}
