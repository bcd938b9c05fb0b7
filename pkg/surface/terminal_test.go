package surface

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

var black = color.NRGBA{A: 0xff}

// TestTerminalSize 纵向单位是行数的两倍
func TestTerminalSize(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	term := NewTerminal(screen, black)

	w, h := term.Size()
	if w != 40 || h != 24 {
		t.Errorf("Size() = %dx%d, want 40x24", w, h)
	}
}

// TestTerminalFillCircle 粒子按半径选择字符，坐标映射到字符格
func TestTerminalFillCircle(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	term := NewTerminal(screen, black)
	term.Clear()

	term.FillCircle(5.7, 9.2, 2, color.NRGBA{R: 0xff, A: 0xff})
	term.FillCircle(1, 1, 0.5, color.NRGBA{G: 0xff, A: 0xff})
	term.FillCircle(-3, 4, 2, color.NRGBA{A: 0xff})  // 越界忽略
	term.FillCircle(5, 100, 2, color.NRGBA{A: 0xff}) // 越界忽略

	if mainc, _, style, _ := screen.GetContent(5, 4); mainc != glyphLarge {
		t.Errorf("cell (5,4): got %q, want %q", mainc, glyphLarge)
	} else if fg, _, _ := style.Decompose(); fg != tcell.NewRGBColor(0xff, 0, 0) {
		t.Errorf("cell (5,4) foreground: got %v", fg)
	}

	if mainc, _, _, _ := screen.GetContent(1, 0); mainc != glyphSmall {
		t.Errorf("cell (1,0): got %q, want %q", mainc, glyphSmall)
	}
}

// TestTerminalStrokeLineKeepsParticles 线段不覆盖已有的圆点
func TestTerminalStrokeLineKeepsParticles(t *testing.T) {
	screen := newSimScreen(t, 20, 5)
	term := NewTerminal(screen, black)
	term.Clear()

	term.FillCircle(0, 0, 2, color.NRGBA{R: 0xff, A: 0xff})
	term.StrokeLine(0, 0, 10, 0, 1, color.NRGBA{R: 0xff, A: 0xff})

	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != glyphLarge {
		t.Errorf("particle cell overwritten: got %q", mainc)
	}
	for x := 1; x <= 10; x++ {
		if mainc, _, _, _ := screen.GetContent(x, 0); mainc != glyphLine {
			t.Errorf("cell (%d,0): got %q, want %q", x, mainc, glyphLine)
		}
	}
	if mainc, _, _, _ := screen.GetContent(11, 0); mainc != ' ' {
		t.Errorf("cell (11,0) past the line end: got %q", mainc)
	}
}

// TestTerminalBlend 透明度通过与背景混合来表现
func TestTerminalBlend(t *testing.T) {
	screen := newSimScreen(t, 4, 4)
	term := NewTerminal(screen, black)

	if got := term.blend(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0}); got != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("transparent white over black: got %v", got)
	}
	if got := term.blend(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}); got != tcell.NewRGBColor(0xff, 0xff, 0xff) {
		t.Errorf("opaque white over black: got %v", got)
	}

	half := term.blend(color.NRGBA{R: 0xff, A: 0x80})
	r, g, b := half.RGB()
	if r < 120 || r > 135 || g != 0 || b != 0 {
		t.Errorf("half red over black: got (%d, %d, %d)", r, g, b)
	}
}

func TestBresenham(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           int
	}{
		{"point", 3, 3, 3, 3, 1},
		{"horizontal", 0, 0, 5, 0, 6},
		{"vertical reversed", 2, 7, 2, 1, 7},
		{"diagonal", 0, 0, 4, 4, 5},
		{"shallow", 0, 0, 8, 2, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := bresenham(tt.x0, tt.y0, tt.x1, tt.y1)
			if len(points) != tt.want {
				t.Errorf("len = %d, want %d (%v)", len(points), tt.want, points)
			}
			if points[0] != [2]int{tt.x0, tt.y0} || points[len(points)-1] != [2]int{tt.x1, tt.y1} {
				t.Errorf("endpoints: got %v .. %v", points[0], points[len(points)-1])
			}
		})
	}
}
