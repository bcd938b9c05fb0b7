package particlefield

import "testing"

func TestOpacity(t *testing.T) {
	tests := []struct {
		distance, threshold, want float64
	}{
		{0, 150, 1},
		{75, 150, 0.5},
		{150, 150, 0},
		{200, 150, 0},
		{-10, 150, 1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := Opacity(tt.distance, tt.threshold); got != tt.want {
			t.Errorf("Opacity(%v, %v) = %v, want %v", tt.distance, tt.threshold, got, tt.want)
		}
	}
}

// TestColorsIdempotent 同一主题两次查询得到相同颜色
func TestColorsIdempotent(t *testing.T) {
	p := DefaultPalette()
	for _, dark := range []bool{true, false} {
		a, b := p.Colors(dark), p.Colors(dark)
		if a.Particle() != b.Particle() || a.Line(0.5) != b.Line(0.5) || a.Accent(0.5) != b.Accent(0.5) {
			t.Errorf("Colors(%v) not idempotent", dark)
		}
	}
}

func TestThemeColors(t *testing.T) {
	dark := DefaultPalette().Colors(true)
	light := DefaultPalette().Colors(false)

	if got := dark.Particle(); got.R != 0x00 || got.G != 0xd4 || got.B != 0xff || got.A != 153 {
		t.Errorf("dark particle: got %+v", got)
	}
	if got := light.Particle(); got.G != 0x77 || got.B != 0xcc {
		t.Errorf("light particle hue: got %+v", got)
	}

	// 连线与高亮仅基础透明度不同
	if got := dark.Line(1).A; got != 77 {
		t.Errorf("line alpha at full opacity: got %d, want 77", got)
	}
	if got := dark.Accent(1).A; got != 204 {
		t.Errorf("accent alpha at full opacity: got %d, want 204", got)
	}
	if got := dark.Accent(2).A; got != 204 {
		t.Errorf("accent alpha must clamp opacity, got %d", got)
	}
	if got := dark.Line(-1).A; got != 0 {
		t.Errorf("line alpha with negative opacity: got %d, want 0", got)
	}
}
