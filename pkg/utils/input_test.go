package utils

import "testing"

func TestPointerTrackerInitialState(t *testing.T) {
	var pt PointerTracker

	if pt.Present() {
		t.Error("Expected pointer to be absent initially")
	}
	if got := pt.Apply(PointerSample{}); got != PointerNone {
		t.Errorf("Expected PointerNone for an outside sample, got %v", got)
	}
}

func TestPointerTrackerTransitions(t *testing.T) {
	var pt PointerTracker

	steps := []struct {
		name   string
		sample PointerSample
		want   PointerEvent
	}{
		{"enter", PointerSample{X: 10, Y: 20, Inside: true}, PointerMoved},
		{"still", PointerSample{X: 10, Y: 20, Inside: true}, PointerNone},
		{"move", PointerSample{X: 11, Y: 20, Inside: true}, PointerMoved},
		{"leave", PointerSample{X: -5, Y: 20}, PointerLeft},
		{"still outside", PointerSample{X: -6, Y: 20}, PointerNone},
		{"re-enter same spot", PointerSample{X: 11, Y: 20, Inside: true}, PointerMoved},
		{"touch", PointerSample{X: 40, Y: 50, Inside: true, Touching: true}, PointerMoved},
		{"finger lifted", PointerSample{}, PointerLeft},
	}

	for _, step := range steps {
		if got := pt.Apply(step.sample); got != step.want {
			t.Errorf("%s: Apply() = %v, want %v", step.name, got, step.want)
		}
	}
}

func TestPointerTrackerPosition(t *testing.T) {
	var pt PointerTracker
	pt.Apply(PointerSample{X: 100, Y: 200, Inside: true})
	pt.Apply(PointerSample{X: 300, Y: 400})

	x, y := pt.Position()
	if x != 100 || y != 200 {
		t.Errorf("Expected last inside position (100, 200), got (%d, %d)", x, y)
	}
	if pt.Present() {
		t.Error("Expected pointer to be absent after leaving")
	}
}
