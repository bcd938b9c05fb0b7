package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingScene 记录收到的调用
type recordingScene struct {
	updates []float64
	draws   int
	sizes   [][2]int
	closed  int
}

func (r *recordingScene) Update(deltaTime float64)  { r.updates = append(r.updates, deltaTime) }
func (r *recordingScene) Draw(screen *ebiten.Image) { r.draws++ }
func (r *recordingScene) Resize(width, height int)  { r.sizes = append(r.sizes, [2]int{width, height}) }
func (r *recordingScene) Close()                    { r.closed++ }

// plainScene 不实现 Resizer / Closer
type plainScene struct{ updated bool }

func (p *plainScene) Update(float64)     { p.updated = true }
func (p *plainScene) Draw(*ebiten.Image) {}

// TestSceneManagerEmpty 没有场景时各方法都是空操作
func TestSceneManagerEmpty(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("new manager should have no scene")
	}
	sm.Update(1.0 / 60)
	sm.Draw(nil)
	sm.Resize(800, 600)
	sm.Close()
}

// TestSceneManagerForwardsUpdateAndDraw 调用转发给当前场景
func TestSceneManagerForwardsUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	scene := &recordingScene{}
	sm.SwitchTo(scene)

	sm.Update(0.5)
	sm.Draw(nil)

	if len(scene.updates) != 1 || scene.updates[0] != 0.5 {
		t.Errorf("updates: got %v, want [0.5]", scene.updates)
	}
	if scene.draws != 1 {
		t.Errorf("draws: got %d, want 1", scene.draws)
	}
	if sm.GetCurrentScene() != scene {
		t.Error("GetCurrentScene should return the active scene")
	}
}

// TestSceneManagerResizeOnlyOnChange 尺寸不变时不重复通知
func TestSceneManagerResizeOnlyOnChange(t *testing.T) {
	sm := NewSceneManager()
	scene := &recordingScene{}
	sm.SwitchTo(scene)

	sm.Resize(1280, 720)
	sm.Resize(1280, 720)
	sm.Resize(600, 800)

	want := [][2]int{{1280, 720}, {600, 800}}
	if len(scene.sizes) != len(want) {
		t.Fatalf("resize notifications: got %v, want %v", scene.sizes, want)
	}
	for i := range want {
		if scene.sizes[i] != want[i] {
			t.Errorf("resize %d: got %v, want %v", i, scene.sizes[i], want[i])
		}
	}
}

// TestSceneManagerSwitch 切换时关闭旧场景并把已知尺寸同步给新场景
func TestSceneManagerSwitch(t *testing.T) {
	sm := NewSceneManager()
	first := &recordingScene{}
	second := &recordingScene{}

	sm.SwitchTo(first)
	sm.Resize(1024, 768)
	sm.SwitchTo(first) // 同一场景不关闭
	if first.closed != 0 {
		t.Fatalf("switching to the same scene closed it %d times", first.closed)
	}

	sm.SwitchTo(second)
	if first.closed != 1 {
		t.Errorf("previous scene closed %d times, want 1", first.closed)
	}
	if len(second.sizes) != 1 || second.sizes[0] != [2]int{1024, 768} {
		t.Errorf("new scene sizes: got %v, want [[1024 768]]", second.sizes)
	}

	sm.Update(0.1)
	if len(first.updates) != 0 || len(second.updates) != 1 {
		t.Errorf("only the active scene should update: first=%d second=%d", len(first.updates), len(second.updates))
	}

	sm.Close()
	if second.closed != 1 {
		t.Errorf("Close: current scene closed %d times, want 1", second.closed)
	}
}

// TestSceneManagerPlainScene 未实现可选接口的场景照常工作
func TestSceneManagerPlainScene(t *testing.T) {
	sm := NewSceneManager()
	old := &recordingScene{}
	sm.SwitchTo(old)

	scene := &plainScene{}
	sm.SwitchTo(scene)
	sm.Resize(320, 240)
	sm.Update(0.016)
	sm.Close()

	if !scene.updated {
		t.Error("plain scene was not updated")
	}
	if old.closed != 1 {
		t.Errorf("previous scene closed %d times, want 1", old.closed)
	}
}
