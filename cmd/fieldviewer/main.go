// Package main provides a particle field viewer for tuning the background
// animation outside the page.
//
// Usage:
//
//	go run ./cmd/fieldviewer [flags]
//
// Flags:
//
//	--count <n>         Particle count (default 60)
//	--distance <px>     Connection distance (default 150)
//	--pointer <px>      Pointer distance (default 150)
//	--speed <v>         Max speed per axis (default 0.25)
//	--seed <n>          Random seed, 0 = random
//	--light             Start with the light theme
//
// Controls:
//
//	Up/Down          - Particle count +/- 10 (regenerates)
//	Left/Right       - Connection distance +/- 10
//	[ / ]            - Pointer distance +/- 10
//	P                - Pause / resume (stops the frame loop)
//	N                - Advance one frame while paused
//	R                - Regenerate particles
//	T                - Toggle theme
//	Q/Escape         - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/frame"
	"github.com/decker502/portfolio/pkg/particlefield"
	"github.com/decker502/portfolio/pkg/surface"
	"github.com/decker502/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 1024
	screenHeight = 768
)

var (
	countFlag    = flag.Int("count", 60, "Particle count")
	distanceFlag = flag.Float64("distance", 150, "Connection distance")
	pointerFlag  = flag.Float64("pointer", 150, "Pointer distance")
	speedFlag    = flag.Float64("speed", 0.25, "Max speed per axis")
	seedFlag     = flag.Uint64("seed", 0, "Random seed (0 = random)")
	lightFlag    = flag.Bool("light", false, "Start with the light theme")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// FieldViewer implements ebiten.Game for the particle field viewer
type FieldViewer struct {
	cfg     particlefield.Config
	dark    bool
	seed    uint64
	img     *surface.Image
	field   *particlefield.Field
	loop    *frame.Loop
	pointer utils.PointerTracker

	width, height int
}

// NewFieldViewer creates the viewer and starts the frame loop
func NewFieldViewer(cfg particlefield.Config, dark bool, seed uint64) *FieldViewer {
	v := &FieldViewer{
		cfg:    cfg,
		dark:   dark,
		seed:   seed,
		img:    surface.NewImage(screenWidth, screenHeight),
		width:  screenWidth,
		height: screenHeight,
	}
	v.rebuild()
	return v
}

// rebuild recreates the field with the current config, keeping pause state
func (v *FieldViewer) rebuild() {
	running := v.loop == nil || v.loop.Running()
	if v.loop != nil {
		v.loop.Stop()
	}

	opts := []particlefield.Option{}
	if v.seed != 0 {
		opts = append(opts, particlefield.WithRand(rand.New(rand.NewPCG(v.seed, v.seed))))
	}
	v.field = particlefield.New(v.img, v.cfg, particlefield.ThemeFunc(func() bool { return v.dark }), opts...)
	v.loop = frame.NewLoop(v.field.Tick)
	if running {
		v.loop.Start()
	}
	log.Printf("[FieldViewer] Rebuilt: %+v", v.cfg)
}

// Update handles input and advances one frame
func (v *FieldViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.cfg.ParticleCount += 10
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.cfg.ParticleCount = max(0, v.cfg.ParticleCount-10)
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.cfg.ConnectionDistance += 10
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.cfg.ConnectionDistance = max(0, v.cfg.ConnectionDistance-10)
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		v.cfg.PointerDistance += 10
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		v.cfg.PointerDistance = max(0, v.cfg.PointerDistance-10)
		v.rebuild()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.field.Resize(v.width, v.height)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		v.dark = !v.dark
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if v.loop.Running() {
			v.loop.Stop()
		} else {
			v.loop.Start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if !v.loop.Running() {
			v.field.Tick()
		}
	}

	switch v.pointer.Apply(utils.SamplePointer(v.width, v.height)) {
	case utils.PointerMoved:
		x, y := v.pointer.Position()
		v.field.PointerMove(float64(x), float64(y))
	case utils.PointerLeft:
		v.field.PointerLeave()
	}

	v.loop.Step()
	return nil
}

// Draw composites the field and the HUD
func (v *FieldViewer) Draw(screen *ebiten.Image) {
	screen.Fill(config.PageThemeFor(v.dark).Background)
	v.img.DrawTo(screen, 1)

	state := "running"
	if !v.loop.Running() {
		state = "paused"
	}
	hud := fmt.Sprintf("FPS %.0f  %s  frames %d\ncount %d  distance %.0f  pointer %.0f  speed %.2f\n",
		ebiten.ActualFPS(), state, v.loop.Frames(),
		v.cfg.ParticleCount, v.cfg.ConnectionDistance, v.cfg.PointerDistance, v.cfg.MaxSpeed)
	ebitenutil.DebugPrint(screen, hud)
}

// Layout follows the window size; a change regenerates the particles
func (v *FieldViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.width || outsideHeight != v.height {
		v.width, v.height = outsideWidth, outsideHeight
		v.field.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg := particlefield.DefaultConfig()
	cfg.ParticleCount = *countFlag
	cfg.ConnectionDistance = *distanceFlag
	cfg.PointerDistance = *pointerFlag
	cfg.MaxSpeed = *speedFlag

	viewer := NewFieldViewer(cfg, !*lightFlag, *seedFlag)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Particle Field Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil && err != ebiten.Termination {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
