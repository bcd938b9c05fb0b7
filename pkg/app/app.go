// Package app 提供页面应用的核心包装器
//
// 桌面端由 pkg/cli 的 window 命令调用 NewApp()，移动端由 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"io"
	"log"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Settings 应用配置，为 nil 时使用 config.DefaultConfig()
	Settings *config.Config
	// CopyText 写入剪贴板，为 nil 时使用系统剪贴板
	CopyText func(string) error
}

// App 是页面应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *config.Config

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化页面应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings := cfg.Settings
	if settings == nil {
		settings = config.DefaultConfig()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	palette, err := settings.Palette.Parse()
	if err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}

	// 偏好存储不可用时降级为仅内存
	page := game.NewPageState(game.OpenSettingsManager(settings.AppName))

	table, err := game.NewStrings(game.DefaultStringsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load strings: %w", err)
	}
	log.Printf("[App] Loaded %d strings", table.Len())

	scene, err := scenes.NewPortfolioScene(scenes.Options{
		Page:     page,
		Strings:  table,
		Profile:  settings.Profile,
		Field:    settings.Field.ParticleField(),
		Palette:  palette,
		CopyText: cfg.CopyText,
		Width:    settings.Window.Width,
		Height:   settings.Window.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create page scene: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)
	log.Printf("[App] Started (theme=%s, lang=%s)", page.Theme(), page.Language())

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
	}, nil
}

// Update 更新页面逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 退出全屏后需要等待几帧才能正确设置窗口大小
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.settings.Window.Width, a.settings.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制页面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// Layout 逻辑尺寸与窗口尺寸一致，尺寸变化时通知场景
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close 停止动画并释放场景
func (a *App) Close() {
	a.sceneManager.Close()
	log.Printf("[App] Closed")
}
