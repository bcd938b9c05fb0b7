package cli

import (
	"fmt"
	"os"

	"github.com/decker502/portfolio/pkg/app"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the portfolio page in a desktop window",
	RunE:  runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	setupLogging(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := app.NewApp(app.Config{Verbose: verbose, Settings: cfg})
	if err != nil {
		return fmt.Errorf("initializing app: %w", err)
	}
	defer a.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
