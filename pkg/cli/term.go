package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/portfolio/pkg/game"
	"github.com/decker502/portfolio/pkg/termview"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

var (
	termFPS     int
	termLogFile string
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Draw the particle background in the terminal",
	Long: `Draws the particle network with tcell. Move the mouse to attract
accent lines, press t to toggle the theme and q, Esc or Ctrl-C to quit.`,
	RunE: runTerm,
}

func init() {
	termCmd.Flags().IntVar(&termFPS, "fps", 0, "frames per second (default from config)")
	termCmd.Flags().StringVar(&termLogFile, "log-file", "", "write verbose logs to this file instead of discarding them")
	rootCmd.AddCommand(termCmd)
}

func runTerm(cmd *cobra.Command, args []string) error {
	// 终端被 tcell 接管，日志不能写到 stderr
	var logOut io.Writer = io.Discard
	if termLogFile != "" {
		f, err := os.OpenFile(termLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	setupLogging(logOut)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	palette, err := cfg.Palette.Parse()
	if err != nil {
		return fmt.Errorf("invalid palette: %w", err)
	}

	fps := cfg.Terminal.FPS
	if termFPS > 0 {
		fps = termFPS
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	viewer := termview.NewViewer(screen, termview.Options{
		Field:   cfg.Terminal.Field.ParticleField(),
		Palette: palette,
		FPS:     fps,
		Page:    game.NewPageState(game.OpenSettingsManager(cfg.AppName)),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := viewer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
