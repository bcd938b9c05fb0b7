package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/decker502/portfolio/pkg/game"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the stored theme and language",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefsShow,
}

var prefsSetCmd = &cobra.Command{
	Use:       "set {theme|language} VALUE",
	Short:     "Store a preference (theme: dark|light, language: es|en)",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"theme", "language"},
	RunE:      runPrefsSet,
}

func init() {
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	rootCmd.AddCommand(prefsCmd)
}

// openSettings 按配置中的应用名打开偏好存储
func openSettings() (*game.SettingsManager, error) {
	setupLogging(os.Stderr)
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return game.OpenSettingsManager(cfg.AppName), nil
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	sm, err := openSettings()
	if err != nil {
		return err
	}
	return writePreferences(cmd.OutOrStdout(), sm)
}

func writePreferences(w io.Writer, sm *game.SettingsManager) error {
	data, err := yaml.Marshal(sm.GetPreferences())
	if err != nil {
		return fmt.Errorf("marshalling preferences: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if !sm.IsPersistent() {
		fmt.Fprintln(w, "# storage unavailable, showing defaults")
	}
	return nil
}

func runPrefsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	sm, err := openSettings()
	if err != nil {
		return err
	}
	if !sm.IsPersistent() {
		return fmt.Errorf("preference storage is unavailable")
	}

	switch key {
	case "theme":
		theme, ok := game.ParseTheme(value)
		if !ok {
			return fmt.Errorf("invalid theme %q (want dark or light)", value)
		}
		sm.SetTheme(theme)
	case "language":
		lang, ok := game.ParseLanguage(value)
		if !ok {
			return fmt.Errorf("invalid language %q (want es or en)", value)
		}
		sm.SetLanguage(lang)
	default:
		return fmt.Errorf("unknown preference %q (want theme or language)", key)
	}

	if err := sm.Save(); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}
	return writePreferences(cmd.OutOrStdout(), sm)
}
