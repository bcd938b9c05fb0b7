// Package cli 提供 portfolio 命令行入口
package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Animated particle-network portfolio page",
	Long: `Portfolio renders a single-page portfolio over an animated particle
network. Without a subcommand it opens the desktop window; "term" draws
the particle background in the terminal and "prefs" manages the stored
theme and language.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

// Execute 运行根命令
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogging 非 verbose 模式下丢弃日志
func setupLogging(w io.Writer) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		return
	}
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags)
}

// loadConfig 读取并校验配置
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// ExitOnError 打印错误并以状态码 1 退出
func ExitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
