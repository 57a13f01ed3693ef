// tabletennis is a two-player table tennis game for the terminal.
//
// Usage:
//
//	tabletennis [flags]
//
// Flags:
//
//	--frontend <name>        - Terminal backend: term (tcell) or tea (Bubble Tea)
//	--config <path>          - YAML file overlaid on the built-in defaults
//	--log-file <path>        - Write a rotating debug log to this file
//	--debug                  - Log at debug level
//	--log-max-size <mb>      - Rotate the log file at this size
//	--log-max-backups <n>    - Rotated log files to keep
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tabletennis/internal/config"
	"github.com/vovakirdan/tabletennis/internal/core"
	"github.com/vovakirdan/tabletennis/internal/logging"
)

var (
	flagFrontend string
	flagConfig   string
	flagLogFile  string
	flagDebug    bool

	flagLogMaxSize    int
	flagLogMaxBackups int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tabletennis",
	Short: "Two-player table tennis in your terminal",
	Long: `Two players share one keyboard. The ball bounces off the top and
bottom walls and off both paddles; letting it reach your wall gives the
other player a point.

Controls:
` + controlsHelp(config.Default().Controls.KeyMap()) + `
Examples:
  tabletennis
  tabletennis --frontend tea
  tabletennis --config ./slow-ball.yaml
  tabletennis --log-file /tmp/tabletennis.log --debug`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.Flags().StringVar(&flagFrontend, "frontend", frontendTerm, "Terminal backend: term or tea")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Path to log file (disabled when empty)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.Flags().IntVar(&flagLogMaxSize, "log-max-size", logging.DefaultMaxSizeMB, "Rotate the log file at this size in MB")
	rootCmd.Flags().IntVar(&flagLogMaxBackups, "log-max-backups", logging.DefaultMaxBackups, "Rotated log files to keep (0 keeps all)")
}

// controlsHelp lists each binding as one indented line.
func controlsHelp(km core.KeyMap) string {
	var sb strings.Builder
	for _, b := range km.Bindings() {
		h := b.Help()
		fmt.Fprintf(&sb, "  %-14s - %s\n", h.Key, h.Desc)
	}
	return sb.String()
}
