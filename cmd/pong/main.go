// pong is a terminal ping pong game against a CPU opponent.
//
// Usage:
//
//	pong                 - Play a match in the current terminal
//	pong serve           - Start SSH server for remote play
//	pong scores          - Show session history
//
// Global flags:
//
//	--config <path>  - Custom game config YAML
//	--db <path>      - Session database path (default: ~/.pong/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Terminal ping pong against the computer",
	Long: `Pong is a terminal ping pong game. You control the left paddle,
the computer controls the right one. There is no win condition: the
score runs until you quit.

Controls (keyhold scheme, default):
  W/Up/K     - Move paddle up
  S/Down/J   - Move paddle down
  Q/Esc      - Quit

With the pointer scheme the paddle follows the mouse.

Examples:
  pong
  pong --scheme pointer
  pong --config ./my-pong.yaml
  pong serve --ssh :2222
  pong scores`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/sessions.db", "Path to session database")

	// Add subcommands
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
