package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show session history",
	Long: `Display the recorded game sessions, newest first.

In a terminal this opens an interactive table; use --plain (or pipe
the output) for plain text.

Examples:
  pong scores
  pong scores --plain
  pong scores --db ./sessions.db`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

// printScores writes the history as plain text for non-TTY output.
func printScores(store *storage.Store) {
	sessions, err := store.RecentSessions(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Session History")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pong' to play the first one!")
		return
	}

	fmt.Printf("  %-18s  %-8s  %-10s  %s\n", "When", "Player", "Computer", "Duration")
	fmt.Printf("  %-18s  %-8s  %-10s  %s\n", "----", "------", "--------", "--------")

	for _, s := range sessions {
		fmt.Printf("  %-18s  %-8d  %-10d  %ds\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.PlayerScore, s.CPUScore, s.DurationSecs)
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Sessions: %d   Player points: %d   Computer points: %d\n",
			stats.Sessions, stats.PlayerPoints, stats.CPUPoints)
	}
}
