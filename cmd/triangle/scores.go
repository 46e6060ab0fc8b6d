package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JPatryk13/triangle-game/internal/storage"
)

var (
	flagScoresWidth  int
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recent matches and best scores",
	Long: `Display the most recent matches and the best single-match scores.

Examples:
  triangle scores
  triangle scores --width 11 --limit 5
  triangle scores --player OliverAI
  triangle scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresWidth, "width", 0, "Only best scores on this board width (0 = all)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Rows per table")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the win/loss record of a player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the match history")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening match database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Println("Match history cleared.")
		return nil
	}

	if flagScoresPlayer != "" {
		rec, err := store.PlayerRecord(flagScoresPlayer)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d played, %d won, %d lost, %d drawn\n",
			rec.Name, rec.Played(), rec.Wins, rec.Losses, rec.Draws)
		return nil
	}

	matches, err := store.RecentMatches(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving matches: %w", err)
	}

	fmt.Println("Recent matches")
	fmt.Println()
	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'triangle play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %-5s  %-32s  %s\n", "Date", "Mode", "Width", "Match", "Winner")
	fmt.Printf("  %-16s  %-6s  %-5s  %-32s  %s\n", "----", "----", "-----", "-----", "------")
	for _, m := range matches {
		winner := m.Winner
		if m.Draw() {
			winner = "draw"
		}
		match := fmt.Sprintf("%s %d : %d %s", m.Player1, m.Score1, m.Score2, m.Player2)
		fmt.Printf("  %-16s  %-6s  %-5d  %-32s  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Mode, m.Width, match, winner)
	}

	best, err := store.BestScores(flagScoresWidth, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best scores: %v\n", err)
		return nil
	}

	fmt.Println()
	if flagScoresWidth > 0 {
		fmt.Printf("Best scores - width %d\n", flagScoresWidth)
	} else {
		fmt.Println("Best scores")
	}
	fmt.Println()
	fmt.Printf("  %-4s  %-16s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Width", "Date")
	fmt.Printf("  %-4s  %-16s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, s := range best {
		fmt.Printf("  %-4d  %-16s  %-5d  %-5d  %s\n",
			i+1, s.Player, s.Score, s.Width, s.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
