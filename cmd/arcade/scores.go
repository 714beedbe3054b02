package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-arcade/internal/registry"
	"github.com/vovakirdan/math-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresMine  bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top scores recorded for the specified game.

Examples:
  arcade scores calculator
  arcade scores math_grid --limit 20
  arcade scores magic_triangle --mine
  arcade scores calculator --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only show your own scores")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the game's score history (local database only, gems are kept)")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	b, err := openBackend(false, flagScoresClear)
	if err != nil {
		return err
	}
	defer b.Close()
	if b.scores == nil {
		return errors.New("no score backend available")
	}

	ctx := context.Background()
	if flagScoresClear {
		if err := b.store.ClearScores(ctx, gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return nil
	}

	userID := b.userID(ctx)
	filter := storage.ScoreFilter{GameID: gameID, Limit: flagScoresLimit}
	if flagScoresMine {
		filter.UserID = userID
	}

	scores, err := b.scores.TopScores(ctx, filter)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-5s  %-8s  %s\n", "Rank", "Score", "Gems", "Player", "Date")
	fmt.Printf("  %-4s  %-7s  %-5s  %-8s  %s\n", "----", "-----", "----", "------", "----")
	for i, e := range scores {
		player := e.UserID
		if player == userID {
			player = "you"
		} else if len(player) > 8 {
			player = player[:8]
		}
		fmt.Printf("  %-4d  %-7d  %-5d  %-8s  %s\n", i+1, e.Score, e.GemsEarned, player, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if b.store != nil {
		fmt.Println()
		if record, err := b.store.HighScore(ctx, gameID); err == nil {
			fmt.Printf("Record: %d\n", record)
		}
		if best, ok, err := b.store.PersonalBest(ctx, userID, gameID); err == nil && ok {
			fmt.Printf("Your best: %d\n", best)
		}
	}
	return nil
}
